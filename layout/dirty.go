package layout

import (
	"github.com/emirpasic/gods/queue/linkedlistqueue"
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/npillmayer/boxkit/boxtree"
)

// MarkSubtreeDirty implements §4.8 mark_subtree_dirty: raises every
// descendant of root (root included) to at least flag, then propagates
// the mark to root's ancestors via the usual single-node MarkDirty rule.
// Traversal is an explicit queue rather than recursion, with a visited
// set guarding against revisiting a node reachable by more than one
// path — the same shape as the teacher's active-breakpoint horizon in
// engine/frame/khipu/linebreak/knuthplass/knuthplass.go.
func MarkSubtreeDirty(t *boxtree.LayoutTree, root boxtree.NodeIndex, flag boxtree.DirtyFlag) {
	if root == boxtree.NoIndex || flag == boxtree.DirtyNone {
		return
	}

	visited := hashset.New()
	queue := linkedlistqueue.New()
	queue.Enqueue(root)
	visited.Add(root)

	for !queue.Empty() {
		v, _ := queue.Dequeue()
		idx := v.(boxtree.NodeIndex)

		node := t.Node(idx)
		if node.DirtyFlag < flag {
			node.DirtyFlag = flag
		}

		for _, c := range node.Children {
			if visited.Contains(c) {
				continue
			}
			visited.Add(c)
			queue.Enqueue(c)
		}
	}

	// Propagate to ancestors of root using the single-node rule; root
	// itself is already at >= flag so this only walks upward from it.
	t.MarkDirty(t.Node(root).Parent, flag)
}
