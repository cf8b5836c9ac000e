package layout

import (
	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/domcap"
	"github.com/npillmayer/boxkit/fontcap"
	"github.com/npillmayer/boxkit/style/css"
)

// scrollbarThickness is the gutter reserved when overflow:auto starts
// scrolling on a pass (§4.9 step 4). A single fixed value rather than a
// host-themeable one, matching the level of detail the rest of the core
// models scrollbars at.
const scrollbarThickness = 15 * dimen.PX

// maxOverflowRelayouts caps the overflow-triggered re-layout loop of
// §4.9 step 4 ("Loop at most twice; if a fixed point is not reached,
// keep the second pass result").
const maxOverflowRelayouts = 2

// Pass runs one complete layout pass (§2's control flow) over a styled
// DOM: build, resolve box props, compute widths, shape inline content,
// compute heights, compute positions, compute overflow — with the
// overflow-triggered width/inline re-layout loop.
type Pass struct {
	Fonts          fontcap.FontLoader
	ViewportWidth  dimen.Dimen
	ViewportHeight dimen.Dimen
	RootFontSizePx dimen.Dimen
}

// Run executes one pass and returns the resulting layout tree, its dirty
// flags cleared (§4.8 clear_all_dirty_flags, §5 "the only state that
// crosses pass boundaries ... must be byte-indistinguishable ... from a
// cold build").
func (p Pass) Run(dom domcap.StyledDOM) *boxtree.LayoutTree {
	t := Build(dom)
	if t.Root == boxtree.NoIndex {
		return t
	}

	sizer := IntrinsicSizer{Fonts: p.Fonts}
	widthSolver := WidthSolver{Intrinsic: sizer}
	heightSolver := HeightSolver{Fonts: p.Fonts}
	positionSolver := PositionSolver{}
	overflowSolver := OverflowSolver{}

	rootFont := p.RootFontSizePx
	if rootFont == 0 {
		rootFont = 16 * dimen.PX
	}
	rc := css.ResolutionContext{
		ContainingBlockWidth:  p.ViewportWidth,
		ContainingBlockHeight: p.ViewportHeight,
		ViewportWidth:         p.ViewportWidth,
		ViewportHeight:        p.ViewportHeight,
		FontSizePx:            rootFont,
		RootFontSizePx:        rootFont,
	}

	widthSolver.Solve(t, t.Root, dimen.EqualTo(p.ViewportWidth), rc)
	heightSolver.Solve(t, t.Root)
	positionSolver.Solve(t, t.Root)
	overflowSolver.Solve(t, t.Root)

	p.reflowScrollingContainers(t, widthSolver, heightSolver, positionSolver, overflowSolver, rc)

	t.ClearAllDirtyFlags()
	return t
}

// reflowScrollingContainers implements §4.9 step 4: any node whose
// overflow:auto axis newly started scrolling on the preceding pass has
// its scrollbar gutter reserved and its subtree re-solved for width,
// height, position and overflow, up to maxOverflowRelayouts times.
func (p Pass) reflowScrollingContainers(t *boxtree.LayoutTree, ws WidthSolver, hs HeightSolver, ps PositionSolver, os OverflowSolver, rc css.ResolutionContext) {
	for round := 0; round < maxOverflowRelayouts; round++ {
		var affected []boxtree.NodeIndex
		t.WalkDepthFirst(t.Root, func(idx boxtree.NodeIndex) {
			node := t.Node(idx)
			newlyX := node.ComputedStyle.OverflowX == css.OverflowAuto && isScrolling(node.OverflowX) && node.ScrollbarThicknessX == 0
			newlyY := node.ComputedStyle.OverflowY == css.OverflowAuto && isScrolling(node.OverflowY) && node.ScrollbarThicknessY == 0
			if newlyX || newlyY {
				affected = append(affected, idx)
			}
		})
		if len(affected) == 0 {
			return
		}

		for _, idx := range affected {
			node := t.Node(idx)
			if node.ComputedStyle.OverflowX == css.OverflowAuto && isScrolling(node.OverflowX) {
				// A horizontal scrollbar occupies vertical space.
				node.ScrollbarThicknessY = scrollbarThickness
			}
			if node.ComputedStyle.OverflowY == css.OverflowAuto && isScrolling(node.OverflowY) {
				// A vertical scrollbar occupies horizontal space.
				node.ScrollbarThicknessX = scrollbarThickness
			}
			MarkSubtreeDirty(t, idx, boxtree.DirtyLayout)

			contentW := node.BoxProps.ContentWidth(node.UsedSize.W) - node.ScrollbarThicknessX
			if contentW < 0 {
				contentW = 0
			}
			childRC := rc
			childRC.ContainingBlockWidth = contentW
			ws.solveChildren(t, idx, contentW, childRC)
			hs.Solve(t, idx)
			ps.Reposition(t, idx)
			os.Solve(t, idx)
		}
	}
}
