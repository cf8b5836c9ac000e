/*
Command boxkitcli runs one layout pass over an HTML/CSS fixture and dumps
the resulting positioned-rectangle tree to stdout.

Grounded on the teacher's core/font/opentype/otcli debug CLI shape
(flag-based, schuko tracing setup) — minus otcli's interactive readline
REPL and pterm console styling, since a single pass-and-dump tool has no
interactive state to drive a REPL over.

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/boxkit/boxtree"
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/domcap/htmladapter"
	"github.com/npillmayer/boxkit/fontcap/fontregistry"
	"github.com/npillmayer/boxkit/layout"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"golang.org/x/net/html"
)

func tracer() tracing.Trace {
	return tracing.Select("boxkit.cli")
}

func main() {
	htmlFlag := flag.String("html", "<div>hello</div>", "HTML fragment to lay out")
	cssFlag := flag.String("css", "", "stylesheet text applied to the fragment")
	width := flag.Int("width", 800, "viewport width in px")
	height := flag.Int("height", 600, "viewport height in px")
	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	query := flag.String("query", "", "xpath-ish query (e.g. //table-cell) run against the built tree instead of a full dump")
	flag.Parse()

	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.boxkit.cli": *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing:", err)
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	doc, err := html.Parse(strings.NewReader(*htmlFlag))
	if err != nil {
		tracer().Errorf("parsing HTML: %s", err)
		os.Exit(2)
	}
	adapter, err := htmladapter.New(doc, *cssFlag)
	if err != nil {
		tracer().Errorf("adapting styled DOM: %s", err)
		os.Exit(3)
	}

	pass := layout.Pass{
		Fonts:          fontregistry.Global(),
		ViewportWidth:  dimen.Dimen(*width) * dimen.PX,
		ViewportHeight: dimen.Dimen(*height) * dimen.PX,
	}
	tree := pass.Run(adapter)
	if tree.Root == boxtree.NoIndex {
		fmt.Println("(empty tree)")
		return
	}

	if *query != "" {
		matches, err := boxtree.Query(tree, tree.Root, *query)
		if err != nil {
			tracer().Errorf("query %q: %s", *query, err)
			os.Exit(4)
		}
		for _, idx := range matches {
			dumpTree(tree, idx, 0)
		}
		return
	}
	dumpTree(tree, tree.Root, 0)
}

// dumpTree prints one line per node: formatting context, used size, and
// relative position, indented by depth.
func dumpTree(t *boxtree.LayoutTree, idx boxtree.NodeIndex, depth int) {
	node := t.Node(idx)
	label := node.FormattingContext.String()
	if node.Anon != boxtree.AnonNone {
		label = fmt.Sprintf("%s (anon)", label)
	}
	if node.Text != "" {
		label = fmt.Sprintf("%s %q", label, node.Text)
	}
	fmt.Printf("%s%s  size=%v,%v  pos=%v,%v\n",
		strings.Repeat("  ", depth), label,
		node.UsedSize.W, node.UsedSize.H,
		node.RelativePosition.X, node.RelativePosition.Y)
	for _, c := range node.Children {
		dumpTree(t, c, depth+1)
	}
}
