package htmladapter

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/npillmayer/boxkit/domcap"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func parseFixture(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}

func TestAdapterWalksChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.domcap")
	defer teardown()

	doc := parseFixture(t, `<div class="row"><span>a</span><p>b</p></div>`)
	a, err := New(doc, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	root := a.Root()
	if root == domcap.NoNode {
		t.Fatalf("expected a root node")
	}
	var found bool
	var walk func(n domcap.NodeID)
	walk = func(n domcap.NodeID) {
		if a.NodeType(n).Kind == domcap.KindText && a.NodeType(n).Text == "a" {
			found = true
		}
		for _, c := range a.Children(n) {
			walk(c)
		}
	}
	walk(root)
	if !found {
		t.Errorf("expected to find text node 'a' somewhere in the tree")
	}
}

func TestAdapterResolvesStylesheetRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.domcap")
	defer teardown()

	doc := parseFixture(t, `<div class="row"><span>a</span></div>`)
	a, err := New(doc, `.row { display: flex; }`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var div domcap.NodeID = domcap.NoNode
	var walk func(n domcap.NodeID)
	walk = func(n domcap.NodeID) {
		nt := a.NodeType(n)
		if nt.Kind == domcap.KindElement && a.nodes[n].Data == "div" {
			div = n
		}
		for _, c := range a.Children(n) {
			walk(c)
		}
	}
	walk(a.Root())
	if div == domcap.NoNode {
		t.Fatalf("no div element found")
	}
	if v := a.CSS(div, "display"); v != "flex" {
		t.Errorf("stylesheet rule should apply: got %q, want %q", v, "flex")
	}
}

func TestAdapterInlineStyleWinsOverStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.domcap")
	defer teardown()

	doc := parseFixture(t, `<div class="row" style="display: block;">x</div>`)
	a, err := New(doc, `.row { display: flex; }`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var divID domcap.NodeID = domcap.NoNode
	var walk func(n domcap.NodeID)
	walk = func(n domcap.NodeID) {
		if a.NodeType(n).Kind == domcap.KindElement {
			divID = n
		}
		for _, c := range a.Children(n) {
			walk(c)
		}
	}
	walk(a.Root())
	if divID == domcap.NoNode {
		t.Fatalf("no element found")
	}
	if v := a.CSS(divID, "display"); v != "block" {
		t.Errorf("inline style should win: got %q, want %q", v, "block")
	}
}
