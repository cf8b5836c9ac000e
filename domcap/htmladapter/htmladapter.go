/*
Package htmladapter is the default domcap.StyledDOM implementation used
by tests and the boxkitcli demo: it walks a parsed golang.org/x/net/html
tree and resolves declared styles with a minimal cascadia-based cascade
over inline <style> text, parsed with douceur.

The cascade here is deliberately minimal (last-matching-rule-wins, no
specificity sort) — full style cascade is out of the core's scope
(spec §1); this adapter only needs to get realistic computed_style
values into test fixtures.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmladapter

import (
	"strings"

	"github.com/andybalholm/cascadia"
	douceurcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"

	"github.com/npillmayer/boxkit/domcap"
	"github.com/npillmayer/boxkit/style/css"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("boxkit.domcap.html")
}

// rule pairs a compiled selector with its declarations, in stylesheet
// order — later rules win ties, matching the minimal cascade this
// adapter implements.
type rule struct {
	selector cascadia.Selector
	decls    map[string]string
}

// Adapter is a domcap.StyledDOM backed by an *html.Node tree.
type Adapter struct {
	nodes   []*html.Node // index 0 is the root; NodeID == index
	index   map[*html.Node]domcap.NodeID
	parent  []domcap.NodeID
	rules   []rule
	states  map[domcap.NodeID]domcap.NodeState
}

// New builds an Adapter from an already-parsed HTML document and an
// optional CSS stylesheet text (may be empty). Declared inline `style`
// attributes are also honored and take precedence over stylesheet rules.
func New(doc *html.Node, styleSheetText string) (*Adapter, error) {
	a := &Adapter{
		index:  make(map[*html.Node]domcap.NodeID),
		states: make(map[domcap.NodeID]domcap.NodeState),
	}
	a.flatten(doc, domcap.NoNode)
	if strings.TrimSpace(styleSheetText) != "" {
		sheet, err := parser.Parse(styleSheetText)
		if err != nil {
			tracer().Errorf("parsing stylesheet: %v", err)
			return a, err
		}
		a.compile(sheet)
	}
	return a, nil
}

func (a *Adapter) flatten(n *html.Node, parent domcap.NodeID) {
	if n == nil {
		return
	}
	id := domcap.NodeID(len(a.nodes))
	a.nodes = append(a.nodes, n)
	a.parent = append(a.parent, parent)
	a.index[n] = id
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		a.flatten(c, id)
	}
}

func (a *Adapter) compile(sheet *douceurcss.Stylesheet) {
	for _, r := range sheet.Rules {
		if r.Prelude == "" {
			continue
		}
		sel, err := cascadia.Compile(r.Prelude)
		if err != nil {
			tracer().Debugf("skipping selector %q: %v", r.Prelude, err)
			continue
		}
		decls := make(map[string]string, len(r.Declarations))
		for _, d := range r.Declarations {
			decls[d.Property] = d.Value
		}
		a.rules = append(a.rules, rule{selector: sel, decls: decls})
	}
}

// Root implements domcap.StyledDOM.
func (a *Adapter) Root() domcap.NodeID {
	if len(a.nodes) == 0 {
		return domcap.NoNode
	}
	return 0
}

// Children implements domcap.StyledDOM.
func (a *Adapter) Children(n domcap.NodeID) []domcap.NodeID {
	if int(n) < 0 || int(n) >= len(a.nodes) {
		return nil
	}
	var kids []domcap.NodeID
	for c := a.nodes[n].FirstChild; c != nil; c = c.NextSibling {
		if id, ok := a.index[c]; ok {
			kids = append(kids, id)
		}
	}
	return kids
}

// Parent implements domcap.StyledDOM.
func (a *Adapter) Parent(n domcap.NodeID) (domcap.NodeID, bool) {
	if int(n) <= 0 || int(n) >= len(a.parent) {
		return domcap.NoNode, false
	}
	p := a.parent[n]
	return p, p != domcap.NoNode
}

// NodeType implements domcap.StyledDOM.
func (a *Adapter) NodeType(n domcap.NodeID) domcap.NodeType {
	if int(n) < 0 || int(n) >= len(a.nodes) {
		return domcap.NodeType{Kind: domcap.KindNone}
	}
	node := a.nodes[n]
	switch node.Type {
	case html.TextNode:
		return domcap.NodeType{Kind: domcap.KindText, Text: node.Data}
	case html.ElementNode:
		if node.Data == "img" {
			return domcap.NodeType{Kind: domcap.KindImage}
		}
		if node.Data == "body" {
			return domcap.NodeType{Kind: domcap.KindBody}
		}
		return domcap.NodeType{Kind: domcap.KindElement}
	case html.DocumentNode:
		return domcap.NodeType{Kind: domcap.KindElement}
	}
	return domcap.NodeType{Kind: domcap.KindNone}
}

// CSS implements domcap.StyledDOM: inline `style` attribute wins, then
// the last matching stylesheet rule, then css.NullStyle.
func (a *Adapter) CSS(n domcap.NodeID, property string) css.Property {
	if int(n) < 0 || int(n) >= len(a.nodes) {
		return css.NullStyle
	}
	node := a.nodes[n]
	if node.Type == html.ElementNode {
		if v, ok := inlineStyleLookup(node, property); ok {
			return css.Property(v)
		}
		var found string
		var hit bool
		for _, r := range a.rules {
			if !r.selector.Match(node) {
				continue
			}
			if v, ok := r.decls[property]; ok {
				found, hit = v, true
			}
		}
		if hit {
			return css.Property(found)
		}
	}
	return css.NullStyle
}

func inlineStyleLookup(n *html.Node, property string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key != "style" {
			continue
		}
		decls, err := parser.ParseDeclarations(attr.Val)
		if err != nil {
			return "", false
		}
		for _, d := range decls {
			if d.Property == property {
				return d.Value, true
			}
		}
	}
	return "", false
}

// NodeState implements domcap.StyledDOM. htmladapter has no live
// interaction state; a node reports the zero value unless SetNodeState
// stored a state for it.
func (a *Adapter) NodeState(n domcap.NodeID) domcap.NodeState {
	if s, ok := a.states[n]; ok {
		return s
	}
	return domcap.NodeState{}
}

// SetNodeState lets tests/fixtures force a pseudo-class state (e.g.
// simulating `:hover`) onto a node.
func (a *Adapter) SetNodeState(n domcap.NodeID, s domcap.NodeState) {
	a.states[n] = s
}
