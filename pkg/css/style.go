package css

import (
	"sort"

	"tessella/pkg/html"
)

// Display is the resolved display classification of a styled node.
type Display int

const (
	DisplayBlock Display = iota
	DisplayInline
	DisplayNone
)

func (d Display) String() string {
	switch d {
	case DisplayInline:
		return "inline"
	case DisplayNone:
		return "none"
	default:
		return "block"
	}
}

// StyledNode is a DOM node annotated with its computed property values.
// The styled tree is immutable once built and must outlive any layout tree
// derived from it; layout boxes hold plain references into it.
type StyledNode struct {
	Node      *html.Node
	Specified map[string]Value
	Children  []*StyledNode
}

// Value returns the declared value of the named property, if any.
func (sn *StyledNode) Value(name string) (Value, bool) {
	v, ok := sn.Specified[name]
	return v, ok
}

// Lookup returns the value of name, falling back to the shorthand property
// and then to def.
func (sn *StyledNode) Lookup(name, shorthand string, def Value) Value {
	if v, ok := sn.Specified[name]; ok {
		return v
	}
	if v, ok := sn.Specified[shorthand]; ok {
		return v
	}
	return def
}

// inlineByDefault lists elements that are inline-level without an explicit
// display declaration. Everything else defaults to block.
var inlineByDefault = map[string]bool{
	"a": true, "b": true, "i": true, "u": true, "em": true,
	"strong": true, "span": true, "small": true, "code": true,
	"abbr": true, "sub": true, "sup": true,
}

// Display returns the node's display classification. Text nodes are always
// inline; elements use the declared value when present and a user-agent
// default otherwise.
func (sn *StyledNode) Display() Display {
	if sn.Node.IsText() {
		return DisplayInline
	}
	if v, ok := sn.Specified["display"]; ok && v.Kind == Keyword {
		switch v.Kw {
		case "block":
			return DisplayBlock
		case "inline":
			return DisplayInline
		case "none":
			return DisplayNone
		}
	}
	if inlineByDefault[sn.Node.TagName] {
		return DisplayInline
	}
	return DisplayBlock
}

// StyleTree builds the styled tree for a document against its stylesheets.
// Every DOM node gets a StyledNode; display:none subtrees are kept here and
// elided during layout-tree construction.
func StyleTree(doc *html.Document) (*StyledNode, error) {
	sheets := make([]*Stylesheet, 0, len(doc.Stylesheets))
	for _, src := range doc.Stylesheets {
		sheet, err := ParseStylesheet(src)
		if err != nil {
			continue
		}
		sheets = append(sheets, sheet)
	}
	return styleNode(doc.Root, sheets), nil
}

func styleNode(node *html.Node, sheets []*Stylesheet) *StyledNode {
	sn := &StyledNode{
		Node:      node,
		Specified: computeStyle(node, sheets),
		Children:  make([]*StyledNode, 0, len(node.Children)),
	}
	for _, child := range node.Children {
		sn.Children = append(sn.Children, styleNode(child, sheets))
	}
	return sn
}

// computeStyle runs the cascade for one node: matching rules applied in
// specificity order (lowest first, so higher specificity overwrites), then
// the inline style attribute on top.
func computeStyle(node *html.Node, sheets []*Stylesheet) map[string]Value {
	specified := make(map[string]Value)
	if node.Type != html.ElementNode {
		return specified
	}

	allRules := make([]matchedRule, 0)
	for _, sheet := range sheets {
		allRules = append(allRules, findMatchingRules(node, sheet)...)
	}
	sort.SliceStable(allRules, func(i, j int) bool {
		return allRules[i].specificity < allRules[j].specificity
	})
	for _, m := range allRules {
		for property, value := range m.declarations {
			specified[property] = value
		}
	}

	if styleAttr, ok := node.GetAttribute("style"); ok {
		for property, value := range parseDeclarations(styleAttr) {
			specified[property] = value
		}
	}
	return specified
}
