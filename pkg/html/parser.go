package html

import (
	"fmt"
	"strings"

	xhtml "golang.org/x/net/html"
)

// Parse parses HTML source into a Document. The heavy lifting is done by
// golang.org/x/net/html; this pass converts its node tree into our DOM,
// collects <style> contents into Document.Stylesheets, and drops the parts a
// static renderer has no use for (<script>, comments, whitespace-only text).
func Parse(input string) (*Document, error) {
	root, err := xhtml.ParseWithOptions(strings.NewReader(input),
		xhtml.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := NewDocument()
	convertChildren(root, doc.Root, doc)
	return doc, nil
}

// skippedTags are elements whose subtrees never reach the DOM. <head> itself
// is not listed: we walk through it so <style> collection still works.
var skippedTags = map[string]bool{
	"script": true,
	"title":  true,
	"meta":   true,
	"link":   true,
	"base":   true,
}

func convertChildren(src *xhtml.Node, dst *Node, doc *Document) {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		convert(c, dst, doc)
	}
}

func convert(src *xhtml.Node, parent *Node, doc *Document) {
	switch src.Type {
	case xhtml.ElementNode:
		switch {
		case src.Data == "style":
			doc.Stylesheets = append(doc.Stylesheets, textContent(src))
			return
		case skippedTags[src.Data]:
			return
		case src.Data == "html" || src.Data == "head" || src.Data == "body":
			// Structural wrappers added by the parser; splice their
			// children directly under the current parent.
			convertChildren(src, parent, doc)
			return
		}

		node := &Node{
			Type:       ElementNode,
			TagName:    src.Data,
			Attributes: make(map[string]string, len(src.Attr)),
		}
		for _, a := range src.Attr {
			node.Attributes[a.Key] = a.Val
		}
		parent.AddChild(node)
		convertChildren(src, node, doc)

	case xhtml.TextNode:
		if strings.TrimSpace(src.Data) == "" {
			return
		}
		parent.AppendText(collapseWhitespace(src.Data))
	}
	// Comments, doctypes and the document node itself are dropped.
}

// textContent concatenates all text beneath a node. Used for <style>.
func textContent(n *xhtml.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xhtml.TextNode {
			sb.WriteString(c.Data)
		} else {
			sb.WriteString(textContent(c))
		}
	}
	return sb.String()
}

// collapseWhitespace folds runs of whitespace into single spaces, trimming
// the ends. Good enough for a renderer without a white-space property.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
