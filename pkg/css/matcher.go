package css

import (
	"strings"

	"tessella/pkg/html"
)

// Matches reports whether the node matches the simple selector.
func Matches(node *html.Node, sel Selector) bool {
	if node.Type != html.ElementNode {
		return false
	}
	if sel.Tag != "" && sel.Tag != "*" && sel.Tag != node.TagName {
		return false
	}
	if sel.ID != "" {
		id, ok := node.GetAttribute("id")
		if !ok || id != sel.ID {
			return false
		}
	}
	if len(sel.Classes) > 0 {
		classAttr, ok := node.GetAttribute("class")
		if !ok {
			return false
		}
		nodeClasses := strings.Fields(classAttr)
		for _, want := range sel.Classes {
			found := false
			for _, have := range nodeClasses {
				if have == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

// matchedRule pairs a rule's declarations with the specificity of the
// selector that matched, so the cascade can order them.
type matchedRule struct {
	specificity  int
	declarations map[string]Value
}

// findMatchingRules returns every rule matching the node, one entry per
// matching selector.
func findMatchingRules(node *html.Node, sheet *Stylesheet) []matchedRule {
	matches := make([]matchedRule, 0)
	for _, rule := range sheet.Rules {
		best := -1
		for _, sel := range rule.Selectors {
			if spec := sel.Specificity(); spec > best && Matches(node, sel) {
				best = spec
			}
		}
		if best >= 0 {
			matches = append(matches, matchedRule{
				specificity:  best,
				declarations: rule.Declarations,
			})
		}
	}
	return matches
}
