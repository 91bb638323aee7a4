package css

import (
	"fmt"
	"strings"
)

// Selector is a simple selector: an optional tag name, optional #id, and any
// number of .class parts. "*" matches everything.
type Selector struct {
	Raw     string
	Tag     string
	ID      string
	Classes []string
}

// Specificity scores a selector for the cascade: ids count 100, classes 10,
// tag names 1.
func (s Selector) Specificity() int {
	spec := 0
	if s.ID != "" {
		spec += 100
	}
	spec += 10 * len(s.Classes)
	if s.Tag != "" && s.Tag != "*" {
		spec++
	}
	return spec
}

// Rule is a group of selectors sharing one declaration block.
type Rule struct {
	Selectors    []Selector
	Declarations map[string]Value
}

// Stylesheet is a parsed CSS stylesheet.
type Stylesheet struct {
	Rules []Rule
}

// ParseStylesheet parses stylesheet source into rules. Malformed rules are
// skipped rather than failing the whole sheet.
func ParseStylesheet(src string) (*Stylesheet, error) {
	sheet := &Stylesheet{Rules: make([]Rule, 0)}

	src = stripComments(strings.TrimSpace(src))
	if src == "" {
		return sheet, nil
	}

	for _, ruleStr := range splitRules(src) {
		rule, err := parseRule(ruleStr)
		if err != nil {
			continue
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet, nil
}

// stripComments removes /* ... */ comments.
func stripComments(src string) string {
	var sb strings.Builder
	for {
		start := strings.Index(src, "/*")
		if start == -1 {
			sb.WriteString(src)
			return sb.String()
		}
		sb.WriteString(src[:start])
		end := strings.Index(src[start+2:], "*/")
		if end == -1 {
			return sb.String()
		}
		src = src[start+2+end+2:]
	}
}

// splitRules splits stylesheet source into individual "selector { ... }"
// chunks, tracking brace depth.
func splitRules(src string) []string {
	rules := make([]string, 0)
	depth := 0
	start := 0

	for i, ch := range src {
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				ruleStr := src[start : i+1]
				if strings.TrimSpace(ruleStr) != "" {
					rules = append(rules, ruleStr)
				}
				start = i + 1
			}
		}
	}
	return rules
}

func parseRule(ruleStr string) (Rule, error) {
	bracePos := strings.Index(ruleStr, "{")
	if bracePos == -1 {
		return Rule{}, fmt.Errorf("no opening brace found")
	}

	selectorStr := strings.TrimSpace(ruleStr[:bracePos])
	selectors := make([]Selector, 0, 1)
	for _, part := range strings.Split(selectorStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		selectors = append(selectors, parseSelector(part))
	}
	if len(selectors) == 0 {
		return Rule{}, fmt.Errorf("empty selector")
	}

	declEnd := strings.LastIndex(ruleStr, "}")
	if declEnd == -1 {
		declEnd = len(ruleStr)
	}
	return Rule{
		Selectors:    selectors,
		Declarations: parseDeclarations(ruleStr[bracePos+1 : declEnd]),
	}, nil
}

// parseSelector parses a compound simple selector like "div", ".note",
// "#head", "*", or "p.warn#top". Combinators are not supported.
func parseSelector(s string) Selector {
	sel := Selector{Raw: s}
	for len(s) > 0 {
		switch s[0] {
		case '#':
			rest := s[1:]
			end := simpleNameEnd(rest)
			sel.ID = rest[:end]
			s = rest[end:]
		case '.':
			rest := s[1:]
			end := simpleNameEnd(rest)
			sel.Classes = append(sel.Classes, rest[:end])
			s = rest[end:]
		case '*':
			sel.Tag = "*"
			s = s[1:]
		default:
			end := simpleNameEnd(s)
			if end == 0 {
				// Unparseable character; stop here.
				return sel
			}
			sel.Tag = strings.ToLower(s[:end])
			s = s[end:]
		}
	}
	return sel
}

// simpleNameEnd returns the length of the identifier prefix of s.
func simpleNameEnd(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '#' || c == '.' || c == '*' {
			return i
		}
	}
	return len(s)
}

// parseDeclarations parses "prop: value;" pairs, expanding shorthands.
func parseDeclarations(declStr string) map[string]Value {
	decls := make(map[string]Value)

	for _, part := range strings.Split(declStr, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colonPos := strings.Index(part, ":")
		if colonPos == -1 {
			continue
		}
		property := strings.ToLower(strings.TrimSpace(part[:colonPos]))
		value := strings.TrimSpace(part[colonPos+1:])
		if property == "" || value == "" {
			continue
		}
		expandShorthand(decls, property, value)
	}
	return decls
}

// expandShorthand expands margin/padding/border-width shorthands into their
// per-side properties; everything else is stored as-is.
func expandShorthand(decls map[string]Value, property, value string) {
	switch property {
	case "margin", "padding":
		expandBoxProperty(decls, property, value)
	case "border-width":
		expandBoxProperty(decls, "border", value, "-top-width", "-right-width", "-bottom-width", "-left-width")
	case "border":
		expandBorderProperty(decls, value)
	default:
		decls[property] = ParseValue(value)
	}
}

// expandBoxProperty expands 1–4 value shorthands using the CSS clockwise
// convention. Suffixes default to -top/-right/-bottom/-left.
func expandBoxProperty(decls map[string]Value, prefix, value string, suffixes ...string) {
	if len(suffixes) != 4 {
		suffixes = []string{"-top", "-right", "-bottom", "-left"}
	}
	parts := strings.Fields(value)
	var top, right, bottom, left string
	switch len(parts) {
	case 1:
		top, right, bottom, left = parts[0], parts[0], parts[0], parts[0]
	case 2:
		top, right, bottom, left = parts[0], parts[1], parts[0], parts[1]
	case 3:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[1]
	case 4:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[3]
	default:
		return
	}
	decls[prefix+suffixes[0]] = ParseValue(top)
	decls[prefix+suffixes[1]] = ParseValue(right)
	decls[prefix+suffixes[2]] = ParseValue(bottom)
	decls[prefix+suffixes[3]] = ParseValue(left)
}

// expandBorderProperty expands "border: 1px solid black" into width, style
// and color properties.
func expandBorderProperty(decls map[string]Value, value string) {
	for _, part := range strings.Fields(value) {
		v := ParseValue(part)
		switch {
		case v.Kind == Length:
			decls["border-top-width"] = v
			decls["border-right-width"] = v
			decls["border-bottom-width"] = v
			decls["border-left-width"] = v
		case v.Kind == ColorValue:
			decls["border-color"] = v
		default:
			decls["border-style"] = v
		}
	}
}
