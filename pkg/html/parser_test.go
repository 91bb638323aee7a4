package html

import "testing"

func TestParseSimpleDocument(t *testing.T) {
	doc, err := Parse(`<div id="main" class="box"><p>hello</p></div>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(doc.Root.Children))
	}

	div := doc.Root.Children[0]
	if div.TagName != "div" {
		t.Errorf("tag = %q, want div", div.TagName)
	}
	if id, _ := div.GetAttribute("id"); id != "main" {
		t.Errorf("id = %q, want main", id)
	}
	if class, _ := div.GetAttribute("class"); class != "box" {
		t.Errorf("class = %q, want box", class)
	}

	p := div.Children[0]
	if p.TagName != "p" || len(p.Children) != 1 {
		t.Fatalf("unexpected p node: %+v", p)
	}
	text := p.Children[0]
	if !text.IsText() || text.Text != "hello" {
		t.Errorf("text node = %+v", text)
	}
}

func TestParseCollectsStylesheets(t *testing.T) {
	doc, err := Parse(`
		<html>
		<head><style>div { width: 10px; }</style></head>
		<body><style>p { height: 5px; }</style><p></p></body>
		</html>
	`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Stylesheets) != 2 {
		t.Fatalf("stylesheets = %d, want 2", len(doc.Stylesheets))
	}
	if doc.Stylesheets[0] != "div { width: 10px; }" {
		t.Errorf("stylesheet[0] = %q", doc.Stylesheets[0])
	}
	// The <style> elements themselves never appear in the DOM.
	if len(doc.Root.Children) != 1 || doc.Root.Children[0].TagName != "p" {
		t.Errorf("root children = %+v", doc.Root.Children)
	}
}

func TestParseSkipsScriptsAndComments(t *testing.T) {
	doc, err := Parse(`<!-- note --><script>var x = 1;</script><div></div>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Root.Children) != 1 || doc.Root.Children[0].TagName != "div" {
		t.Errorf("root children = %+v", doc.Root.Children)
	}
}

func TestParseSplicesStructuralWrappers(t *testing.T) {
	// html/head/body added by the parser do not appear as DOM nodes.
	doc, err := Parse(`<html><body><div></div><span></span></body></html>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Root.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(doc.Root.Children))
	}
	if doc.Root.Children[0].TagName != "div" || doc.Root.Children[1].TagName != "span" {
		t.Errorf("children = %q, %q", doc.Root.Children[0].TagName, doc.Root.Children[1].TagName)
	}
}

func TestParseDropsWhitespaceOnlyText(t *testing.T) {
	doc, err := Parse("<div>\n\t</div>")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n := len(doc.Root.Children[0].Children); n != 0 {
		t.Errorf("div children = %d, want 0", n)
	}
}

func TestParseCollapsesInnerWhitespace(t *testing.T) {
	doc, err := Parse("<p>hello   \n  world</p>")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	text := doc.Root.Children[0].Children[0]
	if text.Text != "hello world" {
		t.Errorf("text = %q, want %q", text.Text, "hello world")
	}
}

func TestParentLinks(t *testing.T) {
	doc, err := Parse(`<div><span></span></div>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	div := doc.Root.Children[0]
	if div.Parent != doc.Root {
		t.Error("div parent not set to root")
	}
	if div.Children[0].Parent != div {
		t.Error("span parent not set to div")
	}
}
