package css

import (
	"testing"

	"tessella/pkg/html"
)

func parseDoc(t *testing.T, src string) *html.Document {
	t.Helper()
	doc, err := html.Parse(src)
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	return doc
}

func styleDoc(t *testing.T, src string) *StyledNode {
	t.Helper()
	styled, err := StyleTree(parseDoc(t, src))
	if err != nil {
		t.Fatalf("StyleTree: %v", err)
	}
	return styled
}

func TestCascadeSpecificityOrder(t *testing.T) {
	styled := styleDoc(t, `
		<style>
			div { width: 10px; }
			.wide { width: 20px; }
			#main { width: 30px; }
		</style>
		<div class="wide" id="main"></div>
	`)

	div := styled.Children[0]
	v, ok := div.Value("width")
	if !ok {
		t.Fatal("width not declared")
	}
	if v.ToPx() != Px(30) {
		t.Errorf("width = %v, want 30px (id selector wins)", PxFloat(v.ToPx()))
	}
}

func TestCascadeInlineStyleWins(t *testing.T) {
	styled := styleDoc(t, `
		<style>#main { width: 30px; }</style>
		<div id="main" style="width: 40px"></div>
	`)

	v, _ := styled.Children[0].Value("width")
	if v.ToPx() != Px(40) {
		t.Errorf("width = %v, want 40px (inline style wins)", PxFloat(v.ToPx()))
	}
}

func TestLookupShorthandFallback(t *testing.T) {
	sn := &StyledNode{
		Node: &html.Node{Type: html.ElementNode, TagName: "div"},
		Specified: map[string]Value{
			"margin": AutoValue,
		},
	}
	if got := sn.Lookup("margin-left", "margin", ZeroLength); !got.IsAuto() {
		t.Errorf("margin-left = %+v, want auto via shorthand", got)
	}
	if got := sn.Lookup("padding-left", "padding", ZeroLength); got != ZeroLength {
		t.Errorf("padding-left = %+v, want default", got)
	}
}

func TestDisplayClassification(t *testing.T) {
	styled := styleDoc(t, `
		<style>
			p { display: inline; }
			em { display: block; }
			.gone { display: none; }
		</style>
		<div></div>
		<span></span>
		<p></p>
		<em></em>
		<section class="gone"></section>
	`)

	want := []Display{DisplayBlock, DisplayInline, DisplayInline, DisplayBlock, DisplayNone}
	if len(styled.Children) != len(want) {
		t.Fatalf("children = %d, want %d", len(styled.Children), len(want))
	}
	for i, w := range want {
		if got := styled.Children[i].Display(); got != w {
			t.Errorf("child %d display = %v, want %v", i, got, w)
		}
	}
}

func TestTextNodesAreInline(t *testing.T) {
	styled := styleDoc(t, `<div>hello</div>`)
	text := styled.Children[0].Children[0]
	if !text.Node.IsText() {
		t.Fatal("expected a text node")
	}
	if text.Display() != DisplayInline {
		t.Errorf("text display = %v, want inline", text.Display())
	}
}

func TestStyleTreeCoversAllNodes(t *testing.T) {
	styled := styleDoc(t, `<div><span>a</span><p>b</p></div>`)
	var count int
	var walk func(*StyledNode)
	walk = func(sn *StyledNode) {
		count++
		for _, c := range sn.Children {
			walk(c)
		}
	}
	walk(styled)
	// root + div + span + text + p + text
	if count != 6 {
		t.Errorf("styled nodes = %d, want 6", count)
	}
}
