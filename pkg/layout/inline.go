package layout

import (
	"golang.org/x/image/math/fixed"

	"tessella/pkg/css"
	"tessella/pkg/text"
)

// layoutInline lays out an inline-level element and its descendants. There
// is no line breaking: siblings flow strictly left to right and a text
// node's height approximates the lines it would wrap into.
func (b *LayoutBox) layoutInline(fonts text.Measurer, containing, saved Dimensions) {
	b.calculateInlinePosition(containing)
	b.layoutInlineChildren(fonts)
	b.layoutText(fonts, saved)
}

// calculateInlinePosition resolves the inline box's edges (auto margins
// resolve to 0) and places its content origin after the content already laid
// out in the containing box: offset by the container's evolving content
// width horizontally and content height vertically.
func (b *LayoutBox) calculateInlinePosition(containing Dimensions) {
	style := b.StyledNode()
	d := &b.Dimensions
	zero := css.ZeroLength

	d.Margin.Top = style.Lookup("margin-top", "margin", zero).ToPx()
	d.Margin.Bottom = style.Lookup("margin-bottom", "margin", zero).ToPx()
	d.Margin.Left = style.Lookup("margin-left", "margin", zero).ToPx()
	d.Margin.Right = style.Lookup("margin-right", "margin", zero).ToPx()

	d.Border.Top = style.Lookup("border-top-width", "border-width", zero).ToPx()
	d.Border.Bottom = style.Lookup("border-bottom-width", "border-width", zero).ToPx()
	d.Border.Left = style.Lookup("border-left-width", "border-width", zero).ToPx()
	d.Border.Right = style.Lookup("border-right-width", "border-width", zero).ToPx()

	d.Padding.Top = style.Lookup("padding-top", "padding", zero).ToPx()
	d.Padding.Bottom = style.Lookup("padding-bottom", "padding", zero).ToPx()
	d.Padding.Left = style.Lookup("padding-left", "padding", zero).ToPx()
	d.Padding.Right = style.Lookup("padding-right", "padding", zero).ToPx()

	d.Content.X = containing.Content.X + containing.Content.Width +
		d.Margin.Left + d.Border.Left + d.Padding.Left
	d.Content.Y = containing.Content.Y + containing.Content.Height +
		d.Margin.Top + d.Border.Top + d.Padding.Top
}

// layoutInlineChildren places the children left to right, accumulating their
// margin-box widths into this box's content width. The container's height is
// pinned to a single line regardless of how many children it holds; this is
// not a real inline formatting context.
func (b *LayoutBox) layoutInlineChildren(fonts text.Measurer) {
	d := &b.Dimensions
	for _, child := range b.Children {
		child.layout(fonts, *d, *d)
		d.Content.Width += child.Dimensions.MarginBox().Width
	}
	d.Content.Height = DefaultLineHeight
}

// layoutText sizes a text-bearing box from its measured advance width.
// Height reserves one line per full multiple of the reference block's width,
// plus one. That stands in for the lines real word wrapping would produce;
// this engine does not split line boxes.
func (b *LayoutBox) layoutText(fonts text.Measurer, saved Dimensions) {
	style := b.StyledNode()
	if !style.Node.IsText() {
		return
	}

	advance := fonts.AdvanceWidth(DefaultFontSize, style.Node.Text)
	d := &b.Dimensions
	d.Content.Width = advance

	lines := 1
	if maxWidth := saved.Content.Width.Round(); maxWidth != 0 {
		lines = advance.Floor()/maxWidth + 1
	}
	d.Content.Height = DefaultLineHeight * fixed.Int26_6(lines)
}
