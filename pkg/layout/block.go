package layout

import (
	"golang.org/x/image/math/fixed"

	"tessella/pkg/css"
	"tessella/pkg/text"
)

// layoutBlock lays out a block-level element and its descendants.
// Width must be resolved before recursing (children depend on it); height
// is finalized after (it depends on the children).
func (b *LayoutBox) layoutBlock(fonts text.Measurer, containing Dimensions) {
	b.calculateBlockWidth(containing)
	b.calculateBlockPosition(containing)
	b.layoutBlockChildren(fonts)
	b.calculateBlockHeight(fonts)
}

func length(px fixed.Int26_6) css.Value {
	return css.Value{Kind: css.Length, Px: px}
}

// calculateBlockWidth resolves the used values of width and the horizontal
// margins, borders and paddings against the containing block, per CSS2
// §10.3.3. After this, width + margins + borders + paddings equals the
// containing content width exactly, except when an explicit width leaves a
// deficit too large to absorb: then width clamps to zero and margin-right
// carries the (negative) remainder.
func (b *LayoutBox) calculateBlockWidth(containing Dimensions) {
	style := b.StyledNode()

	// width defaults to auto; the edges default to 0.
	width := css.AutoValue
	if v, ok := style.Value("width"); ok {
		width = v
	}
	zero := css.ZeroLength

	marginLeft := style.Lookup("margin-left", "margin", zero)
	marginRight := style.Lookup("margin-right", "margin", zero)
	borderLeft := style.Lookup("border-left-width", "border-width", zero)
	borderRight := style.Lookup("border-right-width", "border-width", zero)
	paddingLeft := style.Lookup("padding-left", "padding", zero)
	paddingRight := style.Lookup("padding-right", "padding", zero)

	// Auto contributors count as zero in the sum.
	total := width.ToPx() + marginLeft.ToPx() + marginRight.ToPx() +
		borderLeft.ToPx() + borderRight.ToPx() +
		paddingLeft.ToPx() + paddingRight.ToPx()

	// If width is not auto and the total is wider than the container,
	// auto margins get no room: treat them as 0.
	if !width.IsAuto() && total > containing.Content.Width {
		if marginLeft.IsAuto() {
			marginLeft = zero
		}
		if marginRight.IsAuto() {
			marginRight = zero
		}
	}

	underflow := containing.Content.Width - total

	switch {
	// Over-constrained: margin-right absorbs the difference, possibly
	// going negative.
	case !width.IsAuto() && !marginLeft.IsAuto() && !marginRight.IsAuto():
		marginRight = length(marginRight.ToPx() + underflow)

	// Exactly one margin is auto: its used value follows from the equality.
	case !width.IsAuto() && !marginLeft.IsAuto() && marginRight.IsAuto():
		marginRight = length(underflow)
	case !width.IsAuto() && marginLeft.IsAuto() && !marginRight.IsAuto():
		marginLeft = length(underflow)

	// width is auto: any auto margin becomes 0 and width takes the
	// underflow. A negative underflow cannot make width negative; it is
	// pushed into margin-right instead.
	case width.IsAuto():
		if marginLeft.IsAuto() {
			marginLeft = zero
		}
		if marginRight.IsAuto() {
			marginRight = zero
		}
		if underflow >= 0 {
			width = length(underflow)
		} else {
			width = zero
			marginRight = length(marginRight.ToPx() + underflow)
		}

	// Both margins auto: split the underflow between them. The right
	// margin takes the odd fixed-point unit so the sum stays exact.
	default:
		half := underflow / 2
		marginLeft = length(half)
		marginRight = length(underflow - half)
	}

	d := &b.Dimensions
	d.Content.Width = width.ToPx()
	d.Padding.Left = paddingLeft.ToPx()
	d.Padding.Right = paddingRight.ToPx()
	d.Border.Left = borderLeft.ToPx()
	d.Border.Right = borderRight.ToPx()
	d.Margin.Left = marginLeft.ToPx()
	d.Margin.Right = marginRight.ToPx()
}

// calculateBlockPosition resolves the vertical edges (auto margins become 0
// here) and positions the content origin: directly below every sibling
// already laid out in the containing block.
func (b *LayoutBox) calculateBlockPosition(containing Dimensions) {
	style := b.StyledNode()
	d := &b.Dimensions
	zero := css.ZeroLength

	d.Margin.Top = style.Lookup("margin-top", "margin", zero).ToPx()
	d.Margin.Bottom = style.Lookup("margin-bottom", "margin", zero).ToPx()
	d.Border.Top = style.Lookup("border-top-width", "border-width", zero).ToPx()
	d.Border.Bottom = style.Lookup("border-bottom-width", "border-width", zero).ToPx()
	d.Padding.Top = style.Lookup("padding-top", "padding", zero).ToPx()
	d.Padding.Bottom = style.Lookup("padding-bottom", "padding", zero).ToPx()

	d.Content.X = containing.Content.X + d.Margin.Left + d.Border.Left + d.Padding.Left

	// The containing block's content height is the running total of the
	// children placed so far; stacking below it places this box below them.
	d.Content.Y = containing.Content.Y + containing.Content.Height +
		d.Margin.Top + d.Border.Top + d.Padding.Top
}

// layoutBlockChildren recurses into the children, growing this box's content
// height by each child's margin-box height so they stack vertically.
func (b *LayoutBox) layoutBlockChildren(fonts text.Measurer) {
	d := &b.Dimensions
	for _, child := range b.Children {
		child.layout(fonts, *d, *d)
		d.Content.Height += child.Dimensions.MarginBox().Height
	}
}

// calculateBlockHeight keeps the accumulated height unless an explicit
// length was declared, then applies the line-height correction: content is
// shifted up by half the gap between the default line height and the font's
// ascent plus descent, compensating for leading when the block carries text.
func (b *LayoutBox) calculateBlockHeight(fonts text.Measurer) {
	if v, ok := b.StyledNode().Value("height"); ok && v.Kind == css.Length {
		b.Dimensions.Content.Height = v.Px
	}

	ext := fonts.Extents(DefaultFontSize)
	leading := DefaultLineHeight - ext.Ascent - ext.Descent
	b.Dimensions.Content.Y -= leading / 2
}
