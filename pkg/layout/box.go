// Package layout transforms a styled tree into a positioned box tree.
//
// The algorithm is CSS2 normal flow, restricted: block and inline boxes
// only, no floats, no positioning, no real line wrapping. All lengths are
// fixed-point pixels (fixed.Int26_6) so heights accumulated across deep
// trees do not drift; conversion to float64 happens only when drawing or
// printing.
package layout

import (
	"golang.org/x/image/math/fixed"

	"tessella/pkg/css"
)

// DefaultFontSizePx is the one font size the engine measures text at.
const DefaultFontSizePx = 16.0

var (
	// DefaultFontSize is DefaultFontSizePx in fixed-point pixels.
	DefaultFontSize = css.Px(DefaultFontSizePx)
	// DefaultLineHeight is the normal line height, 1.2em at the default size.
	DefaultLineHeight = css.Px(DefaultFontSizePx * 1.2)
)

// Rect is a rectangle in fixed-point pixels.
type Rect struct {
	X, Y, Width, Height fixed.Int26_6
}

// EdgeSizes holds per-side lengths for one ring of the box model.
type EdgeSizes struct {
	Left, Right, Top, Bottom fixed.Int26_6
}

// Dimensions is the full box model of one layout box: the content rectangle
// plus the padding, border and margin rings around it.
type Dimensions struct {
	// Content is the content area, positioned relative to the document origin.
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// ExpandedBy grows the rectangle outward by the given edges.
func (r Rect) ExpandedBy(e EdgeSizes) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Left + e.Right,
		Height: r.Height + e.Top + e.Bottom,
	}
}

// PaddingBox is the area covered by the content area plus its padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox is the area covered by the content area plus padding and borders.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox is the area covered by the content area plus padding, borders,
// and margin.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

// BoxKind tags the layout box variant.
type BoxKind int

const (
	// BlockNode is a block-level box generated by a styled element.
	BlockNode BoxKind = iota
	// InlineNode is an inline-level box generated by a styled element or
	// text node.
	InlineNode
	// AnonymousBlock is an unstyled wrapper inserted around a run of
	// inline-level children inside a block parent.
	AnonymousBlock
)

func (k BoxKind) String() string {
	switch k {
	case BlockNode:
		return "block"
	case InlineNode:
		return "inline"
	case AnonymousBlock:
		return "anonymous"
	default:
		return "unknown"
	}
}

// LayoutBox is a node in the layout tree. Style is non-nil exactly for
// BlockNode and InlineNode boxes and borrows into the styled tree, which
// must outlive the layout tree.
type LayoutBox struct {
	Kind       BoxKind
	Style      *css.StyledNode
	Dimensions Dimensions
	Children   []*LayoutBox
}

func newLayoutBox(kind BoxKind, style *css.StyledNode) *LayoutBox {
	return &LayoutBox{Kind: kind, Style: style}
}

// StyledNode returns the style node the box was generated from. Calling it
// on an AnonymousBlock is a programming error and panics.
func (b *LayoutBox) StyledNode() *css.StyledNode {
	switch b.Kind {
	case BlockNode, InlineNode:
		return b.Style
	default:
		panic("layout: anonymous block box has no style node")
	}
}
