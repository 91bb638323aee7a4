package layout

import (
	"tessella/pkg/css"
	"tessella/pkg/text"
)

// LayoutTree builds and lays out the box tree for a styled tree.
//
// containing describes the initial containing block (normally the viewport).
// Its content height is reset to zero before layout, since block layout grows
// a container's height as children are placed. The original dimensions are
// kept as the reference block for text max-width sizing.
//
// The layout tree borrows the styled tree and is valid only as long as the
// styled tree is; a new call rebuilds everything from scratch.
func LayoutTree(root *css.StyledNode, fonts text.Measurer, containing Dimensions) (*LayoutBox, error) {
	saved := containing
	containing.Content.Height = 0

	rootBox, err := BuildLayoutTree(root)
	if err != nil {
		return nil, err
	}
	rootBox.layout(fonts, containing, saved)
	return rootBox, nil
}

// layout lays out one box and its descendants. Widths and positions flow
// top-down from the containing block; heights flow bottom-up out of the
// child recursion.
func (b *LayoutBox) layout(fonts text.Measurer, containing, saved Dimensions) {
	switch b.Kind {
	case BlockNode:
		b.layoutBlock(fonts, containing)
	case InlineNode:
		b.layoutInline(fonts, containing, saved)
	case AnonymousBlock:
		b.layoutAnonymous(fonts, containing, saved)
	}
}

// layoutAnonymous lays out an anonymous block: it inherits the containing
// block's dimensions wholesale, places its inline children left to right
// using a running width, and takes the tallest child margin box as its
// height.
func (b *LayoutBox) layoutAnonymous(fonts text.Measurer, containing, saved Dimensions) {
	b.Dimensions = containing

	cb := containing
	cb.Content.Width = 0
	for _, child := range b.Children {
		child.layout(fonts, cb, saved)
		cb.Content.Width += child.Dimensions.MarginBox().Width
		if h := child.Dimensions.MarginBox().Height; h > b.Dimensions.Content.Height {
			b.Dimensions.Content.Height = h
		}
	}
}
