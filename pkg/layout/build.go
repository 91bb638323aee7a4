package layout

import (
	"errors"

	"tessella/pkg/css"
)

// ErrRootDisplayNone is returned when the root style node is display:none;
// no layout tree can be produced from it.
var ErrRootDisplayNone = errors.New("layout: root node has display: none")

// BuildLayoutTree builds the skeleton of the layout tree: box kinds and
// parent/child structure only, all dimensions zero. display:none subtrees
// are dropped entirely; runs of consecutive inline children under a block
// parent are folded into a single anonymous block.
func BuildLayoutTree(styleNode *css.StyledNode) (*LayoutBox, error) {
	var kind BoxKind
	switch styleNode.Display() {
	case css.DisplayBlock:
		kind = BlockNode
	case css.DisplayInline:
		kind = InlineNode
	case css.DisplayNone:
		return nil, ErrRootDisplayNone
	}

	root := newLayoutBox(kind, styleNode)
	for _, child := range styleNode.Children {
		buildInto(root, child)
	}
	return root, nil
}

func buildInto(parent *LayoutBox, styleNode *css.StyledNode) {
	switch styleNode.Display() {
	case css.DisplayNone:
		return
	case css.DisplayBlock:
		parent.Children = append(parent.Children, build(BlockNode, styleNode))
	case css.DisplayInline:
		container := parent.inlineContainer()
		container.Children = append(container.Children, build(InlineNode, styleNode))
	}
}

func build(kind BoxKind, styleNode *css.StyledNode) *LayoutBox {
	box := newLayoutBox(kind, styleNode)
	for _, child := range styleNode.Children {
		buildInto(box, child)
	}
	return box
}

// inlineContainer returns the box a new inline child should be appended to.
// Inline and anonymous boxes take inline children directly; a block box
// routes them into its trailing anonymous block, creating one only if the
// last child is not already anonymous.
func (b *LayoutBox) inlineContainer() *LayoutBox {
	switch b.Kind {
	case InlineNode, AnonymousBlock:
		return b
	default:
		if n := len(b.Children); n == 0 || b.Children[n-1].Kind != AnonymousBlock {
			b.Children = append(b.Children, newLayoutBox(AnonymousBlock, nil))
		}
		return b.Children[len(b.Children)-1]
	}
}
