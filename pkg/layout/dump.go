package layout

import (
	"fmt"
	"io"
	"strings"

	"tessella/pkg/css"
)

// Dump writes a human-readable rendering of the layout tree: one line per
// box with its kind, source node and the four box-model rectangles,
// indented by depth.
func Dump(w io.Writer, box *LayoutBox) {
	dumpBox(w, box, 0)
}

// String returns the Dump output as a string.
func (b *LayoutBox) String() string {
	var sb strings.Builder
	Dump(&sb, b)
	return sb.String()
}

func dumpBox(w io.Writer, box *LayoutBox, depth int) {
	indent := strings.Repeat("  ", depth)
	d := box.Dimensions
	fmt.Fprintf(w, "%s%s%s content=%s padding=%s border=%s margin=%s\n",
		indent, box.Kind, describeNode(box),
		formatRect(d.Content), formatRect(d.PaddingBox()),
		formatRect(d.BorderBox()), formatRect(d.MarginBox()))
	for _, child := range box.Children {
		dumpBox(w, child, depth+1)
	}
}

func describeNode(box *LayoutBox) string {
	if box.Kind == AnonymousBlock {
		return ""
	}
	node := box.Style.Node
	if node.IsText() {
		text := node.Text
		if len(text) > 20 {
			text = text[:20] + "…"
		}
		return fmt.Sprintf(" %q", text)
	}
	return fmt.Sprintf(" <%s>", node.TagName)
}

func formatRect(r Rect) string {
	return fmt.Sprintf("(%.6g,%.6g %.6gx%.6g)",
		css.PxFloat(r.X), css.PxFloat(r.Y),
		css.PxFloat(r.Width), css.PxFloat(r.Height))
}
