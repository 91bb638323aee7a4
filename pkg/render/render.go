// Package render rasterizes a layout tree to an image. This is the only
// place fixed-point layout lengths become floating-point drawing
// coordinates.
package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"tessella/pkg/css"
	"tessella/pkg/layout"
)

// Renderer paints layout boxes onto a gg context.
type Renderer struct {
	dc       *gg.Context
	fontPath string
	fontOK   bool
}

// NewRenderer creates a renderer with a white canvas of the given size.
// fontPath may be empty; text is then skipped.
func NewRenderer(width, height int, fontPath string) *Renderer {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	r := &Renderer{dc: dc, fontPath: fontPath}
	if fontPath != "" {
		if err := dc.LoadFontFace(fontPath, layout.DefaultFontSizePx); err == nil {
			r.fontOK = true
		}
	}
	return r
}

// Render paints the box tree in document order: each box's background and
// borders, then its children on top.
func (r *Renderer) Render(root *layout.LayoutBox) {
	r.drawBox(root)
}

// SavePNG writes the canvas to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

func (r *Renderer) drawBox(box *layout.LayoutBox) {
	if box.Kind != layout.AnonymousBlock {
		r.drawBackground(box)
		r.drawBorders(box)
		r.drawText(box)
	}
	for _, child := range box.Children {
		r.drawBox(child)
	}
}

func (r *Renderer) drawBackground(box *layout.LayoutBox) {
	color, ok := styleColor(box.StyledNode(), "background-color", "background")
	if !ok {
		return
	}
	rect := box.Dimensions.BorderBox()
	r.fillRect(rect, color)
}

// drawBorders paints each border edge as a filled rectangle between the
// border box and the padding box.
func (r *Renderer) drawBorders(box *layout.LayoutBox) {
	color, ok := styleColor(box.StyledNode(), "border-color", "border")
	if !ok {
		return
	}
	d := box.Dimensions
	bb := d.BorderBox()

	// Left
	r.fillRect(layout.Rect{X: bb.X, Y: bb.Y, Width: d.Border.Left, Height: bb.Height}, color)
	// Right
	r.fillRect(layout.Rect{X: bb.X + bb.Width - d.Border.Right, Y: bb.Y, Width: d.Border.Right, Height: bb.Height}, color)
	// Top
	r.fillRect(layout.Rect{X: bb.X, Y: bb.Y, Width: bb.Width, Height: d.Border.Top}, color)
	// Bottom
	r.fillRect(layout.Rect{X: bb.X, Y: bb.Y + bb.Height - d.Border.Bottom, Width: bb.Width, Height: d.Border.Bottom}, color)
}

func (r *Renderer) drawText(box *layout.LayoutBox) {
	if !r.fontOK {
		return
	}
	node := box.StyledNode().Node
	if !node.IsText() {
		return
	}
	d := box.Dimensions.Content
	r.dc.SetRGB(0, 0, 0)
	// DrawString takes the baseline; drop it one em below the content top.
	r.dc.DrawString(node.Text, css.PxFloat(d.X), css.PxFloat(d.Y)+layout.DefaultFontSizePx)
}

func (r *Renderer) fillRect(rect layout.Rect, color css.Color) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	r.dc.SetRGB255(int(color.R), int(color.G), int(color.B))
	r.dc.DrawRectangle(css.PxFloat(rect.X), css.PxFloat(rect.Y),
		css.PxFloat(rect.Width), css.PxFloat(rect.Height))
	r.dc.Fill()
}

// styleColor resolves a color property with its shorthand fallback.
func styleColor(sn *css.StyledNode, name, shorthand string) (css.Color, bool) {
	v := sn.Lookup(name, shorthand, css.Value{Kind: css.Keyword, Kw: "none"})
	if v.Kind != css.ColorValue {
		return css.Color{}, false
	}
	return v.Color, true
}

// Image returns the rendered image for callers that want the pixels rather
// than a PNG file.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}
