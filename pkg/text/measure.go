// Package text provides the font measurement queries layout depends on:
// string advance widths and font vertical extents, both in fixed-point
// pixels so measured values feed the layout arithmetic without rounding.
package text

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"tessella/pkg/css"
)

// FontExtents describes the vertical metrics of a font at a given size.
type FontExtents struct {
	Ascent  fixed.Int26_6
	Descent fixed.Int26_6
	Height  fixed.Int26_6
}

// Measurer answers the measurement queries layout makes. Implementations are
// not safe for use by two concurrent layout passes; callers serialize.
type Measurer interface {
	// AdvanceWidth returns the advance width of s at the given font size.
	AdvanceWidth(size fixed.Int26_6, s string) fixed.Int26_6
	// Extents returns the font's vertical extents at the given font size.
	Extents(size fixed.Int26_6) FontExtents
}

// FaceMeasurer measures with a parsed TrueType font. Faces are cached per
// size; only a single size is queried during a layout pass.
type FaceMeasurer struct {
	font  *truetype.Font
	faces map[fixed.Int26_6]font.Face
}

// LoadFace parses the TTF file at path into a FaceMeasurer.
func LoadFace(path string) (*FaceMeasurer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &FaceMeasurer{font: f, faces: make(map[fixed.Int26_6]font.Face)}, nil
}

func (m *FaceMeasurer) face(size fixed.Int26_6) font.Face {
	if f, ok := m.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(m.font, &truetype.Options{Size: css.PxFloat(size)})
	m.faces[size] = f
	return f
}

// AdvanceWidth returns the advance width of s.
func (m *FaceMeasurer) AdvanceWidth(size fixed.Int26_6, s string) fixed.Int26_6 {
	return font.MeasureString(m.face(size), s)
}

// Extents returns the face's ascent, descent and line height.
func (m *FaceMeasurer) Extents(size fixed.Int26_6) FontExtents {
	metrics := m.face(size).Metrics()
	return FontExtents{
		Ascent:  metrics.Ascent,
		Descent: metrics.Descent,
		Height:  metrics.Height,
	}
}

// HeuristicMeasurer estimates metrics without a font file: each rune advances
// 0.6 em, the ascent is 0.8 em and the descent is the rest of the em. Used
// when no font is configured and for deterministic tests.
type HeuristicMeasurer struct{}

// AdvanceWidth estimates the advance width of s.
func (HeuristicMeasurer) AdvanceWidth(size fixed.Int26_6, s string) fixed.Int26_6 {
	runes := 0
	for range s {
		runes++
	}
	return size * fixed.Int26_6(runes) * 3 / 5
}

// Extents estimates vertical extents from the font size alone. The descent
// is the remainder after the ascent, so the two sum to the size exactly even
// when the division truncates.
func (HeuristicMeasurer) Extents(size fixed.Int26_6) FontExtents {
	ascent := size * 4 / 5
	return FontExtents{
		Ascent:  ascent,
		Descent: size - ascent,
		Height:  size * 6 / 5,
	}
}
