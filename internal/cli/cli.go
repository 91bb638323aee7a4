// Package cli implements the tessella command-line interface: an HTML file
// goes through parse, style, and layout, and comes out as a rendered PNG
// (render) or a printed layout tree (dump).
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"tessella/pkg/css"
	"tessella/pkg/html"
	"tessella/pkg/layout"
	"tessella/pkg/text"
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a CLI with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: DefaultConfig(),
	}
}

// measurer returns the font-metrics provider for the configured font, or
// the heuristic fallback when none is configured or loading fails.
func (c *CLI) measurer() text.Measurer {
	if c.Config.Font.Path == "" {
		return text.HeuristicMeasurer{}
	}
	m, err := text.LoadFace(c.Config.Font.Path)
	if err != nil {
		c.Logger.Warn("falling back to heuristic font metrics", "err", err)
		return text.HeuristicMeasurer{}
	}
	return m
}

// layoutFile runs the pipeline for one input file up to the layout tree.
// The returned styled tree must stay reachable while the layout tree is
// used; the boxes borrow into it.
func (c *CLI) layoutFile(path string) (*layout.LayoutBox, *css.StyledNode, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}

	doc, err := html.Parse(string(src))
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("parsed document", "stylesheets", len(doc.Stylesheets))

	styled, err := css.StyleTree(doc)
	if err != nil {
		return nil, nil, err
	}

	viewport := layout.Dimensions{Content: layout.Rect{
		Width:  css.Px(c.Config.Viewport.Width),
		Height: css.Px(c.Config.Viewport.Height),
	}}
	box, err := layout.LayoutTree(styled, c.measurer(), viewport)
	if err != nil {
		return nil, nil, err
	}
	return box, styled, nil
}
