package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tessella/pkg/css"
	"tessella/pkg/layout"
	"tessella/pkg/text"
)

func testCLI() *CLI {
	return New(io.Discard, charmlog.ErrorLevel)
}

func writeHTML(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLayoutFile(t *testing.T) {
	c := testCLI()
	path := writeHTML(t, `
		<style>div { height: 50px; }</style>
		<div></div>
		<div></div>
	`)

	box, styled, err := c.layoutFile(path)
	require.NoError(t, err)
	require.NotNil(t, styled)
	require.Len(t, box.Children, 2)

	// Viewport width flows into the root box.
	assert.Equal(t, layout.BlockNode, box.Kind)
	assert.Equal(t, float64(800), css.PxFloat(box.Dimensions.Content.Width))
}

func TestLayoutFileMissingInput(t *testing.T) {
	_, _, err := testCLI().layoutFile(filepath.Join(t.TempDir(), "absent.html"))
	require.Error(t, err)
}

func TestMeasurerFallsBackWithoutFont(t *testing.T) {
	c := testCLI()
	assert.IsType(t, text.HeuristicMeasurer{}, c.measurer())

	c.Config.Font.Path = filepath.Join(t.TempDir(), "absent.ttf")
	assert.IsType(t, text.HeuristicMeasurer{}, c.measurer())
}

func TestDumpCommand(t *testing.T) {
	c := testCLI()
	path := writeHTML(t, `<div style="height: 10px"></div>`)

	cmd := newDumpCmd(c)
	cmd.SetArgs([]string{path})
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "block <div>")
}
