package layout

import (
	"strings"
	"testing"
)

func TestDumpListsEveryBox(t *testing.T) {
	root := element("html", map[string]string{"width": "100px"},
		element("div", map[string]string{"height": "10px"}),
		textNode("hello"))
	box := mustLayout(t, root, fakeMeasurer{}, viewport(100, 600))

	out := box.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("dump lines = %d, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "block <html>") {
		t.Errorf("root line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "  anonymous") {
		t.Errorf("anonymous line = %q", lines[2])
	}
	if !strings.Contains(lines[3], `"hello"`) {
		t.Errorf("text line = %q", lines[3])
	}
}
