package display

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestRender(t *testing.T) {
	out := Render("<list size=1, data={ 7 }>", 0)
	assert.Check(t, is.Contains(out, "<list size=1, data={ 7 }>"))
	assert.Check(t, strings.HasPrefix(out, "╭"))
	assert.Equal(t, 3, len(strings.Split(out, "\n")))
}

func TestRenderWraps(t *testing.T) {
	long := "<list size=12, data={ 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12 }>"
	out := Render(long, 20)
	lines := strings.Split(out, "\n")
	assert.Assert(t, len(lines) > 3, "expected wrapped output, got %q", out)
	for _, line := range lines {
		assert.Check(t, lipgloss.Width(line) <= 20, "line %q is too wide", line)
	}
}

func TestPrintNonTerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	f, err := os.Create(path)
	assert.NilError(t, err)
	assert.Check(t, !IsTerminal(f))
	assert.Equal(t, 0, Width(f))

	assert.NilError(t, Print(f, "<list size=0, data={ }>", true))
	assert.NilError(t, f.Close())

	b, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Equal(t, "<list size=0, data={ }>\n", string(b))
}
