// Package display prints list renderings, styled when the destination is a
// terminal.
package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// These colors are from the gruvbox vim theme
// https://github.com/morhetz/gruvbox
var fg = lipgloss.AdaptiveColor{
	Light: "#3c3836",
	Dark:  "#ebdbb2",
}
var blue = lipgloss.Color("#458588")

var frameStyle = lipgloss.NewStyle().
	Foreground(fg).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(blue).
	Padding(0, 1)

// borderColumns is the horizontal space taken by the left and right border.
const borderColumns = 2

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Width returns the column count of the terminal behind f, or 0 if it cannot
// be determined.
func Width(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// Render frames s. Content wider than width columns is wrapped; width <= 0
// leaves it unbounded.
func Render(s string, width int) string {
	st := frameStyle
	if width > borderColumns+2 {
		st = st.MaxWidth(width).Width(width - borderColumns)
	}
	return st.Render(s)
}

// Print writes s and a newline to f. When pretty is set and f is a terminal,
// s is framed to the terminal width first.
func Print(f *os.File, s string, pretty bool) error {
	if pretty && IsTerminal(f) {
		s = Render(s, Width(f))
	}
	_, err := fmt.Fprintln(f, s)
	return err
}
