package progress

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	clearLine    = "\033[2K\r"
	defaultWidth = 80
)

// detectTerminal reports whether writer is a terminal and its width.
func detectTerminal(writer io.Writer) (bool, int) {
	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return false, defaultWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		width = defaultWidth
	}
	return true, width
}

// truncate cuts s to width visible runes. Escape sequences take no space.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	var result strings.Builder
	visible := 0
	escaping := false
	for _, r := range s {
		switch {
		case r == '\033':
			escaping = true
		case escaping:
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				escaping = false
			}
		case visible >= width:
			result.WriteString("\033[0m")
			return result.String()
		default:
			visible++
		}
		result.WriteRune(r)
	}
	return result.String()
}
