package tui

import (
	"fmt"
	"io"
)

// PrintBanner writes the hop ASCII banner followed by the version line.
func PrintBanner(w io.Writer, version string, colored bool) {
	out := newOutput(w, colored)
	lines := []struct {
		text  string
		color string
	}{
		{" _                 ", "#818cf8"},
		{"| |__   ___  _ __  ", "#a78bfa"},
		{"| '_ \\ / _ \\| '_ \\ ", "#c084fc"},
		{"| | | | (_) | |_) |", "#e879f9"},
		{"|_| |_|\\___/| .__/ ", "#f472b6"},
		{"            |_|    ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintf(w, "\n%s\n", out.String("hop "+version).Faint())
}
