package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/hadronized/hop.kak/pkg/codec"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Palette holds the colors a Renderer paints with.
type Palette struct {
	Head string
	Tail string
	Done string
}

// DefaultPalette mirrors the hop.kak faces: a loud head and a muted tail.
var DefaultPalette = Palette{
	Head: "#fb7185",
	Tail: "#818cf8",
	Done: "#34d399",
}

// Renderer draws hint previews for humans.
type Renderer struct {
	out     *termenv.Output
	palette Palette
}

// NewRenderer renders to w. When colored is false every escape sequence is dropped.
func NewRenderer(w io.Writer, colored bool) *Renderer {
	return &Renderer{out: newOutput(w, colored), palette: DefaultPalette}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Labels prints one label per line, coloring the head symbol.
func (r *Renderer) Labels(labels []string) error {
	for i, l := range labels {
		if _, err := fmt.Fprintf(r.out, "%4d  %s\n", i, r.label(l)); err != nil {
			return err
		}
	}
	return nil
}

// Result prints every live hint of res, or its outcome when terminal.
func (r *Renderer) Result(res *codec.Result) error {
	if res.Terminal {
		status := r.out.String(string(res.Status)).Bold().Foreground(r.out.Color(r.palette.Done))
		if _, err := fmt.Fprintln(r.out, status); err != nil {
			return err
		}
		for _, s := range res.Selections {
			if _, err := fmt.Fprintf(r.out, "  %s\n", s.Desc); err != nil {
				return err
			}
		}
		return nil
	}

	for _, h := range res.Hints {
		head := r.out.String(h.Head).Bold().Foreground(r.out.Color(r.palette.Head))
		tail := r.out.String(h.Tail).Foreground(r.out.Color(r.palette.Tail))
		if _, err := fmt.Fprintf(r.out, "%s%s  %s\n", head, tail, h.Selection); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) label(l string) string {
	runes := []rune(l)
	if len(runes) == 0 {
		return ""
	}
	head := r.out.String(string(runes[0])).Bold().Foreground(r.out.Color(r.palette.Head))
	tail := r.out.String(string(runes[1:])).Foreground(r.out.Color(r.palette.Tail))
	return head.String() + tail.String()
}

func newOutput(w io.Writer, colored bool) *termenv.Output {
	if !colored {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w, termenv.WithProfile(termenv.TrueColor))
}
