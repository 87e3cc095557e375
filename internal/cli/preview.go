package cli

import (
	"fmt"
	"os"

	"github.com/hadronized/hop.kak/internal/config"
	"github.com/hadronized/hop.kak/internal/presentation/graph"
	"github.com/hadronized/hop.kak/internal/presentation/tui"
	"github.com/hadronized/hop.kak/pkg/codec"
	"github.com/hadronized/hop.kak/pkg/domain"
	"github.com/hadronized/hop.kak/pkg/labels"
)

// Labels prints the labels n selections would receive, as a list or, with
// format "mermaid", as the label trie with the typed prefix highlighted.
func Labels(opts RunOptions, n int, typed string) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Keyset != "" {
		cfg.Keyset = opts.Keyset
	}

	keyset, err := domain.ParseKeyset(cfg.Keyset)
	if err != nil {
		return fmt.Errorf("keyset: %w", err)
	}
	ls, err := labels.Allocate(n, keyset)
	if err != nil {
		return err
	}

	w := opts.Stdout
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "", string(codec.FormatText):
	case "mermaid":
		_, err := fmt.Fprint(w, graph.GenerateMermaid(ls, &graph.Overlay{Typed: typed}))
		return err
	default:
		return fmt.Errorf("%w: %q", codec.ErrUnknownFormat, opts.Format)
	}

	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.String()
	}
	return tui.NewRenderer(w, isColorTerminal(opts)).Labels(out)
}

// Preview renders a JSON result read from stdin.
func Preview(opts RunOptions) error {
	r := opts.Stdin
	if r == nil {
		r = os.Stdin
	}
	res, err := codec.DecodeResult(r)
	if err != nil {
		return err
	}

	w := opts.Stdout
	if w == nil {
		w = os.Stdout
	}
	return tui.NewRenderer(w, isColorTerminal(opts)).Result(res)
}

// isColorTerminal is true only when writing to the real stdout and it is a TTY.
func isColorTerminal(opts RunOptions) bool {
	if opts.Stdout != nil && opts.Stdout != os.Stdout {
		return false
	}
	return tui.IsTerminal(os.Stdout)
}
