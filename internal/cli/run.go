package cli

import (
	"context"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	hop "github.com/hadronized/hop.kak"
	"github.com/hadronized/hop.kak/pkg/codec"
	"github.com/hadronized/hop.kak/pkg/domain"
)

// RunOptions contains the configuration shared by every command.
// Empty fields fall back to the config file and environment.
type RunOptions struct {
	ConfigPath      string
	Debug           bool
	MetricsTextfile string

	Keyset    string
	Format    string
	Strict    *bool
	SessionID string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StepOptions carries what the previous call emitted plus the user's input.
type StepOptions struct {
	RunOptions

	// Labels and Original are space-separated lists, as the editor stores them.
	Labels   string
	Original string

	Key    string
	Cancel bool

	// Input set to "json" reads the previous Result document from Stdin.
	Input string
}

// Hint handles the first call of a hinting session: allocate and emit.
func Hint(opts RunOptions, args []string) error {
	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.finish()

	sels, err := s.readSelections(args)
	if err != nil {
		return err
	}

	snap, err := s.engine.Invoke(context.Background(), hop.Invocation{
		SessionID:  opts.SessionID,
		Keyset:     s.keyset,
		Selections: sels,
	})
	if err != nil {
		return err
	}
	return s.emit(snap)
}

// Step handles every later call: reduce by a key, cancel, or re-emit.
func Step(opts StepOptions, args []string) error {
	s, err := newSession(opts.RunOptions)
	if err != nil {
		return err
	}
	defer s.finish()

	key, err := parseKey(opts.Key)
	if err != nil {
		return err
	}

	inv := hop.Invocation{
		SessionID: opts.SessionID,
		Keyset:    s.keyset,
		Key:       key,
		Cancel:    opts.Cancel,
	}

	switch opts.Input {
	case "json":
		if err := s.fromResult(&inv, opts.RunOptions, args); err != nil {
			return err
		}
	case "", "flags":
		if err := s.fromFlags(&inv, opts, args); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: input %q", codec.ErrUnknownFormat, opts.Input)
	}

	snap, err := s.engine.Invoke(context.Background(), inv)
	if err != nil {
		return err
	}
	return s.emit(snap)
}

// fromResult fills inv from a Result on stdin. Positional args, when given,
// replace the recorded live selections.
func (s *session) fromResult(inv *hop.Invocation, opts RunOptions, args []string) error {
	res, err := codec.DecodeResult(s.stdin)
	if err != nil {
		return err
	}
	if res.Terminal {
		return fmt.Errorf("step: %w (%s)", domain.ErrTerminal, res.Status)
	}

	if opts.Keyset == "" && res.Keyset != "" {
		k, err := domain.ParseKeyset(res.Keyset)
		if err != nil {
			return err
		}
		inv.Keyset = k
	}
	if inv.SessionID == "" {
		inv.SessionID = res.ID
	}

	inv.Original = res.Original
	inv.Selections = res.Selections
	if len(args) > 0 {
		live, err := codec.ParseSelections(args, s.strict)
		if err != nil {
			return err
		}
		inv.Selections = codec.Reindex(live, res.Original)
	}

	inv.Labels = res.PriorLabels()
	if len(inv.Labels) == 0 {
		inv.Labels = nil
	}
	return nil
}

func (s *session) fromFlags(inv *hop.Invocation, opts StepOptions, args []string) error {
	sels, err := s.readSelections(args)
	if err != nil {
		return err
	}

	if opts.Original != "" {
		original, err := codec.ParseSelections(codec.SplitList(opts.Original), s.strict)
		if err != nil {
			return err
		}
		inv.Original = original
		sels = codec.Reindex(sels, original)
	}
	inv.Selections = sels

	if labels := codec.ParseLabels(opts.Labels); len(labels) > 0 {
		inv.Labels = labels
	}
	return nil
}

// parseKey accepts exactly one printable symbol, or nothing.
// Control characters (an escaped <esc>, NUL) never match a label and are rejected.
func parseKey(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) || unicode.IsControl(r) {
		return 0, fmt.Errorf("%w: %q", ErrBadKey, s)
	}
	return r, nil
}
