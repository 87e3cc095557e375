package codec

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hadronized/hop.kak/pkg/domain"
)

// Format names an output encoding.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatPairs Format = "pairs"
)

// ErrUnknownFormat is returned by NewEncoder for unsupported formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Encoder writes one call's outcome.
type Encoder interface {
	Encode(w io.Writer, snap *domain.Snapshot, hints []domain.Hint) error
}

// NewEncoder returns the encoder for f.
func NewEncoder(f Format) (Encoder, error) {
	switch f {
	case FormatText, "":
		return TextEncoder{}, nil
	case FormatJSON:
		return JSONEncoder{}, nil
	case FormatPairs:
		return PairsEncoder{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// TextEncoder writes tab-separated lines.
type TextEncoder struct{}

func (TextEncoder) Encode(w io.Writer, snap *domain.Snapshot, hints []domain.Hint) error {
	bw := bufio.NewWriter(w)

	if snap.Terminal() {
		fmt.Fprintln(bw, snap.Status)
		for _, s := range snap.Result {
			fmt.Fprintln(bw, s.Desc)
		}
		return bw.Flush()
	}

	for _, h := range hints {
		fmt.Fprintf(bw, "%s\t%c\t%s\n", h.Selection.Desc, h.Head, h.Tail)
	}
	return bw.Flush()
}

// JSONEncoder writes a single Result document per call.
type JSONEncoder struct {
	Indent bool
}

func (e JSONEncoder) Encode(w io.Writer, snap *domain.Snapshot, hints []domain.Hint) error {
	enc := json.NewEncoder(w)
	if e.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(NewResult(snap, hints))
}

// PairsEncoder writes "line column label" lines, keyed on each selection's cursor.
// Terminal snapshots print "line column" for every output selection.
type PairsEncoder struct{}

func (PairsEncoder) Encode(w io.Writer, snap *domain.Snapshot, hints []domain.Hint) error {
	bw := bufio.NewWriter(w)

	if snap.Terminal() {
		for _, s := range snap.Result {
			r, err := ParseRange(s.Desc)
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, "%d %d\n", r.Cursor.Line, r.Cursor.Column)
		}
		return bw.Flush()
	}

	for _, h := range hints {
		r, err := ParseRange(h.Selection.Desc)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%d %d %c%s\n", r.Cursor.Line, r.Cursor.Column, h.Head, h.Tail)
	}
	return bw.Flush()
}
