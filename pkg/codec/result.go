package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hadronized/hop.kak/pkg/domain"
)

// HintView is one live hint as the editor sees it.
type HintView struct {
	Index     int    `json:"index"`
	Selection string `json:"selection"`
	Head      string `json:"head"`
	Tail      string `json:"tail"`
}

// Result is the JSON document emitted after every call.
// Feeding it back (plus a key or cancel) is enough to run the next call.
type Result struct {
	ID       string        `json:"id"`
	Status   domain.Status `json:"status"`
	Terminal bool          `json:"terminal"`
	Keyset   string        `json:"keyset"`

	// Hints lists live pairs, head and tail split for styling.
	Hints []HintView `json:"hints,omitempty"`

	// Selections are the live selections while active, the output once terminal.
	Selections []domain.Selection `json:"selections"`

	// Labels are the live labels, aligned with Selections. Empty once terminal.
	Labels []string `json:"labels,omitempty"`

	Original []domain.Selection `json:"original"`
}

// NewResult flattens a snapshot and its rendered hints.
func NewResult(snap *domain.Snapshot, hints []domain.Hint) *Result {
	res := &Result{
		ID:       snap.ID,
		Status:   snap.Status,
		Terminal: snap.Terminal(),
		Keyset:   snap.Keyset.String(),
		Original: snap.Original,
	}

	if res.Terminal {
		res.Selections = snap.Result
		return res
	}

	res.Selections = snap.Selections()
	for _, l := range snap.Labels() {
		res.Labels = append(res.Labels, l.String())
	}
	for _, h := range hints {
		res.Hints = append(res.Hints, HintView{
			Index:     h.Selection.Index,
			Selection: h.Selection.Desc,
			Head:      string(h.Head),
			Tail:      h.Tail.String(),
		})
	}
	return res
}

// DecodeResult reads a Result previously written by the json encoder.
func DecodeResult(r io.Reader) (*Result, error) {
	var res Result
	dec := json.NewDecoder(r)
	if err := dec.Decode(&res); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return &res, nil
}

// PriorLabels returns the labels as engine values.
func (r *Result) PriorLabels() []domain.Label {
	out := make([]domain.Label, len(r.Labels))
	for i, l := range r.Labels {
		out[i] = domain.Label(l)
	}
	return out
}
