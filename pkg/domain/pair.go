package domain

// Selection is a caller-owned candidate position.
// Desc is passed through untouched; only Index (the input order) is meaningful here.
type Selection struct {
	Index int    `json:"index"`
	Desc  string `json:"desc"`
}

// NewSelections numbers descriptors in input order.
func NewSelections(descs []string) []Selection {
	out := make([]Selection, len(descs))
	for i, d := range descs {
		out[i] = Selection{Index: i, Desc: d}
	}
	return out
}

// HintPair associates one live selection with its remaining label.
type HintPair struct {
	Selection Selection
	Label     Label
}

// Hint is the render view of a HintPair: head and tail are styled separately by the host.
type Hint struct {
	Selection Selection
	Head      rune
	Tail      Label
}

// Pair zips selections with labels position by position.
func Pair(selections []Selection, labels []Label) ([]HintPair, error) {
	if len(selections) != len(labels) {
		return nil, &LengthMismatchError{Selections: len(selections), Labels: len(labels)}
	}

	pairs := make([]HintPair, len(selections))
	for i := range selections {
		pairs[i] = HintPair{Selection: selections[i], Label: labels[i].Clone()}
	}
	return pairs, nil
}
