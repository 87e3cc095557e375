package domain

// Status defines where a snapshot stands in the reduction state machine.
type Status string

const (
	StatusActive    Status = "active"    // Live pairs remain, at least one label is non-empty
	StatusResolved  Status = "resolved"  // Exactly one selection left, its label fully typed
	StatusCancelled Status = "cancelled" // Hinting undone, original selections restored
)

// SignalCancel is the only signal the engine understands.
const SignalCancel = "cancel"

// Snapshot is the complete state carried between two invocations.
// It is replaced, never mutated, by each transition.
type Snapshot struct {
	// ID correlates log lines across invocations. It is never used to look anything up.
	ID string

	Keyset Keyset
	Status Status

	// Pairs holds the live selections and their remaining labels (Active only).
	Pairs []HintPair

	// Original is the unreduced selection set supplied at session start.
	Original []Selection

	// Result holds the terminal output: the sole survivor when Resolved,
	// the original set when Cancelled.
	Result []Selection
}

// NewSnapshot creates an active snapshot over pairs.
func NewSnapshot(id string, keyset Keyset, pairs []HintPair, original []Selection) *Snapshot {
	return &Snapshot{
		ID:       id,
		Keyset:   keyset,
		Status:   StatusActive,
		Pairs:    pairs,
		Original: original,
	}
}

// Terminal reports whether no further key can be applied.
func (s *Snapshot) Terminal() bool {
	return s.Status == StatusResolved || s.Status == StatusCancelled
}

// Selections returns the live selections in order.
func (s *Snapshot) Selections() []Selection {
	out := make([]Selection, len(s.Pairs))
	for i, p := range s.Pairs {
		out[i] = p.Selection
	}
	return out
}

// Labels returns the live labels in order.
func (s *Snapshot) Labels() []Label {
	out := make([]Label, len(s.Pairs))
	for i, p := range s.Pairs {
		out[i] = p.Label
	}
	return out
}
