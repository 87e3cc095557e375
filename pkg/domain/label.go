package domain

// Label is the sequence of symbols a user types to select one candidate.
type Label []rune

// Head returns the first symbol. It panics on an empty label.
func (l Label) Head() rune {
	return l[0]
}

// Tail returns every symbol after the head.
func (l Label) Tail() Label {
	if len(l) == 0 {
		return nil
	}
	return l[1:]
}

// IsEmpty reports whether the label has been fully consumed.
func (l Label) IsEmpty() bool {
	return len(l) == 0
}

// HasPrefix reports whether p is a prefix of l.
func (l Label) HasPrefix(p Label) bool {
	if len(p) > len(l) {
		return false
	}
	for i := range p {
		if l[i] != p[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that does not share memory with l.
func (l Label) Clone() Label {
	if l == nil {
		return nil
	}
	out := make(Label, len(l))
	copy(out, l)
	return out
}

func (l Label) String() string {
	return string(l)
}
