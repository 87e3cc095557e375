package domain

import (
	"unicode"
	"unicode/utf8"
)

// Keyset is the ordered alphabet labels are built from.
// The zero value is not usable; build one with NewKeyset or ParseKeyset.
type Keyset struct {
	symbols []rune
}

// NewKeyset validates symbols and returns a Keyset holding a private copy of them.
// Symbols must be visible: labels travel as whitespace-separated text.
func NewKeyset(symbols []rune) (Keyset, error) {
	if len(symbols) == 0 {
		return Keyset{}, ErrEmptyKeyset
	}

	seen := make(map[rune]int, len(symbols))
	for i, s := range symbols {
		if !validSymbol(s) {
			return Keyset{}, &InvalidSymbolError{Symbol: s, Position: i}
		}
		if first, ok := seen[s]; ok {
			return Keyset{}, &DuplicateKeyError{Symbol: s, First: first, Second: i}
		}
		seen[s] = i
	}

	owned := make([]rune, len(symbols))
	copy(owned, symbols)
	return Keyset{symbols: owned}, nil
}

func validSymbol(r rune) bool {
	return r != utf8.RuneError && unicode.IsGraphic(r) && !unicode.IsSpace(r)
}

// ParseKeyset builds a Keyset with one symbol per rune of s.
func ParseKeyset(s string) (Keyset, error) {
	return NewKeyset([]rune(s))
}

// Len returns the number of symbols.
func (k Keyset) Len() int {
	return len(k.symbols)
}

// At returns the symbol of rank i.
func (k Keyset) At(i int) rune {
	return k.symbols[i]
}

// Last returns the lowest priority symbol, the one nested labels grow under.
func (k Keyset) Last() rune {
	return k.symbols[len(k.symbols)-1]
}

// Rank returns the index of r, or -1 if r is not in the keyset.
func (k Keyset) Rank(r rune) int {
	for i, s := range k.symbols {
		if s == r {
			return i
		}
	}
	return -1
}

// Contains reports whether r belongs to the keyset.
func (k Keyset) Contains(r rune) bool {
	return k.Rank(r) >= 0
}

// Symbols returns a copy of the symbols in rank order.
func (k Keyset) Symbols() []rune {
	out := make([]rune, len(k.symbols))
	copy(out, k.symbols)
	return out
}

func (k Keyset) String() string {
	return string(k.symbols)
}

// IsZero reports whether k was never initialized.
func (k Keyset) IsZero() bool {
	return len(k.symbols) == 0
}
