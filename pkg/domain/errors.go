package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKeyset is returned when a keyset has no symbols.
	ErrEmptyKeyset = errors.New("empty keyset")

	// ErrDuplicateKey is returned when a keyset contains the same symbol twice.
	ErrDuplicateKey = errors.New("duplicate key in keyset")

	// ErrInvalidSymbol is returned when a keyset symbol is whitespace, a control character or not valid UTF-8.
	ErrInvalidSymbol = errors.New("invalid keyset symbol")

	// ErrKeysetTooSmall is returned when a single-symbol keyset must label more than one selection.
	// No prefix-free labeling exists in that case.
	ErrKeysetTooSmall = errors.New("keyset too small to label selections")

	// ErrEmptySelections is returned when there is nothing to hint.
	ErrEmptySelections = errors.New("no selections to hint")

	// ErrLengthMismatch is returned when labels and selections are not paired one to one.
	ErrLengthMismatch = errors.New("labels and selections length mismatch")

	// ErrNoMatch is returned when a typed key is the head of no live label.
	// It is the only error expected during normal interactive use.
	ErrNoMatch = errors.New("no label matches key")

	// ErrInvalidLabel is returned when caller-supplied labels cannot come from the keyset.
	ErrInvalidLabel = errors.New("invalid label")

	// ErrTerminal is returned when a key is fed to a resolved or cancelled snapshot.
	ErrTerminal = errors.New("snapshot is terminal")

	// ErrUnhandledSignal is returned when a signal is received but no handler is defined for it.
	ErrUnhandledSignal = errors.New("unhandled signal")

	// ErrConflictingInput is returned when a key and a cancel signal are given together.
	ErrConflictingInput = errors.New("key and cancel are mutually exclusive")
)

// DuplicateKeyError reports the repeated symbol and both positions it was found at.
type DuplicateKeyError struct {
	Symbol rune
	First  int
	Second int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q in keyset (positions %d and %d)", e.Symbol, e.First, e.Second)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// InvalidSymbolError reports a keyset symbol that cannot be written in a label list.
type InvalidSymbolError struct {
	Symbol   rune
	Position int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q in keyset (position %d)", e.Symbol, e.Position)
}

func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

// LengthMismatchError reports the sizes of two sequences that should have been zipped.
type LengthMismatchError struct {
	Selections int
	Labels     int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%d labels for %d selections", e.Labels, e.Selections)
}

func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// NoMatchError reports the key that matched nothing.
type NoMatchError struct {
	Key rune
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no label starts with %q", e.Key)
}

func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

// InvalidLabelError reports a caller-supplied label that breaks the label invariants.
type InvalidLabelError struct {
	Label  string
	Reason string
}

func (e *InvalidLabelError) Error() string {
	return fmt.Sprintf("label %q: %s", e.Label, e.Reason)
}

func (e *InvalidLabelError) Is(target error) bool {
	return target == ErrInvalidLabel
}
