package testutils

import (
	"fmt"
	"testing"

	"github.com/hadronized/hop.kak/pkg/domain"
	"github.com/stretchr/testify/require"
)

// Keyset parses s or fails the test immediately.
func Keyset(t testing.TB, s string) domain.Keyset {
	t.Helper()

	k, err := domain.ParseKeyset(s)
	require.NoError(t, err, "Failed to parse keyset %q", s)
	return k
}

// Selections returns n opaque selections named sel1..selN.
func Selections(n int) []domain.Selection {
	descs := make([]string, n)
	for i := range descs {
		descs[i] = fmt.Sprintf("sel%d", i+1)
	}
	return domain.NewSelections(descs)
}

// Points returns n point descriptors on consecutive lines: 1.1,1.1 2.1,2.1 ...
func Points(n int) []string {
	descs := make([]string, n)
	for i := range descs {
		descs[i] = fmt.Sprintf("%d.1,%d.1", i+1, i+1)
	}
	return descs
}

// LabelStrings renders labels for readable assertions.
func LabelStrings(ls []domain.Label) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.String()
	}
	return out
}

// Descs returns the descriptor of every selection.
func Descs(ss []domain.Selection) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Desc
	}
	return out
}
