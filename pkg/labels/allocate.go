package labels

import (
	"github.com/hadronized/hop.kak/pkg/domain"
)

// Allocate returns n labels for keyset k, in selection order.
//
// Each level of nesting emits the first k.Len()-1 symbols as terminal labels and
// pushes the rest of the candidates one level down under k.Last(). The loop is the
// unrolled form of that recursion, so n has no practical upper bound.
func Allocate(n int, k domain.Keyset) ([]domain.Label, error) {
	if k.IsZero() {
		return nil, domain.ErrEmptyKeyset
	}
	if n <= 0 {
		return []domain.Label{}, nil
	}
	if k.Len() == 1 && n > 1 {
		return nil, domain.ErrKeysetTooSmall
	}

	out := make([]domain.Label, 0, n)
	size := k.Len()
	last := k.Last()

	var prefix []rune
	remaining := n
	for remaining > size {
		for i := 0; i < size-1; i++ {
			out = append(out, withSymbol(prefix, k.At(i)))
		}
		remaining -= size - 1
		prefix = append(prefix, last)
	}

	for i := 0; i < remaining; i++ {
		out = append(out, withSymbol(prefix, k.At(i)))
	}

	return out, nil
}

// Depth returns the length of the longest label Allocate(n, k) yields.
func Depth(n int, k domain.Keyset) int {
	if n <= 0 || k.IsZero() {
		return 0
	}
	size := k.Len()
	if size == 1 {
		return 1
	}

	depth := 1
	for remaining := n; remaining > size; remaining -= size - 1 {
		depth++
	}
	return depth
}

func withSymbol(prefix []rune, r rune) domain.Label {
	l := make(domain.Label, len(prefix)+1)
	copy(l, prefix)
	l[len(prefix)] = r
	return l
}
