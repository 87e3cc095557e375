package hop_test

import (
	"context"
	"testing"

	hop "github.com/hadronized/hop.kak"
	"github.com/hadronized/hop.kak/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveSelections() []domain.Selection {
	return domain.NewSelections([]string{"sel1", "sel2", "sel3", "sel4", "sel5"})
}

func abcd(t *testing.T) domain.Keyset {
	t.Helper()
	k, err := domain.ParseKeyset("abcd")
	require.NoError(t, err)
	return k
}

// next builds the invocation a caller would send after receiving snap.
func next(snap *domain.Snapshot, key rune, cancel bool) hop.Invocation {
	return hop.Invocation{
		SessionID:  snap.ID,
		Keyset:     snap.Keyset,
		Selections: snap.Selections(),
		Labels:     snap.Labels(),
		Original:   snap.Original,
		Key:        key,
		Cancel:     cancel,
	}
}

func TestInvoke_FullSession(t *testing.T) {
	ctx := context.Background()
	eng := hop.New(hop.WithIDGenerator(func() string { return "fixed" }))

	first, err := eng.Invoke(ctx, hop.Invocation{Keyset: abcd(t), Selections: fiveSelections()})
	require.NoError(t, err)
	assert.Equal(t, "fixed", first.ID)
	assert.Equal(t, domain.StatusActive, first.Status)
	require.Len(t, first.Pairs, 5)

	second, err := eng.Invoke(ctx, next(first, 'd', false))
	require.NoError(t, err)
	require.Len(t, second.Pairs, 2)
	assert.Equal(t, "sel4", second.Pairs[0].Selection.Desc)
	assert.Equal(t, "a", second.Pairs[0].Label.String())
	assert.Equal(t, "sel5", second.Pairs[1].Selection.Desc)
	assert.Equal(t, "b", second.Pairs[1].Label.String())

	third, err := eng.Invoke(ctx, next(second, 'a', false))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, third.Status)
	require.Len(t, third.Result, 1)
	assert.Equal(t, "sel4", third.Result[0].Desc)
}

func TestInvoke_ReEmit(t *testing.T) {
	ctx := context.Background()
	eng := hop.New()

	first, err := eng.Invoke(ctx, hop.Invocation{Keyset: abcd(t), Selections: fiveSelections()})
	require.NoError(t, err)

	again, err := eng.Invoke(ctx, next(first, 0, false))
	require.NoError(t, err)
	assert.Equal(t, first.Labels(), again.Labels())
	assert.Equal(t, first.ID, again.ID)
}

func TestInvoke_NoMatchIsIdempotent(t *testing.T) {
	ctx := context.Background()
	eng := hop.New()

	first, err := eng.Invoke(ctx, hop.Invocation{Keyset: abcd(t), Selections: fiveSelections()})
	require.NoError(t, err)
	inv := next(first, 'x', false)

	for i := 0; i < 3; i++ {
		got, err := eng.Invoke(ctx, inv)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrNoMatch)
	}
	assert.Len(t, inv.Labels, 5)
	assert.Equal(t, "da", inv.Labels[3].String())
}

func TestInvoke_Cancel(t *testing.T) {
	ctx := context.Background()
	eng := hop.New()

	first, err := eng.Invoke(ctx, hop.Invocation{Keyset: abcd(t), Selections: fiveSelections()})
	require.NoError(t, err)
	reduced, err := eng.Invoke(ctx, next(first, 'd', false))
	require.NoError(t, err)

	cancelled, err := eng.Invoke(ctx, next(reduced, 0, true))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.Equal(t, fiveSelections(), cancelled.Result)
}

func TestInvoke_CancelBeforeLabels(t *testing.T) {
	ctx := context.Background()
	eng := hop.New()

	// Even a keyset too small to label these selections can cancel.
	k, err := domain.ParseKeyset("a")
	require.NoError(t, err)

	got, err := eng.Invoke(ctx, hop.Invocation{Keyset: k, Selections: fiveSelections(), Cancel: true})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	assert.Equal(t, fiveSelections(), got.Result)
}

func TestInvoke_CancelIgnoresCarriedLabels(t *testing.T) {
	ctx := context.Background()
	eng := hop.New()
	k := abcd(t)

	tests := []struct {
		name   string
		labels []domain.Label
	}{
		{name: "Outside Keyset", labels: []domain.Label{domain.Label("a"), domain.Label("zz")}},
		{name: "Prefix Of Another", labels: []domain.Label{domain.Label("d"), domain.Label("da")}},
		{name: "Empty Label", labels: []domain.Label{domain.Label("a"), domain.Label("")}},
		{name: "Length Mismatch", labels: []domain.Label{domain.Label("a")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eng.Invoke(ctx, hop.Invocation{
				Keyset:     k,
				Selections: fiveSelections()[3:],
				Labels:     tt.labels,
				Original:   fiveSelections(),
				Cancel:     true,
			})
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, got.Status)
			assert.Equal(t, fiveSelections(), got.Result)
		})
	}

	t.Run("Nothing To Restore", func(t *testing.T) {
		_, err := eng.Invoke(ctx, hop.Invocation{Keyset: k, Cancel: true})
		assert.ErrorIs(t, err, domain.ErrEmptySelections)
	})
}

func TestInvoke_Errors(t *testing.T) {
	ctx := context.Background()
	eng := hop.New()
	k := abcd(t)

	tests := []struct {
		name    string
		inv     hop.Invocation
		wantErr error
	}{
		{
			name:    "Empty Selections",
			inv:     hop.Invocation{Keyset: k},
			wantErr: domain.ErrEmptySelections,
		},
		{
			name:    "Missing Keyset",
			inv:     hop.Invocation{Selections: fiveSelections()},
			wantErr: domain.ErrEmptyKeyset,
		},
		{
			name:    "Key And Cancel",
			inv:     hop.Invocation{Keyset: k, Selections: fiveSelections(), Key: 'a', Cancel: true},
			wantErr: domain.ErrConflictingInput,
		},
		{
			name: "Length Mismatch",
			inv: hop.Invocation{
				Keyset:     k,
				Selections: fiveSelections(),
				Labels:     []domain.Label{domain.Label("a")},
			},
			wantErr: domain.ErrLengthMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Invoke(ctx, tt.inv)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWithLifecycleHooks_Merges(t *testing.T) {
	ctx := context.Background()
	var seen []string

	eng := hop.New(
		hop.WithLifecycleHooks(domain.LifecycleHooks{
			OnAllocate: func(context.Context, *domain.AllocateEvent) { seen = append(seen, "first") },
		}),
		hop.WithLifecycleHooks(domain.LifecycleHooks{
			OnAllocate: func(context.Context, *domain.AllocateEvent) { seen = append(seen, "second") },
		}),
	)

	_, err := eng.Invoke(ctx, hop.Invocation{Keyset: abcd(t), Selections: fiveSelections()})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, seen)
}
