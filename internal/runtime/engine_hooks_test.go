package runtime_test

import (
	"context"
	"testing"
	"time"

	"github.com/hadronized/hop.kak/internal/runtime"
	"github.com/hadronized/hop.kak/internal/testutils"
	"github.com/hadronized/hop.kak/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_LifecycleHooks(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	var (
		allocs   []*domain.AllocateEvent
		reduces  []*domain.KeyEvent
		misses   []*domain.KeyEvent
		resolves []*domain.KeyEvent
		cancels  []*domain.EventBase
	)
	hooks := domain.LifecycleHooks{
		OnAllocate: func(_ context.Context, e *domain.AllocateEvent) { allocs = append(allocs, e) },
		OnReduce:   func(_ context.Context, e *domain.KeyEvent) { reduces = append(reduces, e) },
		OnNoMatch:  func(_ context.Context, e *domain.KeyEvent) { misses = append(misses, e) },
		OnResolve:  func(_ context.Context, e *domain.KeyEvent) { resolves = append(resolves, e) },
		OnCancel:   func(_ context.Context, e *domain.EventBase) { cancels = append(cancels, e) },
	}

	e := newEngine(
		runtime.WithLifecycleHooks(hooks),
		runtime.WithClock(func() time.Time { return fixed }),
	)

	start, err := e.Start(ctx, testutils.Keyset(t, "abcd"), testutils.Selections(9))
	require.NoError(t, err)
	require.Len(t, allocs, 1)
	assert.Equal(t, 9, allocs[0].Count)
	assert.Equal(t, 3, allocs[0].Depth)
	assert.Equal(t, 4, allocs[0].Keyset)
	assert.Equal(t, fixed, allocs[0].Timestamp)
	assert.Equal(t, "sess-1", allocs[0].SessionID)

	_, err = e.Navigate(ctx, start, 'q')
	require.Error(t, err)
	require.Len(t, misses, 1)
	assert.Equal(t, domain.EventNoMatch, misses[0].Type)
	assert.Equal(t, 9, misses[0].Before)
	assert.Equal(t, 0, misses[0].After)

	snap, err := e.Navigate(ctx, start, 'd')
	require.NoError(t, err)
	require.Len(t, reduces, 1)
	assert.Equal(t, 6, reduces[0].After)
	assert.Equal(t, 3, reduces[0].Dropped)

	snap, err = e.Navigate(ctx, snap, 'b')
	require.NoError(t, err)
	require.Len(t, resolves, 1)
	assert.Equal(t, domain.StatusResolved, snap.Status)
	assert.Equal(t, "sel5", snap.Result[0].Desc)

	_, err = e.Signal(ctx, snap, domain.SignalCancel)
	require.NoError(t, err)
	require.Len(t, cancels, 1)
	assert.Equal(t, domain.EventCancel, cancels[0].Type)
}
