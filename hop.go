package hop

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hadronized/hop.kak/internal/logging"
	"github.com/hadronized/hop.kak/internal/runtime"
	"github.com/hadronized/hop.kak/pkg/domain"
)

// Version is the release of the hop binary and library.
const Version = "0.4.0"

// Engine is the high-level entry point for the hop library.
// It wraps the internal runtime and exposes the single-invocation contract.
type Engine struct {
	runtime *runtime.Engine
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	idGen   func() string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithIDGenerator overrides how session correlation ids are minted.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) {
		e.idGen = gen
	}
}

// New initializes a new hop Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	}
	if eng.idGen != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithIDGenerator(eng.idGen))
	}
	eng.runtime = runtime.NewEngine(runtimeOpts...)

	return eng
}

// Invocation is everything one call needs. Nothing else is remembered between calls.
type Invocation struct {
	// SessionID is echoed back for log correlation. Empty on the first call.
	SessionID string

	Keyset     domain.Keyset
	Selections []domain.Selection

	// Labels are the labels emitted by the previous call, one per selection.
	// Nil requests a fresh allocation.
	Labels []domain.Label

	// Original is the selection set of the first call. Empty means Selections.
	Original []domain.Selection

	// Key is the typed symbol; 0 means no key was typed.
	Key rune

	// Cancel undoes hinting and restores Original.
	Cancel bool
}

// Invoke runs one allocation or reduction pass.
// With neither Key nor Cancel set it re-emits the current pairing.
// On error the caller's previous snapshot remains authoritative.
func (e *Engine) Invoke(ctx context.Context, inv Invocation) (*domain.Snapshot, error) {
	if inv.Key != 0 && inv.Cancel {
		return nil, domain.ErrConflictingInput
	}

	snap, err := e.load(ctx, inv)
	if err != nil {
		return nil, err
	}

	switch {
	case inv.Cancel:
		return e.runtime.Signal(ctx, snap, domain.SignalCancel)
	case inv.Key != 0:
		return e.runtime.Navigate(ctx, snap, inv.Key)
	default:
		return snap, nil
	}
}

func (e *Engine) load(ctx context.Context, inv Invocation) (*domain.Snapshot, error) {
	if inv.Keyset.IsZero() {
		return nil, domain.ErrEmptyKeyset
	}

	// Cancelling only needs the originals, so carried labels are not checked.
	if inv.Cancel {
		original := inv.Original
		if len(original) == 0 {
			original = inv.Selections
		}
		if len(original) == 0 {
			return nil, domain.ErrEmptySelections
		}
		return domain.NewSnapshot(inv.SessionID, inv.Keyset, nil, original), nil
	}

	if len(inv.Selections) == 0 {
		return nil, domain.ErrEmptySelections
	}

	if inv.Labels == nil {
		snap, err := e.runtime.Start(ctx, inv.Keyset, inv.Selections)
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		if inv.SessionID != "" {
			snap.ID = inv.SessionID
		}
		return snap, nil
	}

	snap, err := e.runtime.Resume(ctx, inv.SessionID, inv.Keyset, inv.Selections, inv.Labels, inv.Original)
	if err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}
	return snap, nil
}

// Start allocates labels over selections.
func (e *Engine) Start(ctx context.Context, keyset domain.Keyset, selections []domain.Selection) (*domain.Snapshot, error) {
	return e.runtime.Start(ctx, keyset, selections)
}

// Render returns the hints for snap and whether snap is terminal.
func (e *Engine) Render(ctx context.Context, snap *domain.Snapshot) ([]domain.Hint, bool) {
	return e.runtime.Render(ctx, snap)
}

// Navigate applies one typed key.
func (e *Engine) Navigate(ctx context.Context, snap *domain.Snapshot, key rune) (*domain.Snapshot, error) {
	return e.runtime.Navigate(ctx, snap, key)
}

// Signal applies a named signal (only "cancel" is understood).
func (e *Engine) Signal(ctx context.Context, snap *domain.Snapshot, signal string) (*domain.Snapshot, error) {
	return e.runtime.Signal(ctx, snap, signal)
}
