package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hadronized/hop.kak/internal/logging"
	"github.com/hadronized/hop.kak/pkg/domain"
	"github.com/hadronized/hop.kak/pkg/labels"
)

// Engine is the reduction state machine.
// It holds configuration only; every snapshot it touches is passed in and returned.
type Engine struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	now    func() time.Time
	newID  func() string
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator overrides how session correlation ids are minted.
func WithIDGenerator(gen func() string) EngineOption {
	return func(e *Engine) {
		e.newID = gen
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start allocates fresh labels over the full selection set.
func (e *Engine) Start(ctx context.Context, keyset domain.Keyset, selections []domain.Selection) (*domain.Snapshot, error) {
	if keyset.IsZero() {
		return nil, domain.ErrEmptyKeyset
	}
	if len(selections) == 0 {
		return nil, domain.ErrEmptySelections
	}

	ls, err := labels.Allocate(len(selections), keyset)
	if err != nil {
		return nil, fmt.Errorf("allocate %d labels: %w", len(selections), err)
	}

	pairs, err := domain.Pair(selections, ls)
	if err != nil {
		return nil, err
	}

	snap := domain.NewSnapshot(e.newID(), keyset, pairs, cloneSelections(selections))

	depth := labels.Depth(len(selections), keyset)
	e.logger.Debug("labels allocated",
		"session_id", snap.ID,
		"count", len(pairs),
		"depth", depth,
	)
	if e.hooks.OnAllocate != nil {
		e.hooks.OnAllocate(ctx, &domain.AllocateEvent{
			EventBase: e.event(domain.EventAllocate, snap.ID),
			Count:     len(pairs),
			Depth:     depth,
			Keyset:    keyset.Len(),
		})
	}

	return snap, nil
}

// Resume rebuilds an active snapshot from state the caller carried over.
// An empty original means selections are the originals.
func (e *Engine) Resume(ctx context.Context, id string, keyset domain.Keyset, selections []domain.Selection, prior []domain.Label, original []domain.Selection) (*domain.Snapshot, error) {
	if keyset.IsZero() {
		return nil, domain.ErrEmptyKeyset
	}
	if len(selections) == 0 {
		return nil, domain.ErrEmptySelections
	}

	pairs, err := domain.Pair(selections, prior)
	if err != nil {
		return nil, err
	}
	if err := validateLabels(keyset, prior); err != nil {
		return nil, err
	}

	if len(original) == 0 {
		original = selections
	}
	if id == "" {
		id = e.newID()
	}

	e.logger.Debug("session resumed", "session_id", id, "live", len(pairs), "original", len(original))
	return domain.NewSnapshot(id, keyset, pairs, cloneSelections(original)), nil
}

func (e *Engine) event(t domain.EventType, sessionID string) domain.EventBase {
	return domain.EventBase{
		Timestamp: e.now(),
		Type:      t,
		SessionID: sessionID,
	}
}

// validateLabels rejects label sets no allocation could have produced.
func validateLabels(keyset domain.Keyset, ls []domain.Label) error {
	for _, l := range ls {
		if l.IsEmpty() {
			return &domain.InvalidLabelError{Label: "", Reason: "empty label on a live selection"}
		}
		for _, r := range l {
			if !keyset.Contains(r) {
				return &domain.InvalidLabelError{Label: l.String(), Reason: fmt.Sprintf("symbol %q not in keyset", r)}
			}
		}
	}

	// In lexicographic order a label that prefixes another prefixes its successor.
	sorted := make([]string, len(ls))
	for i, l := range ls {
		sorted[i] = l.String()
	}
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if strings.HasPrefix(sorted[i], sorted[i-1]) {
			return &domain.InvalidLabelError{Label: sorted[i-1], Reason: fmt.Sprintf("prefix of %q", sorted[i])}
		}
	}
	return nil
}

func cloneSelections(src []domain.Selection) []domain.Selection {
	out := make([]domain.Selection, len(src))
	copy(out, src)
	return out
}
