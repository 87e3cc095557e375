package runtime

import (
	"context"
	"fmt"

	"github.com/hadronized/hop.kak/pkg/domain"
)

// Navigate feeds one typed key to an active snapshot.
//
// Pairs whose label starts with key survive with that symbol stripped; the rest are
// dropped. On no match the input snapshot stays authoritative and a NoMatchError is
// returned. A single survivor with an exhausted label resolves the session.
func (e *Engine) Navigate(ctx context.Context, current *domain.Snapshot, key rune) (*domain.Snapshot, error) {
	if current == nil {
		return nil, fmt.Errorf("navigate: nil snapshot")
	}
	if current.Terminal() {
		return nil, fmt.Errorf("navigate %q: %w (%s)", key, domain.ErrTerminal, current.Status)
	}

	matched := make([]domain.HintPair, 0, len(current.Pairs))
	for _, p := range current.Pairs {
		if !p.Label.IsEmpty() && p.Label.Head() == key {
			matched = append(matched, domain.HintPair{
				Selection: p.Selection,
				Label:     p.Label.Tail().Clone(),
			})
		}
	}

	ev := &domain.KeyEvent{
		Key:     key,
		Before:  len(current.Pairs),
		After:   len(matched),
		Dropped: len(current.Pairs) - len(matched),
	}

	if len(matched) == 0 {
		ev.EventBase = e.event(domain.EventNoMatch, current.ID)
		e.logger.Debug("key matched nothing", "session_id", current.ID, "key", string(key), "live", len(current.Pairs))
		if e.hooks.OnNoMatch != nil {
			e.hooks.OnNoMatch(ctx, ev)
		}
		return nil, &domain.NoMatchError{Key: key}
	}

	if len(matched) == 1 && matched[0].Label.IsEmpty() {
		next := e.cloneSnapshot(current)
		next.Status = domain.StatusResolved
		next.Pairs = nil
		next.Result = []domain.Selection{matched[0].Selection}

		ev.EventBase = e.event(domain.EventResolve, current.ID)
		e.logger.Debug("selection resolved", "session_id", current.ID, "key", string(key), "selection", matched[0].Selection.Index)
		if e.hooks.OnResolve != nil {
			e.hooks.OnResolve(ctx, ev)
		}
		return next, nil
	}

	next := e.cloneSnapshot(current)
	next.Pairs = matched

	ev.EventBase = e.event(domain.EventReduce, current.ID)
	e.logger.Debug("selections reduced", "session_id", current.ID, "key", string(key), "live", len(matched), "dropped", ev.Dropped)
	if e.hooks.OnReduce != nil {
		e.hooks.OnReduce(ctx, ev)
	}
	return next, nil
}

// Signal applies a named signal. Cancel restores the original selections
// from any state, not the last reduced subset.
func (e *Engine) Signal(ctx context.Context, current *domain.Snapshot, signal string) (*domain.Snapshot, error) {
	if current == nil {
		return nil, fmt.Errorf("signal: nil snapshot")
	}
	if signal != domain.SignalCancel {
		return nil, fmt.Errorf("signal %q: %w", signal, domain.ErrUnhandledSignal)
	}

	next := e.cloneSnapshot(current)
	next.Status = domain.StatusCancelled
	next.Pairs = nil
	next.Result = cloneSelections(current.Original)

	e.logger.Debug("hinting cancelled", "session_id", current.ID, "restored", len(next.Result))
	if e.hooks.OnCancel != nil {
		base := e.event(domain.EventCancel, current.ID)
		e.hooks.OnCancel(ctx, &base)
	}
	return next, nil
}

// cloneSnapshot copies src so the returned snapshot shares no slices with it.
func (e *Engine) cloneSnapshot(src *domain.Snapshot) *domain.Snapshot {
	next := *src
	next.Pairs = make([]domain.HintPair, len(src.Pairs))
	for i, p := range src.Pairs {
		next.Pairs[i] = domain.HintPair{Selection: p.Selection, Label: p.Label.Clone()}
	}
	next.Original = cloneSelections(src.Original)
	if src.Result != nil {
		next.Result = cloneSelections(src.Result)
	}
	return &next
}
