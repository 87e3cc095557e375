package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventAllocate EventType = "allocate"
	EventReduce   EventType = "reduce"
	EventNoMatch  EventType = "no_match"
	EventResolve  EventType = "resolve"
	EventCancel   EventType = "cancel"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// AllocateEvent is emitted when fresh labels are assigned.
type AllocateEvent struct {
	EventBase
	Count  int `json:"count"`
	Depth  int `json:"depth"`
	Keyset int `json:"keyset"`
}

// KeyEvent is emitted for every typed key, whatever its outcome.
type KeyEvent struct {
	EventBase
	Key     rune `json:"key"`
	Before  int  `json:"before"`
	After   int  `json:"after"`
	Dropped int  `json:"dropped"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run synchronously; nil hooks are skipped.
type LifecycleHooks struct {
	OnAllocate func(context.Context, *AllocateEvent)
	OnReduce   func(context.Context, *KeyEvent)
	OnNoMatch  func(context.Context, *KeyEvent)
	OnResolve  func(context.Context, *KeyEvent)
	OnCancel   func(context.Context, *EventBase)
}

// Merge returns hooks that call h first, then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnAllocate: chain(h.OnAllocate, other.OnAllocate),
		OnReduce:   chain(h.OnReduce, other.OnReduce),
		OnNoMatch:  chain(h.OnNoMatch, other.OnNoMatch),
		OnResolve:  chain(h.OnResolve, other.OnResolve),
		OnCancel:   chain(h.OnCancel, other.OnCancel),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
