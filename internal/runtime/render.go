package runtime

import (
	"context"

	"github.com/hadronized/hop.kak/pkg/domain"
)

// Render returns the hints to draw for snap, and whether snap is terminal.
// Terminal snapshots have no hints; their output is snap.Result.
func (e *Engine) Render(ctx context.Context, snap *domain.Snapshot) ([]domain.Hint, bool) {
	if snap == nil || snap.Terminal() {
		return nil, true
	}

	hints := make([]domain.Hint, 0, len(snap.Pairs))
	for _, p := range snap.Pairs {
		if p.Label.IsEmpty() {
			continue
		}
		hints = append(hints, domain.Hint{
			Selection: p.Selection,
			Head:      p.Label.Head(),
			Tail:      p.Label.Tail().Clone(),
		})
	}
	return hints, false
}
