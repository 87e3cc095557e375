/*
Package hop labels candidate positions in a text buffer and narrows them down as the
user types, until a single position is left.

The engine is stateless. Each call receives the whole session (keyset, live
selections, their current labels, the original selections) and returns the next one,
so the editor owns the loop and nothing survives between two calls.

# Concept

The first call allocates the shortest prefix-free labels it can from an ordered keyset,
favoring the first symbols. Every following call feeds one typed key: selections whose
label does not start with it are dropped, the others lose that symbol. When one
selection is left with nothing to type, the session is resolved. Cancelling restores
the original selections.

# Usage

	eng := hop.New()
	keys, _ := domain.ParseKeyset("abcd")
	sels := domain.NewSelections([]string{"1.1,1.4", "3.2,3.9", "7.1,7.1", "9.5,9.8", "12.1,12.3"})

	snap, err := eng.Invoke(ctx, hop.Invocation{Keyset: keys, Selections: sels})
	if err != nil {
		log.Fatal(err)
	}

	// The user types "d": hand back what the last call returned.
	snap, err = eng.Invoke(ctx, hop.Invocation{
		SessionID:  snap.ID,
		Keyset:     keys,
		Selections: snap.Selections(),
		Labels:     snap.Labels(),
		Original:   snap.Original,
		Key:        'd',
	})
	if errors.Is(err, domain.ErrNoMatch) {
		// keep the previous snapshot and wait for another key
	}
*/
package hop
