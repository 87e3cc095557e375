package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/hadronized/hop.kak/internal/logging"
	"github.com/hadronized/hop.kak/pkg/codec"
	"github.com/hadronized/hop.kak/pkg/domain"
)

// Exit statuses understood by the editor glue.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitNoMatch  = 2
	ExitProtocol = 3
	ExitBadInput = 4
)

// ErrBadKey is returned when --key is not a single symbol.
var ErrBadKey = errors.New("key must be a single symbol")

// ExitCode maps an error returned by a command to the process exit status.
// On ExitNoMatch the caller should keep its previous snapshot and retry.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrNoMatch):
		return ExitNoMatch
	case errors.Is(err, domain.ErrEmptySelections):
		return ExitBadInput
	case errors.Is(err, domain.ErrLengthMismatch),
		errors.Is(err, domain.ErrEmptyKeyset),
		errors.Is(err, domain.ErrDuplicateKey),
		errors.Is(err, domain.ErrInvalidSymbol),
		errors.Is(err, domain.ErrKeysetTooSmall),
		errors.Is(err, domain.ErrInvalidLabel),
		errors.Is(err, domain.ErrConflictingInput),
		errors.Is(err, domain.ErrTerminal),
		errors.Is(err, domain.ErrUnhandledSignal),
		errors.Is(err, codec.ErrBadDescriptor),
		errors.Is(err, codec.ErrUnknownFormat),
		errors.Is(err, ErrBadKey):
		return ExitProtocol
	}
	return ExitFailure
}

// createLogger configures the application logger.
// It always writes to Stderr (or w) so Stdout stays parseable.
func createLogger(debug bool, level string, w io.Writer) (*slog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(w, lvl), nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAllocate: func(ctx context.Context, e *domain.AllocateEvent) {
			logger.Debug("Allocate", "session_id", e.SessionID, "count", e.Count, "depth", e.Depth)
		},
		OnReduce: func(ctx context.Context, e *domain.KeyEvent) {
			logger.Debug("Reduce", "session_id", e.SessionID, "key", string(e.Key), "before", e.Before, "after", e.After)
		},
		OnNoMatch: func(ctx context.Context, e *domain.KeyEvent) {
			logger.Debug("No Match", "session_id", e.SessionID, "key", string(e.Key), "live", e.Before)
		},
		OnResolve: func(ctx context.Context, e *domain.KeyEvent) {
			logger.Debug("Resolve", "session_id", e.SessionID, "key", string(e.Key))
		},
		OnCancel: func(ctx context.Context, e *domain.EventBase) {
			logger.Debug("Cancel", "session_id", e.SessionID)
		},
	}
}
