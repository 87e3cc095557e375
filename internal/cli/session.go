package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	hop "github.com/hadronized/hop.kak"
	"github.com/hadronized/hop.kak/internal/config"
	"github.com/hadronized/hop.kak/pkg/codec"
	"github.com/hadronized/hop.kak/pkg/domain"
	"github.com/hadronized/hop.kak/pkg/observability"
)

// session holds everything a single command invocation needs.
type session struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	engine  *hop.Engine

	keyset  domain.Keyset
	format  codec.Format
	encoder codec.Encoder
	strict  bool

	stdin  io.Reader
	stdout io.Writer
}

// newSession resolves config, flags and environment into a ready engine.
// Flags win over HOP_* variables, which win over the config file.
func newSession(opts RunOptions) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.Keyset != "" {
		cfg.Keyset = opts.Keyset
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.Strict != nil {
		cfg.Strict = *opts.Strict
	}
	if opts.MetricsTextfile != "" {
		cfg.MetricsTextfile = opts.MetricsTextfile
	}

	keyset, err := domain.ParseKeyset(cfg.Keyset)
	if err != nil {
		return nil, fmt.Errorf("keyset: %w", err)
	}

	format := codec.Format(cfg.Format)
	enc, err := codec.NewEncoder(format)
	if err != nil {
		return nil, err
	}

	logger, err := createLogger(opts.Debug, cfg.LogLevel, opts.Stderr)
	if err != nil {
		return nil, err
	}

	metrics := observability.NewMetrics()

	s := &session{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		engine:  createEngine(opts, logger, metrics),
		keyset:  keyset,
		format:  format,
		encoder: enc,
		strict:  cfg.Strict,
		stdin:   opts.Stdin,
		stdout:  opts.Stdout,
	}
	if s.stdin == nil {
		s.stdin = os.Stdin
	}
	if s.stdout == nil {
		s.stdout = os.Stdout
	}

	logger.Debug("Session Configured", "keyset", keyset.String(), "format", cfg.Format, "strict", cfg.Strict)
	return s, nil
}

// readSelections takes descriptors from args, or from stdin when args are empty.
func (s *session) readSelections(args []string) ([]domain.Selection, error) {
	if len(args) > 0 {
		return codec.ParseSelections(args, s.strict)
	}

	if s.format == codec.FormatPairs {
		return codec.ReadPairs(s.stdin)
	}

	lines, err := codec.ReadLines(s.stdin)
	if err != nil {
		return nil, err
	}
	var descs []string
	for _, l := range lines {
		descs = append(descs, codec.SplitList(l)...)
	}
	return codec.ParseSelections(descs, s.strict)
}

// emit renders snap and writes it in the configured format.
func (s *session) emit(snap *domain.Snapshot) error {
	hints, terminal := s.engine.Render(context.Background(), snap)
	s.logger.Debug("Emit", "session_id", snap.ID, "status", snap.Status, "live", len(hints), "terminal", terminal)
	return s.encoder.Encode(s.stdout, snap, hints)
}

// finish flushes metrics. A failed flush never fails the call.
func (s *session) finish() {
	if s.cfg.MetricsTextfile == "" {
		return
	}
	if err := s.metrics.WriteTextfile(s.cfg.MetricsTextfile); err != nil {
		s.logger.Warn("Failed to write metrics", "path", s.cfg.MetricsTextfile, "error", err)
	}
}
