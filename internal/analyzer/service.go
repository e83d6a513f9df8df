package analyzer

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/SS-S3/repo-quality-tool/config"
	"github.com/SS-S3/repo-quality-tool/halstead"
	"github.com/SS-S3/repo-quality-tool/internal/history"
	"github.com/SS-S3/repo-quality-tool/internal/metrics"
	"github.com/SS-S3/repo-quality-tool/tokenizer"
	"github.com/SS-S3/repo-quality-tool/tokenizer/builtin"
	"github.com/SS-S3/repo-quality-tool/types"
)

// =============================================================================
// 🔍 分析服务
// =============================================================================

// Report is the outcome of analysing one file.
type Report struct {
	Result   *halstead.Result
	Language string
	// RunID is the history record id, empty when history is disabled or
	// saving failed.
	RunID    string
	Duration time.Duration
}

// Service analyses single files.
type Service struct {
	registry        *tokenizer.Registry
	defaultLanguage string
	computerOpts    []halstead.Option
	metrics         *metrics.Collector
	history         *history.Store
	logger          *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRegistry replaces the built-in tokenizer registry.
func WithRegistry(r *tokenizer.Registry) Option {
	return func(s *Service) {
		s.registry = r
	}
}

// WithMetrics records every analysis on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Service) {
		s.metrics = c
	}
}

// WithHistory persists every successful analysis to store.
func WithHistory(store *history.Store) Option {
	return func(s *Service) {
		s.history = store
	}
}

// NewService creates a Service from the analysis configuration.
func NewService(cfg config.AnalysisConfig, logger *zap.Logger, opts ...Option) (*Service, error) {
	computerOpts, err := cfg.ComputerOptions()
	if err != nil {
		return nil, types.NewError(types.ErrInvalidConfig, "invalid analysis config").WithCause(err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		registry:        builtin.Registry(),
		defaultLanguage: cfg.DefaultLanguage,
		computerOpts:    computerOpts,
		logger:          logger.With(zap.String("component", "analyzer")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AnalyzeFile reads path and computes its metrics. language may be empty,
// in which case it is detected from the file extension.
func (s *Service) AnalyzeFile(ctx context.Context, path, language string) (*Report, error) {
	if path == "" {
		return nil, types.NewMissingArgumentError("file")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	tok, err := s.resolve(path, language)
	if err != nil {
		s.record(languageLabel(language), "error", start)
		return nil, err
	}
	lang := tok.Language()

	src, err := os.ReadFile(path)
	if err != nil {
		s.record(lang, "error", start)
		return nil, types.NewError(types.ErrReadSource, fmt.Sprintf("read %s", path)).WithCause(err)
	}

	s.logger.Debug("analysing file",
		zap.String("file", path),
		zap.String("language", lang),
		zap.Int("bytes", len(src)),
	)

	res, err := halstead.NewComputer(tok, s.computerOpts...).ComputeFile(path, string(src))
	if err != nil {
		s.record(lang, "error", start)
		s.logger.Warn("tokenization failed",
			zap.String("file", path),
			zap.String("language", lang),
			zap.Error(err),
		)
		return nil, err
	}

	report := &Report{
		Result:   res,
		Language: lang,
		Duration: time.Since(start),
	}
	s.record(lang, "ok", start)
	if s.metrics != nil {
		s.metrics.RecordResult(lang, res)
	}

	if s.history != nil {
		rec, err := s.history.Save(ctx, lang, res)
		if err != nil {
			s.logger.Warn("failed to save history", zap.String("file", path), zap.Error(err))
		} else {
			report.RunID = rec.ID
		}
	}

	s.logger.Info("analysis complete",
		zap.String("file", path),
		zap.Int("vocabulary", res.Vocabulary),
		zap.Int("length", res.Length),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}

// History lists stored runs for path, newest first.
func (s *Service) History(ctx context.Context, path string, limit int) ([]history.Record, error) {
	if s.history == nil {
		return nil, types.NewError(types.ErrHistory, "history is not enabled")
	}
	return s.history.List(ctx, path, limit)
}

// resolve picks the tokenizer: explicit language, then file extension,
// then the configured default.
func (s *Service) resolve(path, language string) (tokenizer.Tokenizer, error) {
	if language != "" {
		return s.registry.Lookup(language)
	}

	tok, err := s.registry.ForFile(path)
	if err == nil {
		return tok, nil
	}
	if s.defaultLanguage == "" {
		return nil, err
	}

	s.logger.Debug("unknown extension, using default language",
		zap.String("file", path),
		zap.String("language", s.defaultLanguage),
	)
	return s.registry.Lookup(s.defaultLanguage)
}

func (s *Service) record(language, status string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordAnalysis(language, status, time.Since(start))
}

func languageLabel(language string) string {
	if language == "" {
		return "unknown"
	}
	return language
}
