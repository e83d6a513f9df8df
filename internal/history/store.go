package history

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SS-S3/repo-quality-tool/halstead"
	"github.com/SS-S3/repo-quality-tool/internal/database"
	"github.com/SS-S3/repo-quality-tool/types"
)

// saveRetries bounds retries when another process holds the database lock.
const saveRetries = 3

// Record is one persisted analysis run. Undefined metric values are stored
// as NULL.
type Record struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id"`
	File              string    `gorm:"size:1024;not null;index:idx_halstead_runs_file" json:"file"`
	Language          string    `gorm:"size:32" json:"language"`
	Vocabulary        int       `json:"vocabulary"`
	Length            int       `json:"length"`
	Volume            *float64  `json:"volume"`
	Difficulty        *float64  `json:"difficulty"`
	Effort            *float64  `json:"effort"`
	DistinctOperators int       `json:"distinct_operators"`
	DistinctOperands  int       `json:"distinct_operands"`
	TotalOperators    int       `json:"total_operators"`
	TotalOperands     int       `json:"total_operands"`
	CreatedAt         time.Time `gorm:"index" json:"created_at"`
}

// TableName implements gorm's tabler.
func (Record) TableName() string { return "halstead_runs" }

// Result rebuilds the metric result stored in r.
func (r Record) Result() *halstead.Result {
	return &halstead.Result{
		Vocabulary: r.Vocabulary,
		Length:     r.Length,
		Volume:     halstead.ValueOf(r.Volume),
		Difficulty: halstead.ValueOf(r.Difficulty),
		Effort:     halstead.ValueOf(r.Effort),
		File:       r.File,
		Counts: halstead.Counts{
			DistinctOperators: r.DistinctOperators,
			DistinctOperands:  r.DistinctOperands,
			TotalOperators:    r.TotalOperators,
			TotalOperands:     r.TotalOperands,
		},
	}
}

// Store persists analysis runs.
type Store struct {
	pool   *database.PoolManager
	logger *zap.Logger
	now    func() time.Time
}

// Open opens the SQLite database at path and migrates the schema.
func Open(ctx context.Context, path string, timeout time.Duration, logger *zap.Logger) (*Store, error) {
	cfg := database.DefaultPoolConfig()
	if timeout > 0 {
		cfg.PingTimeout = timeout
	}
	pool, err := database.OpenSQLite(ctx, path, cfg, logger)
	if err != nil {
		return nil, types.NewError(types.ErrHistory, "open history database").WithCause(err)
	}
	s, err := NewStore(ctx, pool, logger)
	if err != nil {
		_ = pool.Close()
		return nil, err
	}
	return s, nil
}

// NewStore wraps an existing pool and migrates the schema.
func NewStore(ctx context.Context, pool *database.PoolManager, logger *zap.Logger) (*Store, error) {
	if err := pool.DB().WithContext(ctx).AutoMigrate(&Record{}); err != nil {
		return nil, types.NewError(types.ErrHistory, "migrate history schema").WithCause(err)
	}
	return &Store{
		pool:   pool,
		logger: logger.With(zap.String("component", "history")),
		now:    time.Now,
	}, nil
}

// Save stores res as a new run and returns the persisted record. The file
// key is stored in filepath.Clean form.
func (s *Store) Save(ctx context.Context, language string, res *halstead.Result) (*Record, error) {
	rec := &Record{
		ID:                uuid.New().String(),
		File:              filepath.Clean(res.File),
		Language:          language,
		Vocabulary:        res.Vocabulary,
		Length:            res.Length,
		Volume:            res.Volume.Ptr(),
		Difficulty:        res.Difficulty.Ptr(),
		Effort:            res.Effort.Ptr(),
		DistinctOperators: res.Counts.DistinctOperators,
		DistinctOperands:  res.Counts.DistinctOperands,
		TotalOperators:    res.Counts.TotalOperators,
		TotalOperands:     res.Counts.TotalOperands,
		CreatedAt:         s.now().UTC(),
	}

	err := s.pool.WithTransactionRetry(ctx, saveRetries, func(tx *gorm.DB) error {
		return tx.Create(rec).Error
	})
	if err != nil {
		return nil, types.NewError(types.ErrHistory, "save run").WithCause(err)
	}

	s.logger.Debug("run saved",
		zap.String("id", rec.ID),
		zap.String("file", rec.File),
	)
	return rec, nil
}

// List returns the most recent runs for file, newest first. file is matched
// after filepath.Clean. A non-positive limit returns every run.
func (s *Store) List(ctx context.Context, file string, limit int) ([]Record, error) {
	q := s.pool.DB().WithContext(ctx).
		Where("file = ?", filepath.Clean(file)).
		Order("created_at DESC").
		Order("rowid DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var out []Record
	if err := q.Find(&out).Error; err != nil {
		return nil, types.NewError(types.ErrHistory, "list runs").WithCause(err)
	}
	return out, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.pool.Close()
}
