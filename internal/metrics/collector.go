// Package metrics provides internal metrics collection.
// This package is internal and should not be imported by external projects.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/SS-S3/repo-quality-tool/halstead"
)

// =============================================================================
// 📊 指标收集器
// =============================================================================

// Collector 指标收集器
type Collector struct {
	registry *prometheus.Registry

	// 分析指标
	analysesTotal    *prometheus.CounterVec
	analysisDuration *prometheus.HistogramVec

	// Token 指标
	tokensTotal *prometheus.CounterVec

	// 结果指标
	vocabulary *prometheus.GaugeVec
	length     *prometheus.GaugeVec

	logger *zap.Logger
}

// NewCollector 创建指标收集器
// 每个收集器持有独立的注册表，可以多次创建而不冲突
func NewCollector(namespace string, logger *zap.Logger) *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	c := &Collector{
		registry: reg,
		logger:   logger.With(zap.String("component", "metrics")),
	}

	// 分析指标
	c.analysesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total number of file analyses",
		},
		[]string{"language", "status"},
	)

	c.analysisDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "File analysis duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"language"},
	)

	// Token 指标
	c.tokensTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_total",
			Help:      "Total number of classified tokens",
		},
		[]string{"language", "role"}, // role: operator, operand
	)

	// 结果指标
	c.vocabulary = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vocabulary",
			Help:      "Halstead vocabulary of the last analysed file",
		},
		[]string{"file"},
	)

	c.length = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "length",
			Help:      "Halstead length of the last analysed file",
		},
		[]string{"file"},
	)

	return c
}

// Registry 返回收集器使用的注册表
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// =============================================================================
// 🎯 分析指标
// =============================================================================

// RecordAnalysis 记录一次分析
func (c *Collector) RecordAnalysis(language, status string, duration time.Duration) {
	c.analysesTotal.WithLabelValues(language, status).Inc()
	c.analysisDuration.WithLabelValues(language).Observe(duration.Seconds())
}

// RecordResult 记录分析结果
func (c *Collector) RecordResult(language string, res *halstead.Result) {
	if res == nil {
		return
	}

	counts := res.Counts
	c.tokensTotal.WithLabelValues(language, halstead.RoleOperator.String()).Add(float64(counts.TotalOperators))
	c.tokensTotal.WithLabelValues(language, halstead.RoleOperand.String()).Add(float64(counts.TotalOperands))

	c.vocabulary.WithLabelValues(res.File).Set(float64(res.Vocabulary))
	c.length.WithLabelValues(res.File).Set(float64(res.Length))
}

// =============================================================================
// 📤 导出
// =============================================================================

// WriteTextfile 以 node_exporter textfile 格式写出全部指标
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	c.logger.Debug("metrics textfile written", zap.String("path", path))
	return nil
}
