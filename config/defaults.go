// =============================================================================
// 📦 Halstead 默认配置
// =============================================================================
// 提供所有配置项的合理默认值
// =============================================================================
package config

import "time"

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Analysis: DefaultAnalysisConfig(),
		Output:   DefaultOutputConfig(),
		Log:      DefaultLogConfig(),
		Metrics:  DefaultMetricsConfig(),
		History:  DefaultHistoryConfig(),
	}
}

// DefaultAnalysisConfig 返回默认计算配置
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		DefaultLanguage: "javascript",
		SuppressZero:    false,
	}
}

// DefaultOutputConfig 返回默认输出配置
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Format:        "json",
		IncludeCounts: false,
		ErrorRecord:   false,
	}
}

// DefaultLogConfig 返回默认日志配置
// 标准输出用于结果，日志写到 stderr
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:            "warn",
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		EnableCaller:     false,
		EnableStacktrace: false,
	}
}

// DefaultMetricsConfig 返回默认指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   false,
		Namespace: "halstead",
		Textfile:  "",
	}
}

// DefaultHistoryConfig 返回默认历史配置
func DefaultHistoryConfig() HistoryConfig {
	return HistoryConfig{
		Enabled: false,
		Path:    "halstead-history.db",
		Limit:   20,
		Timeout: 5 * time.Second,
	}
}
