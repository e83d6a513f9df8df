// =============================================================================
// 📦 Halstead 配置加载器
// =============================================================================
// 统一配置加载，支持 YAML 文件 + 环境变量覆盖
//
// 使用方法:
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("halstead.yaml").
//	    WithEnvPrefix("HALSTEAD").
//	    Load()
//
// 配置优先级: 默认值 → YAML 文件 → 环境变量
// =============================================================================
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SS-S3/repo-quality-tool/halstead"
)

// =============================================================================
// 🎯 核心配置结构
// =============================================================================

// Config 是完整配置结构
type Config struct {
	// Analysis 度量计算配置
	Analysis AnalysisConfig `yaml:"analysis" env:"ANALYSIS"`

	// Output 输出配置
	Output OutputConfig `yaml:"output" env:"OUTPUT"`

	// Log 日志配置
	Log LogConfig `yaml:"log" env:"LOG"`

	// Metrics Prometheus 指标配置
	Metrics MetricsConfig `yaml:"metrics" env:"METRICS"`

	// History 运行历史配置
	History HistoryConfig `yaml:"history" env:"HISTORY"`
}

// AnalysisConfig 度量计算配置
type AnalysisConfig struct {
	// 无法按扩展名识别时使用的语言
	DefaultLanguage string `yaml:"default_language" env:"DEFAULT_LANGUAGE"`
	// 四舍五入后为 0 的值记为未定义（兼容旧报告）
	SuppressZero bool `yaml:"suppress_zero" env:"SUPPRESS_ZERO"`
	// 计为操作符的 Token 类别，空表示默认
	OperatorKinds []string `yaml:"operator_kinds" env:"OPERATOR_KINDS"`
	// 计为操作数的 Token 类别，空表示默认
	OperandKinds []string `yaml:"operand_kinds" env:"OPERAND_KINDS"`
}

// OutputConfig 输出配置
type OutputConfig struct {
	// 输出格式: json, yaml, text
	Format string `yaml:"format" env:"FORMAT"`
	// 是否附带 n1/n2/N1/N2 计数
	IncludeCounts bool `yaml:"include_counts" env:"INCLUDE_COUNTS"`
	// 失败时是否在标准输出写出带 error 字段的占位结果
	ErrorRecord bool `yaml:"error_record" env:"ERROR_RECORD"`
}

// LogConfig 日志配置
type LogConfig struct {
	// 日志级别: debug, info, warn, error
	Level string `yaml:"level" env:"LEVEL"`
	// 输出格式: json, console
	Format string `yaml:"format" env:"FORMAT"`
	// 输出路径
	OutputPaths []string `yaml:"output_paths" env:"OUTPUT_PATHS"`
	// 是否启用调用者信息
	EnableCaller bool `yaml:"enable_caller" env:"ENABLE_CALLER"`
	// 是否启用堆栈跟踪
	EnableStacktrace bool `yaml:"enable_stacktrace" env:"ENABLE_STACKTRACE"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	// 是否启用
	Enabled bool `yaml:"enabled" env:"ENABLED"`
	// 指标命名空间
	Namespace string `yaml:"namespace" env:"NAMESPACE"`
	// textfile collector 输出路径，空表示不写出
	Textfile string `yaml:"textfile" env:"TEXTFILE"`
}

// HistoryConfig 运行历史配置
type HistoryConfig struct {
	// 是否记录每次运行结果
	Enabled bool `yaml:"enabled" env:"ENABLED"`
	// SQLite 数据库路径
	Path string `yaml:"path" env:"PATH"`
	// 查询历史时返回的最大条数
	Limit int `yaml:"limit" env:"LIMIT"`
	// 打开数据库的超时
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT"`
}

// =============================================================================
// 🔧 配置加载器
// =============================================================================

// Loader 配置加载器（Builder 模式）
type Loader struct {
	configPath string
	envPrefix  string
	validators []func(*Config) error
}

// NewLoader 创建新的配置加载器
func NewLoader() *Loader {
	return &Loader{
		envPrefix:  "HALSTEAD",
		validators: make([]func(*Config) error, 0),
	}
}

// WithConfigPath 设置配置文件路径
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithEnvPrefix 设置环境变量前缀
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// WithValidator 添加配置验证器
func (l *Loader) WithValidator(v func(*Config) error) *Loader {
	l.validators = append(l.validators, v)
	return l
}

// Load 加载配置
// 优先级: 默认值 → YAML 文件 → 环境变量
func (l *Loader) Load() (*Config, error) {
	// 1. 从默认值开始
	cfg := DefaultConfig()

	// 2. 如果指定了配置文件，从文件加载
	if l.configPath != "" {
		if err := l.loadFromFile(cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// 3. 从环境变量覆盖
	if err := l.loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// 4. 运行验证器
	for _, v := range l.validators {
		if err := v(cfg); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
	}

	return cfg, nil
}

// loadFromFile 从 YAML 文件加载配置
func (l *Loader) loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// 文件不存在，使用默认值
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// loadFromEnv 从环境变量加载配置
func (l *Loader) loadFromEnv(cfg *Config) error {
	return l.setFieldsFromEnv(reflect.ValueOf(cfg).Elem(), l.envPrefix)
}

// setFieldsFromEnv 递归设置结构体字段
func (l *Loader) setFieldsFromEnv(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		// 获取 env tag
		envTag := fieldType.Tag.Get("env")
		if envTag == "" || envTag == "-" {
			continue
		}

		envKey := prefix + "_" + envTag

		// 如果是结构体，递归处理
		if field.Kind() == reflect.Struct {
			if err := l.setFieldsFromEnv(field, envKey); err != nil {
				return err
			}
			continue
		}

		// 获取环境变量值
		envValue := os.Getenv(envKey)
		if envValue == "" {
			continue
		}

		// 设置字段值
		if err := setFieldValue(field, envValue); err != nil {
			return fmt.Errorf("failed to set %s: %w", envKey, err)
		}
	}

	return nil
}

// setFieldValue 设置字段值
func setFieldValue(field reflect.Value, value string) error {
	if !field.CanSet() {
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// 特殊处理 time.Duration
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return err
			}
			field.SetInt(int64(d))
		} else {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return err
			}
			field.SetInt(i)
		}

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)

	case reflect.Slice:
		// 支持逗号分隔的字符串切片
		if field.Type().Elem().Kind() == reflect.String {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			field.Set(reflect.ValueOf(parts))
		}
	}

	return nil
}

// =============================================================================
// 🔍 辅助函数
// =============================================================================

// Validate 验证配置
func (c *Config) Validate() error {
	var errs []string

	// 验证输出配置
	switch c.Output.Format {
	case "json", "yaml", "text":
	default:
		errs = append(errs, fmt.Sprintf("unsupported output format %q", c.Output.Format))
	}

	// 验证日志配置
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level %q", c.Log.Level))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, fmt.Sprintf("invalid log format %q", c.Log.Format))
	}

	// 验证分类策略
	if _, err := c.Analysis.Policy(); err != nil {
		errs = append(errs, err.Error())
	}

	// 验证指标与历史配置
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		errs = append(errs, "metrics namespace must not be empty")
	}
	if c.History.Enabled && c.History.Path == "" {
		errs = append(errs, "history path must not be empty")
	}
	if c.History.Limit <= 0 {
		errs = append(errs, "history limit must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// Policy 返回配置对应的分类策略
func (a AnalysisConfig) Policy() (halstead.Policy, error) {
	return halstead.PolicyFromKinds(a.OperatorKinds, a.OperandKinds)
}

// ComputerOptions 返回配置对应的计算选项
func (a AnalysisConfig) ComputerOptions() ([]halstead.Option, error) {
	policy, err := a.Policy()
	if err != nil {
		return nil, err
	}
	return []halstead.Option{
		halstead.WithPolicy(policy),
		halstead.WithZeroSuppression(a.SuppressZero),
	}, nil
}
