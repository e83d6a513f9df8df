// =============================================================================
// Halstead 主入口
// =============================================================================
// 计算单个源文件的 Halstead 度量并输出到标准输出
//
// 使用方法:
//
//	halstead app.js                        # 输出一行 JSON
//	halstead -format text app.js           # 表格输出
//	halstead -config halstead.yaml app.js  # 指定配置文件
//	halstead -history app.js               # 查看历史记录
//	halstead -version                      # 显示版本信息
//
// =============================================================================
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/SS-S3/repo-quality-tool/config"
	"github.com/SS-S3/repo-quality-tool/internal/analyzer"
	"github.com/SS-S3/repo-quality-tool/internal/history"
	"github.com/SS-S3/repo-quality-tool/internal/metrics"
	"github.com/SS-S3/repo-quality-tool/types"
)

// =============================================================================
// 📦 版本信息（构建时注入）
// =============================================================================

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// =============================================================================
// 🎯 主函数
// =============================================================================

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options 命令行参数
type options struct {
	configPath  string
	format      string
	language    string
	legacyZero  bool
	counts      bool
	errorRecord bool
	history     bool
	version     bool
}

// run 执行一次命令并返回退出码
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("halstead", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "Path to config file (YAML)")
	fs.StringVar(&opts.format, "format", "", "Output format: json, yaml, text")
	fs.StringVar(&opts.language, "lang", "", "Source language (default: detect from extension)")
	fs.BoolVar(&opts.legacyZero, "legacy-zero", false, "Report metrics that round to zero as undefined")
	fs.BoolVar(&opts.counts, "counts", false, "Include operator and operand counts")
	fs.BoolVar(&opts.errorRecord, "error-record", false, "On failure also print a result record with an error field")
	fs.BoolVar(&opts.history, "history", false, "Show stored runs for the file instead of analysing it")
	fs.BoolVar(&opts.version, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if opts.version {
		printVersion(stdout)
		return 0
	}

	if fs.NArg() < 1 {
		printUsage(stderr)
		fmt.Fprintf(stderr, "error: %v\n", types.NewMissingArgumentError("file"))
		return 1
	}
	file := fs.Arg(0)

	// 加载配置
	cfg, err := loadConfig(opts, fs)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	// 初始化日志
	logger := initLogger(cfg.Log)
	defer func() { _ = logger.Sync() }()

	logger.Debug("starting halstead",
		zap.String("version", Version),
		zap.String("file", file),
	)

	if err := execute(context.Background(), cfg, opts, file, stdout, logger); err != nil {
		logger.Error("halstead failed",
			zap.String("file", file),
			zap.String("code", string(types.GetErrorCode(err))),
			zap.Error(err),
		)
		fmt.Fprintf(stderr, "error: %v\n", err)
		if cfg.Output.ErrorRecord && !opts.history {
			if werr := writeError(stdout, cfg.Output.Format, file, err); werr != nil {
				logger.Warn("failed to write error record", zap.Error(werr))
			}
		}
		return 1
	}
	return 0
}

// loadConfig 加载配置并应用显式设置的命令行参数
func loadConfig(opts options, fs *flag.FlagSet) (*config.Config, error) {
	cfg, err := config.NewLoader().
		WithConfigPath(opts.configPath).
		Load()
	if err != nil {
		return nil, types.NewError(types.ErrInvalidConfig, "failed to load config").WithCause(err)
	}

	// 只覆盖用户显式设置的参数
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Output.Format = opts.format
		case "legacy-zero":
			cfg.Analysis.SuppressZero = opts.legacyZero
		case "counts":
			cfg.Output.IncludeCounts = opts.counts
		case "error-record":
			cfg.Output.ErrorRecord = opts.errorRecord
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, types.NewError(types.ErrInvalidConfig, "invalid config").WithCause(err)
	}
	return cfg, nil
}

// execute 组装服务并执行分析或历史查询
func execute(ctx context.Context, cfg *config.Config, opts options, file string, stdout io.Writer, logger *zap.Logger) error {
	var svcOpts []analyzer.Option

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics.Namespace, logger)
		svcOpts = append(svcOpts, analyzer.WithMetrics(collector))
	}

	if cfg.History.Enabled || opts.history {
		store, err := history.Open(ctx, cfg.History.Path, cfg.History.Timeout, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn("failed to close history", zap.Error(err))
			}
		}()
		svcOpts = append(svcOpts, analyzer.WithHistory(store))
	}

	svc, err := analyzer.NewService(cfg.Analysis, logger, svcOpts...)
	if err != nil {
		return err
	}

	if opts.history {
		runs, err := svc.History(ctx, file, cfg.History.Limit)
		if err != nil {
			return err
		}
		return writeHistory(stdout, cfg.Output.Format, runs)
	}

	report, err := svc.AnalyzeFile(ctx, file, opts.language)
	if collector != nil && cfg.Metrics.Textfile != "" {
		// 失败的分析也写出指标
		if werr := collector.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
			logger.Warn("failed to write metrics textfile", zap.Error(werr))
		}
	}
	if err != nil {
		return err
	}

	return writeResult(stdout, cfg.Output.Format, cfg.Output.IncludeCounts, report.Result)
}

// =============================================================================
// 📋 版本和帮助
// =============================================================================

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "halstead %s\n", Version)
	fmt.Fprintf(w, "  Build Time: %s\n", BuildTime)
	fmt.Fprintf(w, "  Git Commit: %s\n", GitCommit)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `halstead - Halstead software metrics for one source file

Usage:
  halstead [options] <file>

Options:
  -config <path>   Path to configuration file (YAML)
  -format <fmt>    Output format: json (default), yaml, text
  -lang <name>     Source language: javascript, go (default: from extension)
  -legacy-zero     Report metrics that round to zero as undefined
  -counts          Include operator and operand counts
  -error-record    On failure also print a record with an "error" field
  -history         Show stored runs for the file
  -version         Show version information

Environment:
  HALSTEAD_<SECTION>_<FIELD> overrides config values,
  e.g. HALSTEAD_OUTPUT_FORMAT=yaml

Examples:
  halstead src/app.js
  halstead -format text -counts main.go
  halstead -lang javascript script.txt`)
}

// =============================================================================
// 🔧 日志初始化
// =============================================================================

func initLogger(cfg config.LogConfig) *zap.Logger {
	// 解析日志级别
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.WarnLevel
	}

	// 配置编码器
	var encoderConfig zapcore.EncoderConfig
	if cfg.Format == "console" {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = []string{"stderr"}
	}

	// 构建配置
	zapConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		Encoding:          "json",
		EncoderConfig:     encoderConfig,
		OutputPaths:       outputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     !cfg.EnableCaller,
		DisableStacktrace: !cfg.EnableStacktrace,
	}

	if cfg.Format == "console" {
		zapConfig.Encoding = "console"
	}

	// 构建 logger
	logger, err := zapConfig.Build()
	if err != nil {
		// 回退到基本 logger
		logger, _ = zap.NewProduction()
	}

	return logger
}
