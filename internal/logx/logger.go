package logx

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLevel      = "info"
	defaultFormat     = "text"
	defaultOutput     = "stderr"
	defaultFilePath   = "./logs/web-data-gen.log"
	defaultMaxSizeMB  = 50
	defaultMaxBackups = 5
	defaultMaxAgeDays = 7
)

// Config controls where and how logs are written.
type Config struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"text"`
	Output     string `envconfig:"LOG_OUTPUT" default:"stderr"`
	FilePath   string `envconfig:"LOG_FILE_PATH" default:"./logs/web-data-gen.log"`
	MaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"50"`
	MaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"7"`
	Compress   bool   `envconfig:"LOG_FILE_COMPRESS" default:"true"`
}

// DefaultConfig mirrors the envconfig defaults for callers that do not read
// the environment.
func DefaultConfig() Config {
	return Config{
		Level:      defaultLevel,
		Format:     defaultFormat,
		Output:     defaultOutput,
		FilePath:   defaultFilePath,
		MaxSizeMB:  defaultMaxSizeMB,
		MaxBackups: defaultMaxBackups,
		MaxAgeDays: defaultMaxAgeDays,
		Compress:   true,
	}
}

// Init builds the process logger, installs it as the slog default and
// returns a closer for any file sinks.
func Init(service string, cfg Config) (*slog.Logger, func() error, error) {
	writer, closer, err := buildWriter(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(buildHandler(cfg, writer)).With("service", service)
	slog.SetDefault(logger)
	return logger, closer, nil
}

// New builds a logger on w using the level and format of cfg. Output
// settings are ignored.
func New(w io.Writer, cfg Config) *slog.Logger {
	return slog.New(buildHandler(cfg, w))
}

// Diagnostics returns the child logger every delivery attempt is written to.
func Diagnostics(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", "diagnostics")
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func buildHandler(cfg Config, writer io.Writer) slog.Handler {
	options := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}
	if normalizeFormat(cfg.Format) == "json" {
		return slog.NewJSONHandler(writer, options)
	}
	return slog.NewTextHandler(writer, options)
}

func buildWriter(cfg Config) (io.Writer, func() error, error) {
	output := strings.ToLower(cfg.Output)
	useStdout := strings.Contains(output, "stdout")
	useStderr := strings.Contains(output, "stderr")
	useFile := strings.Contains(output, "file")
	if !useStdout && !useStderr && !useFile {
		useStderr = true
	}

	writers := make([]io.Writer, 0, 3)
	var closers []io.Closer

	if useStdout {
		writers = append(writers, os.Stdout)
	}
	if useStderr {
		writers = append(writers, os.Stderr)
	}
	if useFile {
		path := cfg.FilePath
		if path == "" {
			path = defaultFilePath
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, err
		}
		rotator := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    positive(cfg.MaxSizeMB, defaultMaxSizeMB),
			MaxBackups: positive(cfg.MaxBackups, defaultMaxBackups),
			MaxAge:     positive(cfg.MaxAgeDays, defaultMaxAgeDays),
			Compress:   cfg.Compress,
		}
		writers = append(writers, rotator)
		closers = append(closers, rotator)
	}

	closeFn := func() error {
		var lastErr error
		for _, c := range closers {
			if err := c.Close(); err != nil {
				lastErr = err
			}
		}
		return lastErr
	}

	if len(writers) == 1 {
		return writers[0], closeFn, nil
	}
	return io.MultiWriter(writers...), closeFn, nil
}

func normalizeFormat(v string) string {
	if strings.EqualFold(strings.TrimSpace(v), "json") {
		return "json"
	}
	return "text"
}

// ParseLevel maps a level name onto slog, defaulting to info.
func ParseLevel(v string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func positive(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
