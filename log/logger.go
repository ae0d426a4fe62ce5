// Package log builds the zap loggers used by the demo frontends.
package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeFmt = "2006/01/02 15:04:05.000"

const (
	Dev Mode = iota
	Prod
)

type Mode int32

type Config struct {
	Mode  Mode
	Level string
	App   string
}

// Creates a console logger writing to stdout. A nil config
// yields a development logger at debug level.
func New(cfg *Config) *zap.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// Same as [New](), but writing to the given writer. Terminal
// frontends use this to keep logs away from the screen.
func NewWithWriter(cfg *Config, w io.Writer) *zap.Logger {
	if cfg == nil {
		cfg = &Config{Mode: Dev, Level: "debug"}
	}
	if cfg.App == "" {
		cfg.App = "mireel"
	}
	lv := zap.NewAtomicLevel()
	if err := lv.UnmarshalText([]byte(cfg.Level)); err != nil {
		_ = lv.UnmarshalText([]byte("info"))
		_, _ = fmt.Fprintf(os.Stderr, "logger: invalid log level %q, defaulting to INFO\n", cfg.Level)
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg(cfg.Mode == Dev)),
		zapcore.Lock(zapcore.AddSync(w)),
		lv,
	)
	opts := []zap.Option{zap.AddCaller()}
	if cfg.Mode == Dev {
		opts = append(opts, zap.Development())
	}
	return zap.New(core, opts...).Named(cfg.App)
}

func encCfg(color bool) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + t.Format(timeFmt) + "]")
	}
	cfg.ConsoleSeparator = " "
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	if color {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return cfg
}

// Parses "dev" or "prod".
func ParseMode(text string) (Mode, error) {
	switch text {
	case "dev", "":
		return Dev, nil
	case "prod":
		return Prod, nil
	default:
		return Dev, fmt.Errorf("unknown log mode %q", text)
	}
}
