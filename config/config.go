// Package config loads and validates the reel tuning parameters.
//
// Speeds are in logical pixels per second, accelerations in pixels
// per second squared, and durations are wall-clock values that the
// reels convert to ticks with [Config.Ticks]().
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/edwinsyarief/mireel/easing"
	"github.com/edwinsyarief/mireel/internal"
	"github.com/edwinsyarief/mireel/symbol"
	"gopkg.in/yaml.v3"
)

type Blur struct {
	OnSpeed  float64       `yaml:"on_speed"`
	OffSpeed float64       `yaml:"off_speed"`
	FadeIn   time.Duration `yaml:"fade_in"`
	FadeOut  time.Duration `yaml:"fade_out"`
}

type Bounce struct {
	Depth  float64       `yaml:"depth"`
	Out    time.Duration `yaml:"out"`
	Back   time.Duration `yaml:"back"`
	Easing string        `yaml:"easing"`
}

type Config struct {
	UPS          int     `yaml:"ups"`
	Rows         int     `yaml:"rows"`
	PaylineRow   int     `yaml:"payline_row"`
	SymbolWidth  float64 `yaml:"symbol_width"`
	SymbolHeight float64 `yaml:"symbol_height"`
	ReelGap      float64 `yaml:"reel_gap"`

	Acceleration  float64 `yaml:"acceleration"`
	MaxSpeed      float64 `yaml:"max_speed"`
	SpeedVariance float64 `yaml:"speed_variance"`
	Deceleration  float64 `yaml:"deceleration"`
	LandingSpeed  float64 `yaml:"landing_speed"`

	Blur   Blur   `yaml:"blur"`
	Bounce Bounce `yaml:"bounce"`

	StopDelay    time.Duration `yaml:"stop_delay"`
	SpinDuration time.Duration `yaml:"spin_duration"`

	Strips  [][]symbol.ID `yaml:"strips"`
	Symbols string        `yaml:"symbols"` // path to a symbol table, empty for the built-in set
}

// Returns a five-reel, three-row configuration using the
// built-in fruit symbols.
func Default() *Config {
	return &Config{
		UPS:          60,
		Rows:         3,
		PaylineRow:   1,
		SymbolWidth:  96,
		SymbolHeight: 96,
		ReelGap:      8,

		Acceleration:  4800,
		MaxSpeed:      2400,
		SpeedVariance: 0.08,
		Deceleration:  3600,
		LandingSpeed:  720,

		Blur: Blur{
			OnSpeed:  1500,
			OffSpeed: 1100,
			FadeIn:   120 * time.Millisecond,
			FadeOut:  160 * time.Millisecond,
		},
		Bounce: Bounce{
			Depth:  18,
			Out:    70 * time.Millisecond,
			Back:   280 * time.Millisecond,
			Easing: "out-back",
		},

		StopDelay:    200 * time.Millisecond,
		SpinDuration: 1500 * time.Millisecond,

		Strips: defaultStrips(),
	}
}

func defaultStrips() [][]symbol.ID {
	const (
		c = symbol.Cherry
		l = symbol.Lemon
		o = symbol.Orange
		p = symbol.Plum
		b = symbol.Bell
		r = symbol.Bar
		s = symbol.Seven
	)
	return [][]symbol.ID{
		{c, l, o, p, b, c, r, l, s, o, c, p},
		{l, c, b, o, r, p, c, s, l, o, b, c},
		{o, p, c, l, s, b, o, c, r, l, p, c},
		{c, b, l, r, o, c, p, s, l, b, o, p},
		{p, o, c, b, l, s, c, r, o, l, c, b},
	}
}

// Decodes a YAML document on top of [Default]() values and
// validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Reads and decodes a YAML config file. See [Parse]().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Returned by [Config.Validate]() wrapped with the offending field.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func (self *Config) Validate() error {
	switch {
	case self.UPS <= 0:
		return invalid("ups must be positive, got %d", self.UPS)
	case self.Rows <= 0:
		return invalid("rows must be positive, got %d", self.Rows)
	case self.PaylineRow < 0 || self.PaylineRow >= self.Rows:
		return invalid("payline_row %d outside [0, %d)", self.PaylineRow, self.Rows)
	case self.SymbolWidth <= 0 || self.SymbolHeight <= 0:
		return invalid("symbol size must be positive, got %gx%g", self.SymbolWidth, self.SymbolHeight)
	case self.ReelGap < 0:
		return invalid("reel_gap can't be negative")
	case self.Acceleration <= 0:
		return invalid("acceleration must be positive")
	case self.MaxSpeed <= 0:
		return invalid("max_speed must be positive")
	case self.Deceleration <= 0:
		return invalid("deceleration must be positive")
	case self.LandingSpeed <= 0 || self.LandingSpeed > self.MaxSpeed:
		return invalid("landing_speed %g outside (0, %g]", self.LandingSpeed, self.MaxSpeed)
	case self.SpeedVariance < 0 || self.SpeedVariance >= 1:
		return invalid("speed_variance %g outside [0, 1)", self.SpeedVariance)
	case self.Blur.OnSpeed <= 0:
		return invalid("blur.on_speed must be positive, got %g", self.Blur.OnSpeed)
	case self.Blur.OffSpeed > self.Blur.OnSpeed:
		return invalid("blur.off_speed %g above blur.on_speed %g", self.Blur.OffSpeed, self.Blur.OnSpeed)
	case self.Blur.FadeIn < 0 || self.Blur.FadeOut < 0:
		return invalid("blur fades can't be negative")
	case self.Bounce.Depth < 0 || self.Bounce.Out < 0 || self.Bounce.Back < 0:
		return invalid("bounce values can't be negative")
	case self.StopDelay < 0 || self.SpinDuration < 0:
		return invalid("stop_delay and spin_duration can't be negative")
	case len(self.Strips) == 0:
		return invalid("at least one strip is required")
	}
	if _, err := easing.ByName(self.Bounce.Easing); err != nil {
		return invalid("bounce.easing: %v", err)
	}
	for i, strip := range self.Strips {
		if len(strip) < self.Rows+2 {
			return invalid("strip %d has %d symbols, need at least %d", i, len(strip), self.Rows+2)
		}
	}
	return nil
}

// Converts a wall-clock duration to ticks at the configured UPS.
func (self *Config) Ticks(duration time.Duration) internal.TicksDuration {
	return internal.TicksFor(duration, self.UPS)
}

// Number of reels.
func (self *Config) Reels() int { return len(self.Strips) }

// Loads the configured symbol table, or the built-in one when
// no path is set, and checks every strip against it.
func (self *Config) SymbolTable() (*symbol.Table, error) {
	table := symbol.Default()
	if self.Symbols != "" {
		var err error
		table, err = symbol.Load(self.Symbols)
		if err != nil {
			return nil, err
		}
	}
	if err := table.Check(self.Strips); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return table, nil
}
