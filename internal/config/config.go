package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/subweave/subweave/internal/subtitle"
)

// Chunking controls how sentences are packed into display chunks.
type Chunking struct {
	TargetChars int `toml:"target_chars"`
	MaxChars    int `toml:"max_chars"`
}

// Timing controls cue durations and the global offset.
type Timing struct {
	MinDur float64 `toml:"min_dur"`
	MaxDur float64 `toml:"max_dur"`
	Offset float64 `toml:"offset"`
}

// Output controls where and how the documents are written.
type Output struct {
	Basename  string `toml:"basename"`
	WrapWidth int    `toml:"wrap_width"`
}

// Config carries the tunable defaults for subtitle generation. Command-line
// flags that are set explicitly take precedence over file values.
type Config struct {
	Chunking Chunking `toml:"chunking"`
	Timing   Timing   `toml:"timing"`
	Output   Output   `toml:"output"`
}

// Default returns the standard configuration.
func Default() Config {
	opts := subtitle.DefaultOptions()
	return Config{
		Chunking: Chunking{
			TargetChars: opts.TargetChars,
			MaxChars:    opts.MaxChars,
		},
		Timing: Timing{
			MinDur: opts.MinDur,
			MaxDur: opts.MaxDur,
		},
		Output: Output{
			Basename:  "subs",
			WrapWidth: opts.WrapWidth,
		},
	}
}

// Load reads a TOML config file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Output.Basename == "" {
		return fmt.Errorf("output.basename must not be empty")
	}
	return c.SubtitleOptions().Validate()
}

// SubtitleOptions maps the config onto the builder's options struct.
func (c *Config) SubtitleOptions() subtitle.Options {
	return subtitle.Options{
		TargetChars: c.Chunking.TargetChars,
		MaxChars:    c.Chunking.MaxChars,
		MinDur:      c.Timing.MinDur,
		MaxDur:      c.Timing.MaxDur,
		WrapWidth:   c.Output.WrapWidth,
	}
}
