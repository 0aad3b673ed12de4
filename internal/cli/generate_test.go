package cli

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/subweave/subweave/internal/config"
)

func newTuningFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerTuningFlags(flags)
	return flags
}

func TestResolveOptionsDefaults(t *testing.T) {
	flags := newTuningFlags(t)
	opts := resolveOptions(flags, config.Default())

	if opts.TargetChars != 22 || opts.MaxChars != 42 {
		t.Errorf("unexpected chunking defaults: %+v", opts)
	}
	if opts.MinDur != 1.8 || opts.MaxDur != 6.0 {
		t.Errorf("unexpected timing defaults: %+v", opts)
	}
}

func TestResolveOptionsFlagOverridesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Chunking.MaxChars = 50
	cfg.Timing.MinDur = 2.5

	flags := newTuningFlags(t)
	if err := flags.Set("max-chars", "36"); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	opts := resolveOptions(flags, cfg)

	if opts.MaxChars != 36 {
		t.Errorf("explicit flag should win over config: got %d, want 36", opts.MaxChars)
	}
	if opts.MinDur != 2.5 {
		t.Errorf("config value should survive when flag untouched: got %g, want 2.5", opts.MinDur)
	}
	if opts.TargetChars != 22 {
		t.Errorf("untouched values keep defaults: got %d, want 22", opts.TargetChars)
	}
}
