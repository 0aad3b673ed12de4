package cli

import (
	"github.com/spf13/cobra"

	"github.com/subweave/subweave/internal/config"
	"github.com/subweave/subweave/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subweave",
	Short: "Generate timed subtitles from a transcript and an audio file",
	Long: `Subweave turns a plain transcript and a known audio duration into
timed SRT and VTT subtitle files.

No speech recognition is involved: the audio only contributes its total
duration, which is divided across the transcript proportionally to text
length, clamped to readable per-cue bounds.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		String("config", "", "Path to a TOML config file with default tuning")
}

// loadConfig returns the file-backed configuration when --config is set and
// the built-in defaults otherwise.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
