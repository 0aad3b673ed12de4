package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subweave/subweave/internal/subtitle"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file]",
	Short: "Shift every timestamp in a subtitle file by a constant offset",
	Long: `Shift all cue timestamps in an existing SRT or VTT file by the given
number of seconds. Positive offsets delay the subtitles, negative offsets
advance them (clamped at zero). Text lines are left untouched.

Examples:
  subweave shift subs.srt --offset 2.5
  subweave shift subs.vtt --offset -1.2 -o shifted.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		Float64("offset", 0, "Seconds to add to every timestamp (may be negative)")
	_ = shiftCmd.MarkFlagRequired("offset")
}

func runShift(cmd *cobra.Command, args []string) error {
	path := args[0]
	offset, _ := cmd.Flags().GetFloat64("offset")

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".srt" && ext != ".vtt" {
		return fmt.Errorf("unsupported subtitle format: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}

	format := subtitle.GetFormatFromExtension(path)
	shifted, err := subtitle.ShiftDocument(string(data), offset, format)
	if err != nil {
		return fmt.Errorf("failed to shift %s: %w", path, err)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = path
	}

	if err := os.WriteFile(outputPath, []byte(shifted), 0644); err != nil {
		return fmt.Errorf("failed to write shifted subtitles: %w", err)
	}

	logger.Infow("Shifted subtitles",
		"input", path,
		"output", outputPath,
		"offset_sec", offset,
	)

	fmt.Printf("Shifted %s by %+gs: %s\n", path, offset, outputPath)
	return nil
}
