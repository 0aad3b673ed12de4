package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subweave/subweave/internal/subtitle"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "Print a summary of an existing subtitle file",
	Long: `Parse an SRT or VTT file and print its cue count and time span.

Examples:
  subweave inspect subs.srt
  subweave inspect subs.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	file, err := subtitle.Open(args[0])
	if err != nil {
		return err
	}

	sub := file.Subtitle()
	start, end := sub.Span()

	fmt.Printf("Format: %s\n", file.Format())
	fmt.Printf("Cues:   %d\n", len(sub.Entries))
	if len(sub.Entries) > 0 {
		fmt.Printf("Span:   %s --> %s\n",
			subtitle.FormatTimestamp(start, file.Format()),
			subtitle.FormatTimestamp(end, file.Format()))
	}
	return nil
}
