package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/subweave/subweave/internal/audio"
	"github.com/subweave/subweave/internal/config"
	"github.com/subweave/subweave/internal/extract"
	"github.com/subweave/subweave/internal/subtitle"
)

var generateCmd = &cobra.Command{
	Use:   "generate [audio_file] [transcript_file]",
	Short: "Generate SRT and VTT subtitles from a transcript and an audio file",
	Long: `Generate subtitle files for the given audio using an existing transcript.

The audio (or video) file is probed for its duration; the transcript text is
split into sentences, packed into display-sized chunks, and each chunk gets a
time window proportional to its length. Both an SRT and a VTT document are
written next to each other under the output basename.

Transcripts can be Word documents (.docx) or plain text. If the duration
cannot be read from the media file, pass it explicitly with --duration.

Examples:
  subweave generate episode.mp3 transcript.docx
  subweave generate talk.mp4 talk.txt --out talk --offset 1.25
  subweave generate voice.wav notes.txt --duration 632.5 --max-chars 36`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().
		String("out", "", "Output basename for the .srt and .vtt files (default \"subs\")")
	generateCmd.Flags().
		Float64("duration", 0, "Fallback duration in seconds if the audio cannot be probed")
	generateCmd.Flags().
		Float64("offset", 0, "Shift all subtitle timestamps by seconds (positive = delay)")
	registerTuningFlags(generateCmd.Flags())
}

func registerTuningFlags(flags *pflag.FlagSet) {
	flags.Int("target-chars", 22, "Slice width for sentences longer than the chunk cap")
	flags.Int("max-chars", 42, "Maximum characters per subtitle chunk")
	flags.Float64("min-dur", 1.8, "Minimum seconds a cue stays on screen")
	flags.Float64("max-dur", 6.0, "Maximum seconds a cue stays on screen")
}

// resolveOptions layers explicitly-set flags over the configured defaults.
func resolveOptions(flags *pflag.FlagSet, cfg config.Config) subtitle.Options {
	opts := cfg.SubtitleOptions()
	if flags.Changed("target-chars") {
		opts.TargetChars, _ = flags.GetInt("target-chars")
	}
	if flags.Changed("max-chars") {
		opts.MaxChars, _ = flags.GetInt("max-chars")
	}
	if flags.Changed("min-dur") {
		opts.MinDur, _ = flags.GetFloat64("min-dur")
	}
	if flags.Changed("max-dur") {
		opts.MaxDur, _ = flags.GetFloat64("max-dur")
	}
	return opts
}

func runGenerate(cmd *cobra.Command, args []string) error {
	audioPath, transcriptPath := args[0], args[1]

	for _, path := range []string{audioPath, transcriptPath} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
	}
	if !audio.IsMediaFile(audioPath) {
		return fmt.Errorf("unsupported file type: %s (expected audio or video file)", filepath.Ext(audioPath))
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := resolveOptions(cmd.Flags(), cfg)
	if err := opts.Validate(); err != nil {
		return err
	}

	offset := cfg.Timing.Offset
	if cmd.Flags().Changed("offset") {
		offset, _ = cmd.Flags().GetFloat64("offset")
	}

	basename, _ := cmd.Flags().GetString("out")
	if basename == "" {
		basename = cfg.Output.Basename
	}

	durationSec, probeErr := audio.ProbeDuration(audioPath)
	if probeErr != nil {
		if !cmd.Flags().Changed("duration") {
			return fmt.Errorf("could not determine audio duration: %w (pass --duration to supply one)", probeErr)
		}
		durationSec, _ = cmd.Flags().GetFloat64("duration")
		logger.Warnw("Audio probe failed, using supplied duration",
			"seconds", durationSec,
		)
	}
	if durationSec <= 0 {
		return fmt.Errorf("audio duration must be positive, got %g seconds", durationSec)
	}

	text, err := extract.Text(transcriptPath)
	if err != nil {
		return err
	}

	logger.Infow("Building subtitles",
		"audio", audioPath,
		"transcript", transcriptPath,
		"duration_sec", durationSec,
		"target_chars", opts.TargetChars,
		"max_chars", opts.MaxChars,
	)

	sub, err := subtitle.Build(text, durationSec, opts)
	if err != nil {
		return err
	}

	writers := map[subtitle.Format]subtitle.Writer{
		subtitle.FormatSRT: &subtitle.SRTWriter{WrapWidth: opts.WrapWidth},
		subtitle.FormatVTT: &subtitle.VTTWriter{WrapWidth: opts.WrapWidth},
	}

	written := make([]string, 0, 2)
	for _, format := range []subtitle.Format{subtitle.FormatSRT, subtitle.FormatVTT} {
		doc := writers[format].Render(sub)
		if offset != 0 {
			doc, err = subtitle.ShiftDocument(doc, offset, format)
			if err != nil {
				return fmt.Errorf("failed to apply offset: %w", err)
			}
		}

		path := basename + subtitle.GetExtensionForFormat(format)
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}

	fmt.Printf("Subtitles generated successfully: %s\n", strings.Join(written, ", "))
	fmt.Printf("  Cues: %d\n", len(sub.Entries))
	fmt.Printf("  Duration: %s\n", subtitle.FormatTimestamp(durationSec, subtitle.FormatSRT))

	return nil
}
