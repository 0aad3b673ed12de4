package subtitle

import (
	"fmt"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/subweave/subweave/internal/segment"
)

// Options carries the chunking and timing parameters for Build. The pipeline
// is pure, so the knobs travel with the call instead of living in globals.
type Options struct {
	TargetChars int     // slice width for oversized sentences
	MaxChars    int     // hard cap per chunk
	MinDur      float64 // minimum cue duration in seconds, before rescale
	MaxDur      float64 // maximum cue duration in seconds, before rescale
	WrapWidth   int     // display line width used by the writers
}

// DefaultOptions returns the standard subtitle tuning.
func DefaultOptions() Options {
	return Options{
		TargetChars: 22,
		MaxChars:    42,
		MinDur:      1.8,
		MaxDur:      6.0,
		WrapWidth:   24,
	}
}

func (o Options) Validate() error {
	if o.TargetChars < 1 {
		return fmt.Errorf("target chars must be at least 1, got %d", o.TargetChars)
	}
	if o.MaxChars < 1 {
		return fmt.Errorf("max chars must be at least 1, got %d", o.MaxChars)
	}
	if o.MinDur <= 0 {
		return fmt.Errorf("min duration must be positive, got %g", o.MinDur)
	}
	if o.MaxDur < o.MinDur {
		return fmt.Errorf("max duration %g is below min duration %g", o.MaxDur, o.MinDur)
	}
	if o.WrapWidth < 1 {
		return fmt.Errorf("wrap width must be at least 1, got %d", o.WrapWidth)
	}
	return nil
}

// Build converts a transcript and a known track duration into a timed
// subtitle track. Each chunk's duration is proportional to its rune count,
// clamped to [MinDur, MaxDur], then the whole sequence is rescaled uniformly
// so the last cue ends exactly at durationSec. The rescale may push single
// cues outside the clamp window; total-duration fidelity wins.
func Build(text string, durationSec float64, opts Options) (*Subtitle, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	text = segment.Normalize(text)
	sentences := segment.SplitSentences(text)

	totalChars := lo.SumBy(sentences, utf8.RuneCountInString)
	if totalChars < 1 {
		totalChars = 1
	}
	secPerChar := durationSec / float64(totalChars)

	chunks := segment.GroupChunks(sentences, opts.TargetChars, opts.MaxChars)

	entries := make([]Entry, 0, len(chunks))
	cursor := 0.0
	for i, chunk := range chunks {
		dur := float64(utf8.RuneCountInString(chunk)) * secPerChar
		if dur < opts.MinDur {
			dur = opts.MinDur
		}
		if dur > opts.MaxDur {
			dur = opts.MaxDur
		}
		entries = append(entries, Entry{
			Index: i + 1,
			Start: cursor,
			End:   cursor + dur,
			Text:  chunk,
		})
		cursor = entries[i].End
	}

	rescale(entries, durationSec)

	return &Subtitle{Entries: entries}, nil
}

// rescale stretches or shrinks every cue by a uniform ratio so the track
// spans exactly [0, durationSec]. Skipped when durationSec is not positive:
// collapsing every cue to a zero-length window would be strictly worse than
// keeping the clamped allocation.
func rescale(entries []Entry, durationSec float64) {
	if len(entries) == 0 || durationSec <= 0 {
		return
	}
	finalEnd := entries[len(entries)-1].End
	if finalEnd <= 0 || finalEnd == durationSec {
		return
	}
	ratio := durationSec / finalEnd
	for i := range entries {
		entries[i].Start *= ratio
		entries[i].End *= ratio
	}
}
