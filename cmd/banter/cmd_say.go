package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"banter/internal/config"
	"banter/internal/score"
	"banter/internal/taunt"
)

var (
	sayEvent     string
	sayScore     int
	sayPrevScore int
	sayCorpus    string
)

var sayCmd = &cobra.Command{
	Use:   "say",
	Short: "Emit one commentary line for a single game-state event",
	Long: `Runs the full pipeline once: speak gate, category classification from
the score delta, rudeness filtering, random selection.

Example:
  banter say --event balance --score 45 --prev-score 0`,
	RunE: runSay,
}

func init() {
	sayCmd.Flags().StringVar(&sayEvent, "event", "general",
		"event type (general, capture, winning, advantage, balance, disadvantage, losing, crushing)")
	sayCmd.Flags().IntVar(&sayScore, "score", 0, "current evaluation score")
	sayCmd.Flags().IntVar(&sayPrevScore, "prev-score", 0, "previous evaluation score")
	sayCmd.Flags().StringVar(&sayCorpus, "corpus", "", "corpus file (overrides config)")
}

// eventFlags maps the CLI event vocabulary to categories. Only the event
// classes the game loop raises are accepted; escalated categories like
// USER_BLUNDER are derived, not raised.
var eventFlags = map[string]taunt.Category{
	"general":      taunt.CategoryGeneral,
	"capture":      taunt.CategoryCapture,
	"winning":      taunt.CategoryWinning,
	"advantage":    taunt.CategoryAdvantage,
	"balance":      taunt.CategoryBalance,
	"disadvantage": taunt.CategoryDisadvantage,
	"losing":       taunt.CategoryLosing,
	"crushing":     taunt.CategoryCrushing,
}

func runSay(cmd *cobra.Command, args []string) error {
	event, ok := eventFlags[sayEvent]
	if !ok {
		return fmt.Errorf("unknown event %q", sayEvent)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if sayCorpus != "" {
		cfg.Taunt.File = sayCorpus
	}

	tracker := &score.Tracker{}
	if cmd.Flags().Changed("prev-score") {
		tracker.Record(sayPrevScore)
	}
	tracker.Record(sayScore)

	speaker := taunt.NewSpeaker(taunt.NewCache(logger), cfg, tracker,
		taunt.WithLogger(logger))
	speaker.Announce(event)
	return nil
}
