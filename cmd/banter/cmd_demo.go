package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"banter/internal/config"
	"banter/internal/ledger"
	"banter/internal/score"
	"banter/internal/taunt"
)

var demoLedgerPath string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Drive a scripted game trajectory through the commentary engine",
	Long: `Feeds a canned sequence of evaluation scores and events through the
speaker, with the corpus watcher running, and records every emitted line in
the commentary ledger.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoLedgerPath, "ledger", "banter.db", "commentary ledger database")
}

// demoStep is one evaluation update in the scripted game.
type demoStep struct {
	event taunt.Category
	score int
}

// A game that swings our way: balanced opening, small gains, an opponent
// blunder, then a crush.
var demoScript = []demoStep{
	{taunt.CategoryBalance, 0},
	{taunt.CategoryBalance, 10},
	{taunt.CategoryCapture, 25},
	{taunt.CategoryBalance, 70}, // +45: small-gain escape
	{taunt.CategoryAdvantage, 115},
	{taunt.CategoryAdvantage, 380}, // +265: opponent blunder
	{taunt.CategoryWinning, 450},
	{taunt.CategoryCrushing, 700},
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	book, err := ledger.Open(demoLedgerPath)
	if err != nil {
		return err
	}
	defer book.Close()

	sessionID := ledger.NewSessionID()
	logger.Info("demo session started",
		zap.String("session", sessionID),
		zap.String("corpus", cfg.Taunt.File))

	cache := taunt.NewCache(logger)
	tracker := &score.Tracker{}

	speaker := taunt.NewSpeaker(cache, cfg, tracker,
		taunt.WithLogger(logger),
		taunt.WithEmitHook(func(cat taunt.Category, text string) {
			err := book.Record(ledger.Emission{
				SessionID: sessionID,
				At:        time.Now(),
				Category:  cat.String(),
				Text:      text,
			})
			if err != nil {
				logger.Warn("ledger record failed", zap.Error(err))
			}
		}))

	watcher, err := taunt.NewWatcher(cfg.Taunt.File, cache, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := watcher.Start(ctx); err != nil {
			// A missing corpus directory is not fatal; the cache
			// already degrades to silence.
			logger.Warn("corpus watcher unavailable", zap.Error(err))
		}
		<-ctx.Done()
		watcher.Stop()
		return nil
	})

	for _, step := range demoScript {
		tracker.Record(step.score)
		fmt.Printf("eval %+d (%s)\n", step.score, step.event)
		speaker.Announce(step.event)
		time.Sleep(200 * time.Millisecond)
	}

	cancel()
	if err := g.Wait(); err != nil {
		return err
	}

	emissions, err := book.Session(sessionID)
	if err != nil {
		return err
	}
	fmt.Printf("\nsession %s: %d lines recorded in %s\n",
		sessionID, len(emissions), book.Path())
	return nil
}
