package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clank/internal/archive"
	"clank/internal/choice"
	"clank/internal/config"
	"clank/internal/engine"
	"clank/internal/logger"
	"clank/internal/narrative"
	"clank/internal/story"
	"clank/internal/summary"
	"clank/internal/terminal"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const archiveTimeout = 10 * time.Second

func main() {
	// Settings from .env, the environment and flags.
	cfg, err := config.Load(flag.CommandLine, os.Args[1:], ".env")
	if err != nil {
		config.Exitf("Error loading configuration: %v", err)
	}

	baseLog, err := logger.New(cfg)
	if err != nil {
		config.Exitf("Failed to create logger: %v", err)
	}
	defer baseLog.Sync()

	playthrough := uuid.New()
	log := baseLog.With(zap.String("playthrough", playthrough.String()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	palette := terminal.Plain()
	switch cfg.Color {
	case config.ColorAlways:
		palette = terminal.ANSI()
	case config.ColorAuto:
		palette = terminal.Detect(os.Stdout)
	}
	printer := terminal.NewPrinter(os.Stdout, terminal.Options{
		Palette:    palette,
		CharDelay:  cfg.CharDelay,
		LinePause:  cfg.LinePause,
		ScenePause: cfg.ScenePause,
	})
	prompter := choice.NewPrompter(choice.NewLineReader(os.Stdin), printer, log)
	game := engine.New(story.Clank(), printer, prompter, log)

	state, err := game.Play(ctx)
	// Restore default signal handling so a second Ctrl-C ends the process.
	stop()
	if errors.Is(err, choice.ErrInterrupted) {
		printer.Interrupted()
		log.Info("game interrupted by player", zap.Error(err))
		return
	}
	if err != nil {
		log.Error("game aborted", zap.Error(err))
		baseLog.Sync()
		config.Exitf("Error: %v", err)
	}

	if cfg.ArchiveEnabled() {
		actx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
		defer cancel()
		archivePlaythrough(actx, cfg, log, playthrough, state)
	}
}

// archivePlaythrough stores the final report. Failures are logged only; the
// story has already finished.
func archivePlaythrough(ctx context.Context, cfg config.Config, log *zap.Logger, id uuid.UUID, state *narrative.State) {
	store, err := archive.NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey, cfg.ArchiveTable, log)
	if err != nil {
		log.Warn("archive unavailable", zap.Error(err))
		return
	}
	if _, err := store.Record(ctx, id, summary.Build(state)); err != nil {
		log.Warn("failed to archive playthrough", zap.Error(err))
	}
}
