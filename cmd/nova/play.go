package main

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/younwookim/nova/internal/application/game"
	"github.com/younwookim/nova/internal/application/scene/playing"
	"github.com/younwookim/nova/internal/application/session"
	"github.com/younwookim/nova/internal/infrastructure/audio"
	"github.com/younwookim/nova/internal/infrastructure/config"
	"github.com/younwookim/nova/internal/infrastructure/watch"
)

var (
	flagRecord string
	flagWatch  bool
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Open the game window.

Controls:
  A/D or Left/Right   - Move
  W or Up             - Jump
  Space               - Attack
  S or Down           - Go through an unlocked door
  Esc                 - Pause
  R/Enter             - Restart (after game over)
  F5                  - Save the recording (with --record)
  Tab                 - Show hitboxes

Examples:
  nova play
  nova play --record run.json
  nova play --assets ./cmd/nova/configs --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
		cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level when its file changes (needs --assets)")
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	loader, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var reloads <-chan string
	if flagWatch {
		w, err := startWatcher(loader)
		if err != nil {
			logger.Warn("level watching disabled", "err", err)
		} else {
			defer func() { _ = w.Close() }()
			go w.LogErrors(logger)
			reloads = w.Events
			logger.Info("watching levels", "dir", filepath.Join(loader.BasePath(), config.LevelDir))
		}
	}

	s := session.New(session.Options{
		Config:     cfg,
		Loader:     loader,
		Seed:       seed,
		StartLevel: flagLevel,
		Logger:     logger,
		Reloads:    reloads,
	})
	logger.Info("session started", "seed", seed, "level", flagLevel)

	sound := audio.NewPlayer(logger, flagMute)
	if err := sound.Init(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
	}
	defer sound.Close()
	sound.Attach(s.Bus())

	scene := playing.New(playing.Options{
		Session:    s,
		Config:     cfg,
		RecordPath: flagRecord,
		Logger:     logger,
		Debug:      flagDebug,
	})
	g := game.New(scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.TickRate)
	return g.Run("Nova", cfg.Display.Scale)
}

func startWatcher(loader *config.Loader) (*watch.Watcher, error) {
	if flagAssets == "" {
		return nil, errors.New("--watch needs --assets: embedded levels cannot change")
	}
	return watch.New(filepath.Join(loader.BasePath(), config.LevelDir))
}
