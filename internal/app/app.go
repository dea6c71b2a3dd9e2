package app

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/flip/internal/config"
	"github.com/five82/flip/internal/feed"
	"github.com/five82/flip/internal/logging"
	"github.com/five82/flip/internal/prefs"
	"github.com/five82/flip/internal/state"
	"github.com/five82/flip/internal/ui"
)

const pingTimeout = 3 * time.Second

// Options configure the flip application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/flip/prefs.toml
	PollEvery  time.Duration // zero uses poll_ms from the config
}

// Run boots the flip TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = opts.PollEvery
	}

	logger, err := logging.New(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	client, err := feed.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("init feed client: %w", err)
	}

	logger.Info("flip starting",
		"feed", client.BaseURL(),
		"poll_ms", cfg.PollInterval.Milliseconds(),
		"flip_delay_ms", cfg.FlipDelay.Milliseconds(),
		"fade_ms", cfg.FadeDuration.Milliseconds(),
	)

	// An unreachable feed is not fatal; the UI shows it in the empty region.
	pingCtx, cancelPing := context.WithTimeout(ctx, pingTimeout)
	if err := client.Ping(pingCtx); err != nil {
		logger.Warn("feed not reachable at startup", "error", err)
	}
	cancelPing()

	store := &state.Store{}

	pollCtx, cancelPoll := context.WithCancel(ctx)
	defer cancelPoll()
	poller := StartPoller(pollCtx, store, client, cfg.PollInterval, logger.Logger)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Poller:    poller,
		Config:    &cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Logger:    logger.Logger,
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
