// Package app provides the orchestration layer for the flip application.
//
// # Overview
//
// This package wires together configuration, logging, polling, state
// management and the UI. It is the composition root where all dependencies
// are initialized and connected.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Read ~/.config/flip/config.toml
//	       ├─────> logging.New()     JSON log file under log_dir
//	       ├─────> prefs.Load()      Theme and animation preference
//	       ├─────> feed.NewClient()  HTTP client for the item feed
//	       ├─────> client.Ping()     Startup check, logged only
//	       ├─────> StartPoller()     Launch background updates
//	       └─────> ui.Run()          Start TUI (blocks)
//
//	Background Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│  ├─> store.BeginFetch()                 │
//	│  ├─> FetchItems()                       │
//	│  └─> store.Update()                     │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// The poller fetches immediately, then every poll_ms. Consecutive failures
// double the wait up to 30 seconds; the first success resets it. The UI can
// ask for an immediate fetch with Poller.Refresh.
//
// # Error Handling
//
// Configuration, logging and client setup errors are returned from Run.
// Feed errors never are: they are logged, recorded in the store and shown
// by the UI while polling continues.
//
// # Usage Example
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := app.Run(ctx, app.Options{PollEvery: time.Second}); err != nil {
//		log.Fatalf("flip failed: %v", err)
//	}
package app
