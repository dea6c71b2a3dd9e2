// Package config loads flip's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/flip/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. Apply FLIP_* environment overrides
//  6. Validate the result
//
// # Default Values
//
//   - Config file: ~/.config/flip/config.toml
//   - Feed endpoint: 127.0.0.1:7487
//   - Log directory: ~/.local/share/flip/logs
//   - Log level: info
//   - Poll interval: 2000 ms
//   - Flip delay: 250 ms
//   - Fade duration: 250 ms
//
// # TOML Format
//
//	api_bind = "127.0.0.1:7487"
//	log_dir = "~/.local/share/flip/logs"
//	log_level = "info"
//	poll_ms = 2000
//	flip_delay_ms = 250
//	fade_ms = 250
//
// Durations are integer milliseconds. An explicit zero is kept, so
// flip_delay_ms = 0 turns delayed flips into immediate ones.
//
// # Environment Overrides
//
//   - FLIP_API_BIND: feed endpoint
//   - FLIP_LOG_LEVEL: log level
//   - FLIP_DELAY_MS: flip delay in milliseconds
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors, malformed environment values and
// failed validation. A missing file is not an error.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//	sched := flipper.NewDelayed(owner, clk, flipper.WithDelay(cfg.FlipDelay))
package config
