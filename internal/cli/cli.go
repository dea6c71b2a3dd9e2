// Package cli defines flip's command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/flip/internal/app"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	root *cobra.Command
	out  io.Writer

	configPath string
	prefsPath  string
	poll       time.Duration

	run func(ctx context.Context, opts app.Options) error
}

// NewApp creates the CLI. The root command runs the TUI.
func NewApp() *App {
	a := &App{out: os.Stdout, run: app.Run}

	a.root = &cobra.Command{
		Use:   "flip",
		Short: "Watch an item feed with delayed view flips",
		Long: `flip polls an HTTP item feed and shows the items in a terminal UI.

Empty and loading states only appear once they have lasted longer than the
flip delay, so fast fetches never flash a placeholder or a spinner.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), app.Options{
				ConfigPath: a.configPath,
				PrefsPath:  a.prefsPath,
				PollEvery:  a.poll,
			})
		},
	}

	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.config/flip/config.toml)")

	flags := a.root.Flags()
	flags.StringVar(&a.prefsPath, "prefs", "", "preferences file (default ~/.config/flip/prefs.toml)")
	flags.DurationVar(&a.poll, "poll", 0, "poll interval, overrides poll_ms (e.g. 500ms)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.replayCmd())
	a.root.AddCommand(a.logsCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "flip %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetOutput redirects command output, for tests.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
	a.root.SetOut(w)
	a.root.SetErr(w)
}

// SetArgs overrides the command line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// ExecuteContext runs the CLI application.
func (a *App) ExecuteContext(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}
