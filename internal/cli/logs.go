package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/five82/flip/internal/config"
	"github.com/five82/flip/internal/logtail"
)

var (
	colorDebug = color.New(color.FgWhite, color.Faint)
	colorInfo  = color.New(color.FgCyan)
	colorWarn  = color.New(color.FgYellow, color.Bold)
	colorError = color.New(color.FgRed, color.Bold)
)

func (a *App) logsCmd() *cobra.Command {
	var lines int
	var level string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the end of flip's log file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				color.NoColor = true
			}

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			path := cfg.LogPath()
			raw, err := logtail.Read(path, lines)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			if len(raw) == 0 {
				fmt.Fprintf(a.out, "No log entries in %s\n", path)
				return nil
			}
			for _, e := range logtail.ParseLines(raw) {
				if e.AtLeast(level) {
					printEntry(a.out, e)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to read from the end (0 reads all)")
	cmd.Flags().StringVar(&level, "level", "debug", "Minimum level to show")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func printEntry(w io.Writer, e logtail.Entry) {
	if e.Message == "" && e.Level == "" {
		fmt.Fprintln(w, e.Raw)
		return
	}

	ts := ""
	if !e.Time.IsZero() {
		ts = colorMuted.Sprint(e.Time.Local().Format(time.TimeOnly)) + " "
	}

	var lvl *color.Color
	switch strings.ToUpper(e.Level) {
	case "ERROR":
		lvl = colorError
	case "WARN":
		lvl = colorWarn
	case "INFO":
		lvl = colorInfo
	default:
		lvl = colorDebug
	}

	var attrs strings.Builder
	for _, attr := range e.Attrs {
		attrs.WriteString(" ")
		attrs.WriteString(colorMuted.Sprint(attr.Key + "="))
		attrs.WriteString(attr.Value)
	}
	fmt.Fprintf(w, "%s%s %s%s\n", ts, lvl.Sprintf("%-5s", strings.ToUpper(e.Level)), e.Message, attrs.String())
}
