package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/five82/flip/internal/replay"
)

// Color definitions for timeline output.
var (
	colorShow    = color.New(color.FgGreen, color.Bold)
	colorHide    = color.New(color.FgRed)
	colorStep    = color.New(color.FgCyan)
	colorSettled = color.New(color.FgYellow)
	colorLoading = color.New(color.FgMagenta)
	colorHeader  = color.New(color.Bold)
	colorMuted   = color.New(color.FgWhite, color.Faint)
)

func (a *App) replayCmd() *cobra.Command {
	var noColor bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "replay <scenario.toml>",
		Short: "Replay a flip scenario on a virtual clock",
		Long: `Replay runs a TOML scenario of timed state reports against a virtual
clock and prints every region visibility change it causes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			s, err := replay.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading scenario: %w", err)
			}
			tl, err := replay.Run(s, nil)
			if err != nil {
				return fmt.Errorf("running scenario: %w", err)
			}
			printTimeline(a.out, s, tl, quiet)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print visibility changes")
	return cmd
}

func printTimeline(w io.Writer, s replay.Scenario, tl replay.Timeline, quiet bool) {
	colorHeader.Fprintf(w, "delay %dms  fade %dms  %d steps\n\n",
		s.Delay.Milliseconds(), s.Fade.Milliseconds(), len(s.Steps))

	for _, e := range tl.Events {
		if quiet && e.Kind != replay.KindShow && e.Kind != replay.KindHide {
			continue
		}
		at := colorMuted.Sprintf("%6dms", e.At.Milliseconds())
		var line string
		switch e.Kind {
		case replay.KindShow:
			line = colorShow.Sprintf("%-8s", "show") + " " + e.Region
		case replay.KindHide:
			line = colorHide.Sprintf("%-8s", "hide") + " " + e.Region
		case replay.KindStep:
			line = colorStep.Sprintf("%-8s", "step") + " " + e.Detail
		case replay.KindSettled:
			line = colorSettled.Sprintf("%-8s", "settled") + " " + e.Detail
		case replay.KindLoading:
			line = colorLoading.Sprintf("%-8s", "loading") + " " + e.Detail
		}
		fmt.Fprintf(w, "%s  %s\n", at, line)
	}

	visible := strings.Join(tl.Visible, ", ")
	if visible == "" {
		visible = "nothing"
	}
	fmt.Fprintln(w)
	colorHeader.Fprintf(w, "after %dms: ", tl.Duration.Milliseconds())
	fmt.Fprintf(w, "%s visible, showing %s, loading=%t\n", visible, tl.Current, tl.Loading)
}
