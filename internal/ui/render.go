package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	body := m.renderBody()
	if m.showHelp {
		body = m.renderHelp()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderCommandBar(),
	)
}

func (m *Model) bodyHeight() int {
	h := m.height - 2 // header + command bar
	if h < 1 {
		return 1
	}
	return h
}

// renderBody draws whichever region currently dominates the screen.
func (m *Model) renderBody() string {
	styles := m.theme.Styles()
	h := m.bodyHeight()

	r := dominant(m.content, m.empty, m.loading)
	var text string
	switch r {
	case nil:
		text = ""
	case m.content:
		text = m.list.View()
	case m.empty:
		text = m.place(h, styles.Placeholder.Render(m.emptyMessage()))
	case m.loading:
		text = m.place(h, m.spinner.View()+" "+styles.MutedText.Render("Loading items"))
	}
	if r != nil {
		text = styles.Fade(r.alpha, text)
	}
	return lipgloss.NewStyle().Width(m.width).Height(h).Render(text)
}

func (m *Model) place(h int, s string) string {
	return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, s)
}

// emptyMessage explains why there is nothing to show.
func (m *Model) emptyMessage() string {
	styles := m.theme.Styles()
	if err := m.snapshot.LastError; err != nil {
		lines := []string{
			styles.DangerText.Render("FEED " + classifyConnectionError(err)),
			styles.MutedText.Render(truncate(err.Error(), 60)),
			styles.WarningText.Render("Retrying..."),
		}
		return strings.Join(lines, "\n")
	}
	return styles.Text.Render("No items") + "\n" +
		styles.FaintText.Render("The feed is empty. Press r to refresh.")
}

// renderList fills the content viewport from the latest snapshot.
func (m *Model) renderList() {
	styles := m.theme.Styles()
	items := m.snapshot.Items
	lines := make([]string, 0, len(items))
	for _, item := range items {
		badge := styles.StatusStyle(strings.ToLower(item.Status)).Render(strings.ToUpper(item.Status))
		updated := ""
		if ts := item.ParsedUpdatedAt(); !ts.IsZero() {
			updated = styles.FaintText.Render(ts.Local().Format("15:04:05"))
		}
		titleWidth := m.width - lipgloss.Width(badge) - lipgloss.Width(updated) - 4
		title := styles.Text.Render(truncate(item.DisplayTitle(), titleWidth))
		lines = append(lines, strings.Join([]string{badge, title, updated}, "  "))
	}
	m.list.SetContent(strings.Join(lines, "\n"))
}

// renderHeader renders the status bar.
func (m *Model) renderHeader() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	parts := []string{styles.Logo.Render("flip")}

	switch {
	case snap.LastError != nil:
		label := "FEED " + classifyConnectionError(snap.LastError)
		if snap.IsOffline() {
			label += fmt.Sprintf(" (%d failures)", snap.ConsecutiveFailures)
		}
		parts = append(parts, styles.DangerText.Render(label))
	case m.loading.Visible():
		parts = append(parts, styles.WarningText.Bold(true).Render("LOADING"))
	case snap.HasItems:
		parts = append(parts, styles.SuccessText.Render(fmt.Sprintf("%d items", len(snap.Items))))
	default:
		parts = append(parts, styles.WarningText.Bold(true).Render("Connecting to feed..."))
	}

	parts = append(parts,
		styles.FaintText.Render("showing")+" "+styles.AccentText.Render(m.progress.Current().String()),
		styles.FaintText.Render("delay")+" "+styles.MutedText.Render(fmt.Sprintf("%dms", m.sched.Delay().Milliseconds())),
	)

	fade := "off"
	if m.prefs.AnimationsEnabled() {
		fade = fmt.Sprintf("%dms", m.fadeDuration.Milliseconds())
	}
	parts = append(parts, styles.FaintText.Render("fade")+" "+styles.MutedText.Render(fade))

	if !m.lastUpdated.IsZero() {
		parts = append(parts, styles.MutedText.Render(m.lastUpdated.Format("15:04:05")))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderCommandBar renders the command hints bar.
func (m *Model) renderCommandBar() string {
	styles := m.theme.Styles()

	animLabel := "Animations off"
	if m.prefs.AnimationsEnabled() {
		animLabel = "Animations on"
	}

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"r", "Refresh"},
		{"a", animLabel},
		{"+/-", "Delay"},
		{"j/k", "Scroll"},
		{"?", "More"},
		{"q", "Quit"},
	}

	colon := styles.FaintText.Render(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			styles.AccentText.Render(c.key)+colon+styles.MutedText.Render(c.desc))
	}

	// Add theme indicator
	segments = append(segments,
		styles.AccentText.Render("T")+colon+styles.FaintText.Render(m.theme.Name))

	return styles.Header.Width(m.width).Render(strings.Join(segments, "  "))
}

// renderHelp renders the full key help in place of the body.
func (m *Model) renderHelp() string {
	styles := m.theme.Styles()
	title := styles.AccentText.Bold(true).Render("Keys")
	box := styles.Placeholder.Render(title + "\n\n" + m.help.FullHelpView(m.keys.FullHelp()))
	return lipgloss.NewStyle().Width(m.width).Height(m.bodyHeight()).
		Render(m.place(m.bodyHeight(), box))
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// truncate shortens a string to limit runes with an ellipsis.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
