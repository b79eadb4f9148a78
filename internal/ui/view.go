package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/devclass/internal/state"
)

// renderMain renders the header, breakpoint table, configured panels and footer.
func (m Model) renderMain() string {
	snap := m.store.Snapshot()
	styles := m.theme.Styles()

	sections := []string{
		m.renderHeader(snap),
		"",
		renderRangeTable(m.det, snap.Width, styles),
		"",
		m.renderQueries(snap),
		"",
		m.renderPanels(snap),
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	bodyHeight := m.height - 1
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

func (m Model) renderHeader(snap state.Snapshot) string {
	styles := m.theme.Styles()

	split := styles.SuccessText.Render("DESKTOP")
	if snap.Mobile {
		split = styles.WarningText.Render("MOBILE")
	}

	parts := []string{
		styles.AccentText.Bold(true).Render("devclass"),
		styles.DeviceBadge(snap.Type).Render(strings.ToUpper(snap.Class())),
		styles.Text.Render(fmt.Sprintf("%dpx", snap.Width)),
		styles.MutedText.Render(fmt.Sprintf("%d cols × %dpx", snap.Columns, m.config.CellWidth)),
		styles.MutedText.Render("breaker") + " " + styles.Text.Render(snap.Breaker.String()),
		split,
	}
	if m.override != 0 {
		parts = append(parts, styles.FaintText.Render("(override)"))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) renderQueries(snap state.Snapshot) string {
	styles := m.theme.Styles()
	lines := queryLines(m.det, snap.Width)

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Queries"))
	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Width(24).Render(line.label))
		if line.value {
			b.WriteString(styles.SuccessText.Render("true"))
		} else {
			b.WriteString(styles.FaintText.Render("false"))
		}
	}
	return b.String()
}

func (m Model) renderPanels(snap state.Snapshot) string {
	styles := m.theme.Styles()

	var shown []string
	var hidden []string
	var failed []string
	for _, panel := range m.config.Panels {
		title := styles.AccentText.Bold(true).Render(panel.Name)
		text := panel.Text
		if text == "" {
			text = panel.Directive.String()
		}
		box := styles.Panel.Render(title + "\n" + styles.Text.Render(text))

		content, err := m.det.Apply(panel.Directive, snap.Width, box)
		switch {
		case err != nil:
			failed = append(failed, fmt.Sprintf("%s: %v", panel.Name, err))
		case content == "":
			hidden = append(hidden, fmt.Sprintf("%s (%s)", panel.Name, panel.Directive))
		default:
			shown = append(shown, content)
		}
	}

	var out []string
	if len(shown) > 0 {
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, shown...))
	}
	if len(hidden) > 0 {
		out = append(out, styles.FaintText.Render("hidden: "+strings.Join(hidden, ", ")))
	}
	for _, f := range failed {
		out = append(out, styles.DangerText.Render(f))
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.status != "" {
		return styles.Status.Width(m.width).Render(truncate(m.status, m.width-2))
	}
	text := "b breaker · B reset · T theme · ? help · q quit"
	return styles.Footer.Width(m.width).Render(truncate(text, m.width-2))
}

func truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}
