package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/devclass/internal/detector"
	"github.com/five82/devclass/internal/state"
)

type queryLine struct {
	label string
	value bool
}

// queryLines evaluates the three classification queries at width. IsDevice
// is reported once per device type.
func queryLines(det *detector.Detector, width int) []queryLine {
	lines := []queryLine{
		{label: "isMobile", value: det.IsMobile(width)},
		{label: "isDesktop", value: det.IsDesktop(width)},
	}
	for _, bp := range det.Table().Entries() {
		ok, err := det.IsDevice(width, bp.Type)
		if err != nil {
			continue
		}
		lines = append(lines, queryLine{label: fmt.Sprintf("isDevice(%v)", bp.Type), value: ok})
	}
	return lines
}

// renderRangeTable renders one row per breakpoint, marking the row that owns
// width and the active breaker.
func renderRangeTable(det *detector.Detector, width int, styles Styles) string {
	entries := det.Table().Entries()
	breaker := det.Breaker()
	current, classified := det.Classify(width)

	rows := make([][]string, 0, len(entries))
	for _, bp := range entries {
		r, err := det.Range(bp.Type)
		if err != nil {
			continue
		}
		marker := ""
		if classified && bp.Type == current {
			marker = "●"
		}
		breakerMark := ""
		if bp.Type == breaker {
			breakerMark = "breaker"
		}
		rows = append(rows, []string{marker, bp.Type.String(), strconv.Itoa(bp.MinWidth), r.String(), breakerMark})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.FaintText).
		Headers("", "TYPE", "MIN WIDTH", "RANGE", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Inherit(styles.MutedText).Bold(true)
			}
			if row >= 0 && row < len(entries) && classified && entries[row].Type == current {
				return base.Inherit(styles.SuccessText)
			}
			return base.Inherit(styles.Text)
		}).
		String()
}

// Report writes a one-shot classification of width to w.
func Report(w io.Writer, det *detector.Detector, width int) error {
	styles := GetTheme("").Styles()
	m := state.Measure(det, 0, width)

	split := "desktop"
	if m.Mobile {
		split = "mobile"
	}

	out := fmt.Sprintf("width %dpx: %s (%s, breaker %v)\n\n",
		m.Width, m.Class(), split, m.Breaker)
	out += renderRangeTable(det, width, styles) + "\n\n"
	for _, line := range queryLines(det, width) {
		out += fmt.Sprintf("%-20s %v\n", line.label, line.value)
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
