package tui

import (
	"strings"

	"github.com/akyairhashvil/tdelta/internal/config"
	"github.com/akyairhashvil/tdelta/internal/countdown"
	"github.com/akyairhashvil/tdelta/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}
	sections := []string{
		m.renderHeader(),
		m.theme.Input.BorderForeground(m.theme.Border).Render(m.input.View()),
	}
	if body := m.renderBody(); body != "" {
		sections = append(sections, body)
	}
	sections = append(sections, m.renderFooter())
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return m.theme.Base.Render(content)
}

// Mode is the display mode for the live target and the latest snapshot.
func (m MainModel) Mode() models.DisplayMode {
	return countdown.ResolveMode(m.target, m.snapshot.Remaining)
}

func (m MainModel) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render(TitleText),
		m.theme.Subtitle.Render(SubtitleText),
		"",
	)
}

func (m MainModel) renderBody() string {
	switch m.Mode() {
	case models.ModeCounting:
		return m.renderUnits(*m.snapshot.Remaining)
	case models.ModeFinished:
		return m.renderBanner(m.theme.Finished, m.theme.FinishedText, FinishedTitle, FinishedDetail)
	case models.ModeAwaitingInput:
		return m.renderBanner(m.theme.Awaiting, m.theme.AwaitingText, AwaitingTitle, AwaitingDetail)
	default:
		if m.snapshot.Err != nil {
			return m.theme.Dim.Render(InvalidTargetMessage)
		}
		return ""
	}
}

func (m MainModel) renderBanner(box, text lipgloss.Style, title, detail string) string {
	return box.Render(lipgloss.JoinVertical(lipgloss.Center,
		text.Render(title),
		m.theme.Subtitle.Render(detail),
	))
}

// renderUnits lays the four boxes out in one row, or two rows when the
// single row would not fit the terminal.
func (m MainModel) renderUnits(r models.RemainingTime) string {
	labels := unitLabels()
	values := unitValues(r)
	boxes := make([]string, len(values))
	for i := range values {
		boxes[i] = m.renderUnit(values[i], labels[i])
	}

	row := joinRow(boxes)
	if m.width <= 0 || blockWidth(row) <= m.width {
		return row
	}
	var rows []string
	for i := 0; i < len(boxes); i += config.UnitsPerRowCompact {
		end := i + config.UnitsPerRowCompact
		if end > len(boxes) {
			end = len(boxes)
		}
		rows = append(rows, joinRow(boxes[i:end]))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m MainModel) renderUnit(value int, label string) string {
	return m.theme.UnitBox.Width(config.UnitBoxWidth).Render(lipgloss.JoinVertical(lipgloss.Center,
		m.theme.UnitValue.Render(PadUnit(value)),
		m.theme.UnitLabel.Render(strings.ToUpper(label)),
	))
}

func (m MainModel) renderFooter() string {
	return m.theme.Dim.Render("\n" + m.keys.Help() + "  |  " + m.theme.Name + "  |  v" + m.version)
}

func joinRow(boxes []string) string {
	gap := strings.Repeat(" ", config.UnitGap)
	parts := make([]string, 0, len(boxes)*2)
	for i, b := range boxes {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// blockWidth is the display width of the widest line in s.
func blockWidth(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}
