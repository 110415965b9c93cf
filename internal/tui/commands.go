package tui

import (
	"time"

	"github.com/akyairhashvil/tdelta/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the tag of the tick chain that produced it. Ticks from a
// chain that has since been replaced are dropped.
type TickMsg struct {
	Time time.Time
	Tag  int
}

func tickCmd(tag int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg{Time: t, Tag: tag} })
}
