package tui

import (
	"fmt"

	"github.com/akyairhashvil/tdelta/internal/countdown"
	"github.com/akyairhashvil/tdelta/internal/models"
	"github.com/akyairhashvil/tdelta/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (MainModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	return m, nil
}

func (m MainModel) handleTick(msg TickMsg) (MainModel, tea.Cmd) {
	if msg.Tag != m.tag || !m.ticking {
		return m, nil
	}
	m.snapshot = countdown.Evaluate(m.target, m.clock.Now())
	m.logSnapshotError()
	return m, tickCmd(m.tag)
}

func (m MainModel) handleKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
		return next, cmd
	}
	return m.updateInput(msg)
}

// updateInput forwards msg to the target input and retargets when the value
// changed, whether by typing or by a paste arriving as its own message.
func (m MainModel) updateInput(msg tea.Msg) (MainModel, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.target {
		var tick tea.Cmd
		m, tick = m.setTarget(v)
		return m, tea.Batch(cmd, tick)
	}
	return m, cmd
}

// setTarget replaces the target and retires the current tick chain. A new
// chain is started unless the target is empty. The display is refreshed by
// the next tick rather than immediately.
func (m MainModel) setTarget(target string) (MainModel, tea.Cmd) {
	m.target = target
	m.tag++
	m.ticking = hasTarget(target)
	if !m.ticking {
		m.snapshot = countdown.Snapshot{Target: target, Mode: models.ModeAwaitingInput}
		return m, nil
	}
	return m, tickCmd(m.tag)
}

// logSnapshotError logs a parse failure once per target.
func (m *MainModel) logSnapshotError() {
	if m.snapshot.Err == nil {
		m.loggedErr = ""
		return
	}
	if m.loggedErr == m.target {
		return
	}
	m.loggedErr = m.target
	util.LogError(fmt.Sprintf("evaluate target %q", m.target), m.snapshot.Err)
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.quitting = true
	m.ticking = false
	m.tag++
	return m, tea.Quit, true
}

func handleResetTarget(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	target := countdown.DefaultTarget(m.clock.Now())
	m.input.SetValue(target)
	m.input.CursorEnd()
	next, cmd := m.setTarget(target)
	return next, cmd, true
}

func handleCycleTheme(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.themeName = nextThemeName(m.themeName)
	m.theme = ResolveTheme(m.themeName)
	return m, nil, true
}
