package tui

import (
	"strings"

	"github.com/akyairhashvil/tdelta/internal/config"
	"github.com/akyairhashvil/tdelta/internal/countdown"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MainModel is the countdown screen. It owns the target moment, the latest
// snapshot and the single live tick chain.
type MainModel struct {
	clock     countdown.Clock
	input     textinput.Model
	target    string
	snapshot  countdown.Snapshot
	tag       int
	ticking   bool
	themeName string
	theme     Theme
	keys      *HandlerRegistry
	loggedErr string
	version   string
	width     int
	height    int
	quitting  bool
}

type Option func(*modelOptions)

type modelOptions struct {
	clock     countdown.Clock
	target    *string
	themeName string
	version   string
}

func WithClock(c countdown.Clock) Option {
	return func(o *modelOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithTarget sets the initial target. An empty string starts in the
// awaiting-input state; without this option the target is tomorrow 09:00.
func WithTarget(target string) Option {
	return func(o *modelOptions) { o.target = &target }
}

func WithTheme(name string) Option {
	return func(o *modelOptions) { o.themeName = name }
}

// WithVersion sets the version shown in the footer. Default: VersionLabel().
func WithVersion(version string) Option {
	return func(o *modelOptions) { o.version = version }
}

func NewMainModel(opts ...Option) MainModel {
	o := modelOptions{clock: countdown.RealClock{}, themeName: "default", version: VersionLabel()}
	for _, opt := range opts {
		opt(&o)
	}

	now := o.clock.Now()
	target := countdown.DefaultTarget(now)
	if o.target != nil {
		target = *o.target
	}
	if !HasTheme(o.themeName) {
		o.themeName = "default"
	}

	ti := textinput.New()
	ti.Placeholder = targetPlaceholder()
	ti.CharLimit = config.MaxTargetLength
	ti.Width = config.InputWidth
	ti.Prompt = ""
	ti.SetValue(target)
	ti.Focus()

	return MainModel{
		clock:     o.clock,
		input:     ti,
		target:    target,
		snapshot:  countdown.Evaluate(target, now),
		ticking:   hasTarget(target),
		themeName: o.themeName,
		theme:     ResolveTheme(o.themeName),
		keys:      defaultKeyRegistry(),
		version:   o.version,
	}
}

func (m MainModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.ticking {
		cmds = append(cmds, tickCmd(m.tag))
	}
	return tea.Batch(cmds...)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateInput(msg)
}

// Target returns the live target moment.
func (m MainModel) Target() string { return m.target }

// Snapshot returns the most recent tick result.
func (m MainModel) Snapshot() countdown.Snapshot { return m.snapshot }

func hasTarget(target string) bool {
	return strings.TrimSpace(target) != ""
}
