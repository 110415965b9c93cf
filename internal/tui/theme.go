package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name         string
	Base         lipgloss.Style
	Border       lipgloss.Color
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Input        lipgloss.Style
	UnitBox      lipgloss.Style
	UnitValue    lipgloss.Style
	UnitLabel    lipgloss.Style
	Finished     lipgloss.Style
	FinishedText lipgloss.Style
	Awaiting     lipgloss.Style
	AwaitingText lipgloss.Style
	Dim          lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("63"),
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true),
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("51")).Padding(0, 1),
		UnitBox:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(1, 0).Align(lipgloss.Center),
		UnitValue:    lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true),
		UnitLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Finished:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Padding(1, 4).Align(lipgloss.Center),
		FinishedText: lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Awaiting:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("220")).Padding(1, 4).Align(lipgloss.Center),
		AwaitingText: lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:         "Dracula",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("62"),                                             // Purple
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),             // Comment
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("141")).Padding(0, 1),
		UnitBox:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 0).Align(lipgloss.Center),
		UnitValue:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true), // Cyan
		UnitLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Finished:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("84")).Padding(1, 4).Align(lipgloss.Center),
		FinishedText: lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true), // Green
		Awaiting:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("215")).Padding(1, 4).Align(lipgloss.Center),
		AwaitingText: lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
	"mono": {
		Name:         "Mono",
		Base:         lipgloss.NewStyle().Margin(1, 2),
		Border:       lipgloss.Color("250"),
		Title:        lipgloss.NewStyle().Bold(true),
		Subtitle:     lipgloss.NewStyle().Faint(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		UnitBox:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 0).Align(lipgloss.Center),
		UnitValue:    lipgloss.NewStyle().Bold(true),
		UnitLabel:    lipgloss.NewStyle().Faint(true),
		Finished:     lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 4).Align(lipgloss.Center),
		FinishedText: lipgloss.NewStyle().Bold(true),
		Awaiting:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 4).Align(lipgloss.Center),
		AwaitingText: lipgloss.NewStyle().Bold(true),
		Dim:          lipgloss.NewStyle().Faint(true),
	},
}

// ThemeNames returns the registered theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func HasTheme(name string) bool {
	_, ok := Themes[name]
	return ok
}

// ResolveTheme returns the named theme, or the default one.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

func nextThemeName(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
