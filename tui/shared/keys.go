package shared

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	ToggleSection   key.Binding
	JumpSection     key.Binding
	Generate        key.Binding
	Refine          key.Binding
	NewRequirements key.Binding
	CopyExport      key.Binding
	WriteExport     key.Binding
	OpenExport      key.Binding
	TogglePreview   key.Binding
	FocusLeft       key.Binding
	FocusRight      key.Binding
	Help            key.Binding
	Quit            key.Binding
	Escape          key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	ToggleSection: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "toggle section"),
	),
	JumpSection: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6"),
		key.WithHelp("1-6", "toggle section directly"),
	),
	Generate: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("C-g", "generate specification"),
	),
	Refine: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refine"),
	),
	NewRequirements: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new requirements"),
	),
	CopyExport: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy to clipboard"),
	),
	WriteExport: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "write export file"),
	),
	OpenExport: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "open export in editor"),
	),
	TogglePreview: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "toggle raw preview"),
	),
	FocusLeft: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("C-h", "focus left"),
	),
	FocusRight: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("C-l", "focus right"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ToggleSection, k.Refine, k.CopyExport, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleSection, k.JumpSection},
		{k.Generate, k.Refine, k.NewRequirements},
		{k.CopyExport, k.WriteExport, k.OpenExport},
		{k.TogglePreview, k.FocusLeft, k.FocusRight},
		{k.Help, k.Quit, k.Escape},
	}
}
