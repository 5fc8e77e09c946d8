package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	RepsUp     key.Binding
	RepsDown   key.Binding
	WeightUp   key.Binding
	WeightDown key.Binding
	ToggleUnit key.Binding
	Formula    key.Binding
	Edit       key.Binding
	Commit     key.Binding
	Cancel     key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		RepsUp:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "reps +1")),
		RepsDown:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "reps -1")),
		WeightUp:   key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/+", "weight up")),
		WeightDown: key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/-", "weight down")),
		ToggleUnit: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "lbs/kg")),
		Formula:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "formula")),
		Edit:       key.NewBinding(key.WithKeys("e", "w"), key.WithHelp("e", "type weight")),
		Commit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.RepsUp, k.RepsDown, k.WeightUp, k.WeightDown, k.ToggleUnit, k.Formula, k.Edit, k.Quit}
}
