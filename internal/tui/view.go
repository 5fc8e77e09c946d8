package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/misterclayt0n/reps/internal/models"
	"github.com/misterclayt0n/reps/internal/weight"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("189")).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")).Width(9)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("189"))
	oneRMStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginTop(1)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	plateStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("231"))
)

// plateColor shades a plate by size, heavier plates darker.
func plateColor(w float64) lipgloss.Color {
	switch {
	case w >= 45:
		return lipgloss.Color("19") // blue
	case w >= 35:
		return lipgloss.Color("28") // green
	case w >= 25:
		return lipgloss.Color("136") // yellow
	case w >= 10:
		return lipgloss.Color("208") // orange
	case w >= 5:
		return lipgloss.Color("160") // red
	case w >= 2.5:
		return lipgloss.Color("92") // purple
	}
	return lipgloss.Color("244")
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("reps · 1RM & plate calculator"))
	b.WriteString("\n")

	b.WriteString(m.field("Reps", fmt.Sprintf("%d", m.reps)))
	weightValue := fmt.Sprintf("%.2f %s", m.weight, m.unit.Abbreviation())
	if m.editing {
		weightValue = m.input.View()
	}
	b.WriteString(m.field("Weight", weightValue))
	b.WriteString(m.field("Unit", m.unit.String()))
	b.WriteString(m.field("Formula", formulaLabel(formulaChoices[m.formulaIdx])))

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n")
	} else if m.result != nil {
		unit := m.result.Unit.Abbreviation()
		b.WriteString(renderPlates(m.result.PlatesForWeight, m.result.Unit))
		b.WriteString(oneRMStyle.Render(fmt.Sprintf("1RM: %.2f %s (%s)", m.result.OneRM, unit, m.result.Formula)))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("range %.2f – %.2f %s",
			m.result.Min.Value, m.result.Max.Value, unit)))
		b.WriteString("\n")
		b.WriteString(renderPlates(m.result.PlatesForOneRM, m.result.Unit))
	}

	b.WriteString("\n" + m.helpLine() + "\n")
	return b.String()
}

func (m *Model) field(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value)) + "\n"
}

func formulaLabel(name string) string {
	if name == models.FormulaBest {
		return "Best"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func renderPlates(b models.Breakdown, unit weight.Unit) string {
	if b.BelowBar {
		return "\n" + mutedStyle.Render(fmt.Sprintf("below the %.0f %s bar", b.Bar, unit.Abbreviation())) + "\n"
	}
	if len(b.Plates) == 0 {
		return "\n" + mutedStyle.Render("bar only") + "\n"
	}

	chips := make([]string, 0, len(b.Plates))
	for _, p := range b.Plates {
		chip := plateStyle.Background(plateColor(p.Weight)).
			Render(fmt.Sprintf("%d× %g %s", p.Quantity, p.Weight, p.Unit.Abbreviation()))
		chips = append(chips, chip)
	}
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, chips...) + "\n"
}

func (m *Model) helpLine() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, k := range m.keys.help() {
		parts = append(parts, k.Help().Key+" "+k.Help().Desc)
	}
	return mutedStyle.Render(strings.Join(parts, " · "))
}
