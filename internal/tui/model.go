// Package tui is the interactive calculator: reps, weight, unit and formula are edited
// with the keyboard and the 1RM and plate loading are recomputed after every change.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/misterclayt0n/reps/internal/estimate"
	"github.com/misterclayt0n/reps/internal/logging"
	"github.com/misterclayt0n/reps/internal/models"
	"github.com/misterclayt0n/reps/internal/utils"
	"github.com/misterclayt0n/reps/internal/weight"
)

// formulaChoices is the cycle order of the formula selector.
var formulaChoices = []string{models.FormulaBest, "epley", "brzycki", "mcglothin", "kelley"}

type Model struct {
	ctx context.Context

	weight     float64
	reps       int
	unit       weight.Unit
	formulaIdx int

	editing bool
	input   textinput.Model

	result *models.Estimate
	err    error

	keys     keyMap
	quitting bool
	width    int
}

// New builds the model and computes the first result.
func New(ctx context.Context, w weight.Weight, reps int, formula string) *Model {
	ti := textinput.New()
	ti.Placeholder = "weight"
	ti.CharLimit = 8
	ti.Width = 10

	m := &Model{
		ctx:    ctx,
		weight: w.Value(),
		reps:   utils.ClampReps(reps),
		unit:   w.Unit(),
		input:  ti,
		keys:   defaultKeyMap(),
		width:  60,
	}

	formula = strings.ToLower(strings.TrimSpace(formula))
	for i, f := range formulaChoices {
		if f == formula || (formula == "brzychi" && f == "brzycki") {
			m.formulaIdx = i
		}
	}

	m.recompute()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inc := utils.WeightIncrement(m.unit)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.RepsUp):
		m.reps = utils.ClampReps(m.reps + 1)
	case key.Matches(msg, m.keys.RepsDown):
		m.reps = utils.ClampReps(m.reps - 1)
	case key.Matches(msg, m.keys.WeightUp):
		m.weight = utils.ClampWeight(m.weight + inc)
	case key.Matches(msg, m.keys.WeightDown):
		m.weight = utils.ClampWeight(m.weight - inc)
	case key.Matches(msg, m.keys.ToggleUnit):
		m.toggleUnit()
	case key.Matches(msg, m.keys.Formula):
		m.formulaIdx = (m.formulaIdx + 1) % len(formulaChoices)
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		m.input.SetValue("")
		return m, m.input.Focus()
	default:
		return m, nil
	}

	m.recompute()
	return m, nil
}

func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Commit):
		m.weight = utils.ClampWeight(utils.ParseNumber(m.input.Value()))
		m.stopEditing()
		m.recompute()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.stopEditing()
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

// toggleUnit converts the current weight and snaps it to the new unit's increment, so
// the weight stays loadable after switching.
func (m *Model) toggleUnit() {
	w, err := weight.New(m.weight, m.unit)
	if err != nil {
		return
	}

	if m.unit == weight.Pounds {
		w = w.ToKilograms()
	} else {
		w = w.ToPounds()
	}

	m.unit = w.Unit()
	m.weight = utils.RoundToIncrement(w.Value(), utils.WeightIncrement(m.unit))
}

func (m *Model) recompute() {
	in := models.Input{
		Weight:  m.weight,
		Unit:    m.unit,
		Reps:    m.reps,
		Formula: formulaChoices[m.formulaIdx],
	}

	m.result, m.err = estimate.Compute(m.ctx, in)
	if m.err != nil {
		logging.FromContext(m.ctx).Debug().Err(m.err).Msg("recompute failed")
	}
}

// Result returns the latest computed estimate, nil after an error.
func (m *Model) Result() *models.Estimate {
	return m.result
}
