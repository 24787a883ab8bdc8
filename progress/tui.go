// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progress

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cpmech/florymcmp/mcmp"
)

var (
	labelStyle = lipgloss.NewStyle().Width(20).Foreground(lipgloss.Color("245"))
)

type tuiModel struct {
	tolerance  float64
	incomp     progress.Model
	omegaDiff  progress.Model
	jsDiff     progress.Model
	lastSteps  int
	lastValues [3]float64
}

func newTUIModel(tolerance float64) tuiModel {
	return tuiModel{
		tolerance: tolerance,
		incomp:    progress.New(progress.WithDefaultGradient()),
		omegaDiff: progress.New(progress.WithDefaultGradient()),
		jsDiff:    progress.New(progress.WithDefaultGradient()),
	}
}

func (m tuiModel) Init() tea.Cmd { return nil }

type updateMsg struct {
	steps int
	r     mcmp.Residuals
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		m.lastSteps = msg.steps
		m.lastValues = [3]float64{
			barValue(msg.r.MaxAbsIncomp, m.tolerance),
			barValue(msg.r.MaxAbsOmegaDiff, m.tolerance),
			barValue(msg.r.MaxAbsJsDiff, m.tolerance),
		}
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m tuiModel) View() string {
	return fmt.Sprintf(
		"step %d\n%s %s\n%s %s\n%s %s\n",
		m.lastSteps,
		labelStyle.Render("Incompressibility"), m.incomp.ViewAs(m.lastValues[0]),
		labelStyle.Render("Field Error"), m.omegaDiff.ViewAs(m.lastValues[1]),
		labelStyle.Render("Volume Error"), m.jsDiff.ViewAs(m.lastValues[2]),
	)
}

// tui is a Reporter backed by a bubbletea program rendering three
// bubbles/progress bars, the Go-native analogue of the original Python's
// triple tqdm bars (Incompressibility, Field Error, Volume Error).
type tui struct {
	program *tea.Program
}

func newTUI(tolerance float64) *tui {
	p := tea.NewProgram(newTUIModel(tolerance), tea.WithOutput(os.Stdout))
	go func() {
		_, _ = p.Run()
	}()
	return &tui{program: p}
}

func (t *tui) Update(steps int, r mcmp.Residuals) {
	t.program.Send(updateMsg{steps: steps, r: r})
}

func (t *tui) Close() {
	t.program.Quit()
}
