// Package tui provides a live terminal view of a signal fed through an
// element chain.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ctlbox/internal/plant"
	"github.com/san-kum/ctlbox/internal/signal"
	"github.com/san-kum/ctlbox/internal/viz"
)

const frameRate = 30

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model streams signal samples through the chain at wall-clock pace and
// keeps a rolling window of input/output history for plotting. The chain
// is built through newChain so a restart starts from fresh element state.
type Model struct {
	sig      signal.Signal
	newChain func() (*plant.Chain, error)
	chain    *plant.Chain
	dt       float64
	duration float64

	t      float64
	input  []float64
	output []float64

	paused bool
	done   bool
	err    error

	width  int
	height int
}

func NewModel(sig signal.Signal, newChain func() (*plant.Chain, error), dt, duration float64) Model {
	m := Model{
		sig:      sig,
		newChain: newChain,
		dt:       dt,
		duration: duration,
		width:    80,
		height:   24,
	}
	m.chain, m.err = newChain()
	return m
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if !m.paused && !m.done {
				return m, tick()
			}
		case "r":
			m.chain, m.err = m.newChain()
			if m.err != nil {
				return m, tea.Quit
			}
			m.t = 0
			m.input = m.input[:0]
			m.output = m.output[:0]
			m.done = false
			if !m.paused {
				return m, tick()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.err != nil {
			return m, tea.Quit
		}
		if m.paused || m.done {
			return m, nil
		}
		// One wall-clock frame advances one frame of simulated time.
		steps := int(1.0 / (frameRate * m.dt))
		if steps < 1 {
			steps = 1
		}
		for i := 0; i < steps && m.t < m.duration; i++ {
			u := m.sig.ValueAt(m.t)
			y, err := m.chain.Step(u, m.dt)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.input = append(m.input, u)
			m.output = append(m.output, y)
			m.t += m.dt
		}
		if m.t >= m.duration {
			m.done = true
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	plotWidth := m.width - 12
	if plotWidth < 20 {
		plotWidth = 20
	}
	plotHeight := m.height - 8
	if plotHeight < 5 {
		plotHeight = 5
	}

	in, out := window(m.input, plotWidth), window(m.output, plotWidth)

	status := "running"
	switch {
	case m.done:
		status = "done"
	case m.paused:
		status = "paused"
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		viz.Title.Render("ctlbox live"),
		viz.Subtle.Render(fmt.Sprintf("  t=%.2fs/%.0fs  ", m.t, m.duration)),
		viz.Value.Render(status),
	)

	var plot string
	if len(out) > 1 {
		plot = viz.TracePair(in, out, "input (gray) / output", plotWidth, plotHeight)
	} else {
		plot = viz.Subtle.Render("waiting for samples...")
	}

	footer := viz.KeyHint.Render("space pause · r restart · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		viz.Panel.Render(plot),
		footer,
	) + "\n"
}

// window keeps the most recent n samples.
func window(data []float64, n int) []float64 {
	if len(data) <= n {
		return data
	}
	return data[len(data)-n:]
}

// Run blocks until the viewer exits.
func Run(sig signal.Signal, newChain func() (*plant.Chain, error), dt, duration float64) error {
	p := tea.NewProgram(NewModel(sig, newChain, dt, duration))
	_, err := p.Run()
	return err
}
