package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/ctlbox/internal/plant"
	"github.com/san-kum/ctlbox/internal/signal"
)

func emptyChain() (*plant.Chain, error) {
	return plant.NewChain(), nil
}

func lagChain() (*plant.Chain, error) {
	p, err := plant.NewPT1(1.0, 1.0)
	if err != nil {
		return nil, err
	}
	return plant.NewChain(p), nil
}

func TestModel_TickAdvances(t *testing.T) {
	m := NewModel(signal.NewStep(1.0, 0.0), emptyChain, 0.01, 1.0)

	nm, cmd := m.Update(tickMsg(time.Now()))
	m = nm.(Model)

	if len(m.output) == 0 {
		t.Fatal("expected samples after tick")
	}
	if m.t <= 0 {
		t.Error("time should have advanced")
	}
	if cmd == nil {
		t.Error("expected follow-up tick command")
	}
}

func TestModel_FinishesAtDuration(t *testing.T) {
	m := NewModel(signal.NewStep(1.0, 0.0), emptyChain, 0.1, 0.2)

	for i := 0; i < 10 && !m.done; i++ {
		nm, _ := m.Update(tickMsg(time.Now()))
		m = nm.(Model)
	}
	if !m.done {
		t.Error("model should finish once t reaches duration")
	}
}

func TestModel_PauseAndQuit(t *testing.T) {
	m := NewModel(signal.NewStep(1.0, 0.0), emptyChain, 0.01, 1.0)

	nm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	m = nm.(Model)
	if !m.paused {
		t.Error("space should pause")
	}

	nm, _ = m.Update(tickMsg(time.Now()))
	m = nm.(Model)
	if len(m.output) != 0 {
		t.Error("paused model should not advance")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestModel_RestartResetsChainState(t *testing.T) {
	// A restarted run must reproduce the original trajectory; the lag
	// element may not carry state across the restart.
	m := NewModel(signal.NewStep(1.0, 0.0), lagChain, 0.01, 10.0)

	nm, _ := m.Update(tickMsg(time.Now()))
	m = nm.(Model)
	if len(m.output) == 0 {
		t.Fatal("expected samples after tick")
	}
	first := append([]float64(nil), m.output...)

	nm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = nm.(Model)
	if m.t != 0 || len(m.output) != 0 {
		t.Fatal("restart should clear time and history")
	}

	nm, _ = m.Update(tickMsg(time.Now()))
	m = nm.(Model)
	if len(m.output) != len(first) {
		t.Fatalf("expected %d samples after restart, got %d", len(first), len(m.output))
	}
	for i := range first {
		if m.output[i] != first[i] {
			t.Fatalf("sample %d differs after restart: %v vs %v", i, m.output[i], first[i])
		}
	}
}

func TestWindow(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}
	if got := window(data, 3); len(got) != 3 || got[0] != 3 {
		t.Errorf("window = %v, want last 3 samples", got)
	}
	if got := window(data, 10); len(got) != 5 {
		t.Errorf("window should return all data when short, got %v", got)
	}
}
