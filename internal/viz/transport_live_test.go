package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/qviz/internal/transport"
)

func TestTransportModelStartsAtCycleZero(t *testing.T) {
	m := NewTransportModel(transport.PathDiagonal, transport.DefaultCycle)
	view := m.View()

	if !strings.Contains(view, "handover (start)") {
		t.Errorf("fresh model not in start handover:\n%s", view)
	}
	if !strings.Contains(view, "RUNNING") {
		t.Error("fresh model not running")
	}
}

func TestTransportModelPauseStopsClock(t *testing.T) {
	m := NewTransportModel(transport.PathDiagonal, transport.DefaultCycle)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	m = next.(TransportModel)
	if m.running {
		t.Fatal("space did not pause")
	}

	before := m.elapsed
	next, _ = m.Update(TickMsg(time.Now().Add(time.Second)))
	m = next.(TransportModel)
	if m.elapsed != before {
		t.Error("elapsed advanced while paused")
	}
}

func TestTransportModelResetReturnsToZero(t *testing.T) {
	m := NewTransportModel(transport.PathSequential, transport.DefaultCycle)
	m.elapsed = 3 * time.Second

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(TransportModel)
	if m.elapsed != 0 {
		t.Errorf("reset left elapsed at %v", m.elapsed)
	}
}

func TestTransportModelPolicyToggle(t *testing.T) {
	m := NewTransportModel(transport.PathDiagonal, transport.DefaultCycle)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = next.(TransportModel)
	if m.schedule.Policy != transport.PathSequential {
		t.Error("p did not switch to sequential")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = next.(TransportModel)
	if m.schedule.Policy != transport.PathDiagonal {
		t.Error("p did not switch back to diagonal")
	}
}

func TestTransportModelQuit(t *testing.T) {
	m := NewTransportModel(transport.PathDiagonal, transport.DefaultCycle)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("q produced %T, want tea.QuitMsg", msg)
	}
}

func TestPulseModelAdjustsError(t *testing.T) {
	m := NewPulseModel(0)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	pm := next.(PulseModel)
	if pm.calErr <= 0 {
		t.Errorf("up arrow did not raise error: %v", pm.calErr)
	}

	// Clamp at the supported maximum.
	for i := 0; i < 100; i++ {
		next, _ = pm.Update(tea.KeyMsg{Type: tea.KeyUp})
		pm = next.(PulseModel)
	}
	if pm.calErr > 0.2 {
		t.Errorf("error escaped the clamp: %v", pm.calErr)
	}
}
