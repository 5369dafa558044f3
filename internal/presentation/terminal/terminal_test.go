package terminal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type quitModel struct {
	keys []string
}

func (m *quitModel) Init() tea.Cmd { return nil }

func (m *quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		m.keys = append(m.keys, k.String())
		if k.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *quitModel) View() string { return "running" }

type panicModel struct{}

func (panicModel) Init() tea.Cmd { return nil }

func (panicModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		panic("render exploded")
	}
	return panicModel{}, nil
}

func (panicModel) View() string { return "running" }

const (
	enterAltScreen = "\x1b[?1049h"
	exitAltScreen  = "\x1b[?1049l"
)

func TestRun_PanicRestoresTerminal(t *testing.T) {
	var out bytes.Buffer

	_, err := Run(context.Background(), panicModel{},
		tea.WithInput(strings.NewReader("a")),
		tea.WithOutput(&out),
	)
	if !errors.Is(err, ErrPanic) {
		t.Fatalf("expected ErrPanic, got %v", err)
	}

	got := out.String()
	enter := strings.LastIndex(got, enterAltScreen)
	exit := strings.LastIndex(got, exitAltScreen)
	if enter < 0 {
		t.Fatalf("alt screen was never entered: %q", got)
	}
	if exit < enter {
		t.Errorf("alt screen not left after the panic: %q", got)
	}
}

func TestRun_QuitsOnKey(t *testing.T) {
	var out bytes.Buffer
	m := &quitModel{}

	final, err := Run(context.Background(), m,
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(&out),
	)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	got, ok := final.(*quitModel)
	if !ok {
		t.Fatalf("unexpected final model %T", final)
	}
	if len(got.keys) != 1 || got.keys[0] != "q" {
		t.Errorf("expected a single q press, got %v", got.keys)
	}
	if !strings.Contains(out.String(), exitAltScreen) {
		t.Errorf("alt screen not left on quit: %q", out.String())
	}
}
