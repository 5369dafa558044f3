package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/domain/reading"
	"github.com/tesso57/headlines/internal/presentation/tui/intent"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
	"github.com/tesso57/headlines/internal/presentation/tui/theme"
	"github.com/tesso57/headlines/internal/presentation/tui/view"
	"go.uber.org/zap"
)

// Populator produces the entries of one reading session.
type Populator interface {
	Populate(ctx context.Context, q reading.Query) ([]reading.Entry, error)
}

// Model represents the main application state.
type Model struct {
	theme       theme.Theme
	state       *state.ModelState
	logger      *zap.Logger
	openBrowser func(string) error
}

// NewModel creates a model with an empty article list.
func NewModel(cfg settings.Settings, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{
		theme:       theme.FromConfig(cfg.Theme),
		state:       newModelState(cfg),
		logger:      logger,
		openBrowser: openBrowser,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	return &state.ModelState{
		List: reading.NewArticleList(),
		Keys: state.NewKeyMap(cfg.KeyMap),
		Help: help.New(),
	}
}

// Populate fills the list with one resolved batch.
// It runs before the program starts; a failure leaves the list untouched.
func (m *Model) Populate(ctx context.Context, p Populator, q reading.Query) error {
	entries, err := p.Populate(ctx, q)
	if err != nil {
		return err
	}
	m.state.List.ReplaceAll(entries)
	return nil
}

// ShouldExit reports whether the quit key has been pressed.
func (m *Model) ShouldExit() bool {
	return m.state.ShouldExit
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.state.ShouldExit {
		return nil
	}
	list := m.state.List
	switch intent.FromKeyMsg(msg, m.state.Keys).Type {
	case intent.Quit:
		m.state.ShouldExit = true
		return tea.Quit
	case intent.Unselect:
		list.SelectNone()
	case intent.Next:
		list.SelectNext()
	case intent.Previous:
		list.SelectPrevious()
	case intent.First:
		list.SelectFirst()
	case intent.Last:
		list.SelectLast()
	case intent.Toggle:
		list.ToggleSelectedStatus()
	case intent.Open:
		m.openSelected()
	}
	return nil
}

func (m *Model) openSelected() {
	item, ok := m.state.List.SelectedItem()
	if !ok || item.Link == "" {
		return
	}
	if err := m.openBrowser(item.Link); err != nil {
		m.logger.Warn("open article in browser", zap.String("url", item.Link), zap.Error(err))
	}
}

// View renders the application view.
func (m *Model) View() string {
	if m.state.ShouldExit {
		return ""
	}
	return view.Render(m.buildProps())
}
