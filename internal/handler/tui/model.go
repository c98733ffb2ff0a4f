package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"QuoteBoard/internal/domain/models"
	"QuoteBoard/internal/usecase"
	"QuoteBoard/pkg/logger"
)

// Model is the bubbletea model for the quote dashboard. It holds no view
// state of its own beyond the search input widget and terminal size; all
// dashboard state lives in the engine and is re-read on every update.
type Model struct {
	ctx    context.Context
	engine *usecase.Engine
	log    *logger.Logger

	search        textinput.Model
	width, height int
}

func New(ctx context.Context, engine *usecase.Engine, log *logger.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "symbol or name"
	ti.Prompt = "/ "
	ti.CharLimit = 32

	return Model{
		ctx:    ctx,
		engine: engine,
		log:    log,
		search: ti,
	}
}

func (m Model) Init() tea.Cmd {
	m.engine.Initialize(m.ctx)
	return tea.Batch(textinput.Blink, waitForUpdate(m.engine))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateUpdatedMsg:
		return m, waitForUpdate(m.engine)

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.engine.SetSearchTerm(m.search.Value())
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.search.Focus()
		return m, textinput.Blink

	case "esc":
		m.search.SetValue("")
		m.engine.SetSearchTerm("")
		return m, nil

	case "r", "enter":
		// enter doubles as the retry action on the error view
		if msg.String() == "enter" && !m.engine.State().Failed() {
			return m, nil
		}
		if m.engine.State().Failed() {
			m.engine.Retry(m.ctx)
		} else {
			m.engine.Refresh(m.ctx)
		}
		return m, nil

	case "1":
		m.engine.SetSortKey(models.SortSymbol)
	case "2":
		m.engine.SetSortKey(models.SortName)
	case "3":
		m.engine.SetSortKey(models.SortPrice)
	case "4":
		m.engine.SetSortKey(models.SortChange)
	case "5":
		m.engine.SetSortKey(models.SortChangePercent)
	}

	return m, nil
}
