// Package tui provides the interactive stepping mode: the current file and
// the live file list on screen, one keypress to save-and-advance.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"filestep/internal/sequence"
	"filestep/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Advance key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Advance, k.Quit}}
}

var keys = keyMap{
	Advance: key.NewBinding(
		key.WithKeys("enter", " ", "n"),
		key.WithHelp("enter", "save & next"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the bubbletea model for one stepping session.
type Model struct {
	engine  *sequence.Engine
	session *types.Session

	files    []string
	status   string
	errText  string
	finished bool

	keys keyMap
	help help.Model
}

// NewModel builds the stepping model over an already started session.
func NewModel(engine *sequence.Engine, session *types.Session) Model {
	m := Model{
		engine:  engine,
		session: session,
		status:  fmt.Sprintf("Sequencing files of type %s in %s", session.Filter, session.Directory),
		keys:    keys,
		help:    help.New(),
	}
	m.reload()
	return m
}

// reload refreshes the on-screen file list from disk. The list is cosmetic;
// the engine does its own relist when it advances.
func (m *Model) reload() {
	files, err := m.engine.ListMatching(m.session.Directory, m.session.Filter)
	if err != nil {
		m.errText = err.Error()
		return
	}
	m.files = files
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if !m.finished {
				// Leaving mid-sequence cancels the session.
				_ = m.engine.Cancel()
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Advance):
			if m.finished {
				return m, tea.Quit
			}
			return m.advance()
		}
	}
	return m, nil
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	res, err := m.engine.Advance(m.session.CurrentFile)
	if err != nil {
		// Failures leave the session untouched; report once and keep going.
		m.errText = err.Error()
		return m, nil
	}

	m.errText = ""
	if res.Finished {
		m.finished = true
		m.status = fmt.Sprintf("Saved %s. Sequence finished.", filepath.Base(res.Saved))
		return m, nil
	}

	m.session.CurrentFile = res.Next
	m.session.Window = res.Window
	m.status = fmt.Sprintf("Saved %s, opened %s", filepath.Base(res.Saved), filepath.Base(res.Next))
	m.reload()
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf(" filestep · %s · %s ", m.session.Filter, m.session.Directory)))
	sb.WriteString("\n\n")

	for _, f := range m.files {
		name := filepath.Base(f)
		if f == m.session.CurrentFile && !m.finished {
			sb.WriteString(currentStyle.Render("> " + name))
		} else {
			sb.WriteString(fileStyle.Render("  " + name))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.finished {
		sb.WriteString(doneStyle.Render(m.status))
	} else {
		sb.WriteString(statusStyle.Render(m.status))
	}
	if m.errText != "" {
		sb.WriteString("\n" + errorStyle.Render(m.errText))
	}
	sb.WriteString("\n\n" + m.help.View(m.keys))

	return appStyle.Render(sb.String())
}

// Run starts the stepping program and blocks until it exits.
func Run(engine *sequence.Engine, session *types.Session) error {
	_, err := tea.NewProgram(NewModel(engine, session)).Run()
	return err
}
