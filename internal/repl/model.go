// ============================================================================
// valid8 - Logical Argument Validator
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive TUI
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/valid8/internal/session"
)

const (
	headerHeight = 2
	footerHeight = 3
)

// Model is the Bubbletea model for the REPL
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	checking bool
	quitting bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// REPL state
	prompt  string
	buffer  *Buffer
	entries []entry

	session *session.Session
	out     *bytes.Buffer
}

// NewModel creates a new TUI model. The session writes into the model.
func NewModel(cfg Config) Model {
	out := &bytes.Buffer{}
	sc := cfg.Session
	sc.Output = out

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultConfig().Prompt
	}

	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = PromptStyle
	ti.Placeholder = "PREMISE: IMPLIES(p, q);"
	ti.CharLimit = 4096
	ti.Focus()

	return Model{
		input:   ti,
		prompt:  prompt,
		buffer:  &Buffer{},
		session: session.New(sc),
		out:     out,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - len(m.prompt) - 1
		m.updateViewportContent()

	case checkResultMsg:
		m.checking = false
		m.entries = append(m.entries, msg.entry)
		m.updateViewportContent()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submit moves the input line into the buffer and starts a check once
// the argument is complete
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.checking {
		return m, nil
	}

	line := m.input.Value()
	if IsExit(line) {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Reset()

	argument, complete := m.buffer.Add(line)
	if !complete {
		m.input.Prompt = ContinuationPrompt
		return m, nil
	}

	m.input.Prompt = m.prompt
	if !HasPremises(argument) {
		m.entries = append(m.entries, entry{argument: argument, output: NoInputMessage + "\n"})
		m.updateViewportContent()
		return m, nil
	}
	m.checking = true
	return m, m.check(argument)
}

// check runs the argument through the session
func (m Model) check(argument string) tea.Cmd {
	s, out := m.session, m.out
	return func() tea.Msg {
		out.Reset()
		_, err := s.Check(argument)
		return checkResultMsg{entry: entry{
			argument: argument,
			output:   out.String(),
			err:      err,
		}}
	}
}

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting valid8..."
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("valid8"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("Enter: add line • exit/quit or Esc: leave"))
	return b.String()
}

// updateViewportContent renders the history into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.history())
	m.viewport.GotoBottom()
}

func (m Model) history() string {
	var content strings.Builder
	for _, e := range m.entries {
		content.WriteString(EchoStyle.Render(e.argument))
		content.WriteString("\n")
		if e.output != "" {
			content.WriteString(e.output)
		}
		if e.err != nil {
			content.WriteString(ErrorStyle.Render("Error: " + e.err.Error()))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}
	return content.String()
}

// RunTUI starts the interactive TUI
func RunTUI(cfg Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	fmt.Fprintln(cfg.output(), GoodbyeMessage)
	return nil
}
