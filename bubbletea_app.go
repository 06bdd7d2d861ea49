// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// Styles holds all the styling for the terminal UI
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	Echo           lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor()),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor()),
		Title: lipgloss.NewStyle().
			Foreground(accentColor()).
			Padding(0, 1).
			Bold(true),
		Echo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// entryItem is one tree entry in the entries list
type entryItem struct {
	entry
}

func (i entryItem) FilterValue() string { return i.Key }
func (i entryItem) Title() string       { return i.Key }
func (i entryItem) Description() string { return i.Value }

// Model is the Bubble Tea application state
type Model struct {
	ready bool

	input       textinput.Model
	output      viewport.Model
	entriesList list.Model

	runner     runner
	buf        *bytes.Buffer
	transcript []string

	status    string
	statusErr bool

	styles *Styles

	width  int
	height int
}

// InitialModel creates a model whose runner writes into buf.
func InitialModel(r runner, buf *bytes.Buffer) Model {
	r.setOutput(buf)

	ti := textinput.New()
	ti.Placeholder = "insert 10 hello"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	entriesList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	entriesList.SetShowTitle(false)
	entriesList.SetShowHelp(false)
	entriesList.SetFilteringEnabled(false)

	output := viewport.New(0, 0)
	output.SetContent("Type a command and press enter. Try: help")

	return Model{
		input:       ti,
		output:      output,
		entriesList: entriesList,
		runner:      r,
		buf:         buf,
		styles:      NewStyles(),
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "ctrl+y":
			m.copyLastValue()
			return m, nil
		case "pgup":
			m.output.LineUp(m.output.Height)
			return m, nil
		case "pgdown":
			m.output.LineDown(m.output.Height)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the typed line and refreshes the transcript and entries list.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}

	m.buf.Reset()
	err := m.runner.execute(line)
	if errors.Is(err, errQuit) {
		return m, tea.Quit
	}

	m.transcript = append(m.transcript, m.styles.Echo.Render("> "+line))
	if out := strings.TrimRight(m.buf.String(), "\n"); out != "" {
		m.transcript = append(m.transcript, out)
	}
	if err != nil {
		m.transcript = append(m.transcript, m.styles.ErrorMessage.Render(err.Error()))
	}

	m.output.SetContent(strings.Join(m.transcript, "\n"))
	m.output.GotoBottom()

	return m, m.refreshEntries()
}

func (m *Model) refreshEntries() tea.Cmd {
	entries := m.runner.entries()
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{e})
	}
	return m.entriesList.SetItems(items)
}

func (m *Model) copyLastValue() {
	value, ok := m.runner.lastFound()
	if !ok {
		m.status, m.statusErr = "Nothing to copy yet, run find first", true
		return
	}
	if err := clipboard.WriteAll(value); err != nil {
		m.status, m.statusErr = fmt.Sprintf("Copy failed: %v", err), true
		return
	}
	m.status, m.statusErr = "Copied last found value to clipboard", false
}

func (m *Model) updateLayout() {
	inputHeight := 3
	outputHeight := m.height - inputHeight - 7 // Leave room for borders and footer
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.input.Width = leftWidth - 6
	m.output.Width = leftWidth - 2
	m.output.Height = max(outputHeight, 1)
	m.entriesList.SetSize(rightWidth-2, max(outputHeight+inputHeight, 1))
}

// View renders the input and transcript on the left and the entries on the right.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.styles.BorderFocused.
		Width(leftWidth).
		Padding(0, 1).
		Render(m.input.View())

	outputBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("Output"),
			m.output.View(),
		))

	entriesBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(fmt.Sprintf("Entries (%d)", len(m.entriesList.Items()))),
			m.entriesList.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, outputBox),
		entriesBox,
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderFooter())
}

func (m Model) renderFooter() string {
	keys := []struct{ key, desc string }{
		{"enter", "run"},
		{"ctrl+y", "copy found value"},
		{"pgup/pgdown", "scroll"},
		{"esc", "quit"},
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m.styles.HelpKey.Render(k.key)+" "+m.styles.HelpDesc.Render(k.desc))
	}
	footer := strings.Join(parts, "  ")

	if m.status != "" {
		style := m.styles.SuccessMessage
		if m.statusErr {
			style = m.styles.ErrorMessage
		}
		footer += "  " + style.Render(m.status)
	}
	return footer
}

// newGlamourHelpBook renders help pages with glamour, which fits the TUI's
// own styling better than plain terminal markdown.
func newGlamourHelpBook(cfg *Config) *helpBook {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		return newHelpBook(helpExpiration(cfg), nil)
	}
	return newHelpBook(helpExpiration(cfg), renderer.Render)
}

func runBubbleTeaApp(r runner) error {
	model := InitialModel(r, &bytes.Buffer{})

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
