package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/doums/apekey/config"
	"github.com/doums/apekey/logging"
	"github.com/doums/apekey/parser"
)

// DefaultTitle is displayed when the boundary marker captured no title
const DefaultTitle = "Key bindings"

type uiState int

const (
	stateReading uiState = iota
	stateParsing
	stateList
	stateError
)

// Model is the top-level bubbletea model: it owns the parsed Document
// and drives the reading → parsing → list state machine. The Document
// is an immutable value; a reload replaces it wholesale.
type Model struct {
	state       uiState
	sourcePath  string
	watch       bool
	updateCh    chan struct{}
	keybindList *KeybindList
	styles      Styles
	keys        KeyMap
	err         error
	width       int
	height      int
}

// NewModel creates the application model for the given source file
func NewModel(sourcePath string, theme config.Colors, watch bool) *Model {
	styles := NewStyles(theme)
	keys := NewKeyMap()
	return &Model{
		state:       stateReading,
		sourcePath:  sourcePath,
		watch:       watch,
		updateCh:    make(chan struct{}, 1),
		keybindList: NewKeybindList(styles, keys),
		styles:      styles,
		keys:        keys,
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{readSourceCmd(m.sourcePath)}
	if m.watch {
		go startWatcher(m.sourcePath, m.updateCh)
		cmds = append(cmds, waitForChange(m.updateCh))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.keybindList.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Application.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Application.Reload):
			if m.state == stateList || m.state == stateError {
				logging.Logger.Info("Reloading configuration source", "path", m.sourcePath)
				m.state = stateReading
				return m, readSourceCmd(m.sourcePath)
			}
		}

	case sourceReadMsg:
		logging.Logger.Info("Configuration source read successfully", "path", m.sourcePath)
		m.state = stateParsing
		return m, parseCmd(msg.content)

	case parseDoneMsg:
		logging.Logger.Info("Parsing done",
			"sections", msg.doc.SectionCount(),
			"keybinds", msg.doc.KeybindCount())
		m.state = stateList
		return m, m.keybindList.SetDocument(msg.doc)

	case errMsg:
		logging.Logger.Error("Terminal failure", "error", msg.err)
		m.state = stateError
		m.err = msg.err
		return m, nil

	case sourceChangedMsg:
		logging.Logger.Info("Configuration source changed, re-parsing", "path", m.sourcePath)
		return m, tea.Batch(readSourceCmd(m.sourcePath), waitForChange(m.updateCh))
	}

	if m.state == stateList {
		cmd := m.keybindList.Update(msg)
		if m.keybindList.ShouldQuit {
			return m, tea.Quit
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case stateReading:
		return m.styles.Status.Render("▪▫▫ Reading " + m.sourcePath)
	case stateParsing:
		return m.styles.Status.Render("▪▪▫ Parsing keymap")
	case stateError:
		return m.styles.Error.Render("Error: " + m.err.Error())
	case stateList:
		return m.keybindList.View()
	}
	return ""
}

// readSourceCmd loads the configuration source off the UI loop
func readSourceCmd(path string) tea.Cmd {
	return func() tea.Msg {
		content, err := parser.ReadFile(path)
		if err != nil {
			return errMsg{err}
		}
		return sourceReadMsg{content}
	}
}

// parseCmd runs the parser off the UI loop
func parseCmd(content string) tea.Cmd {
	return func() tea.Msg {
		doc, err := parser.Parse(content)
		if err != nil {
			return errMsg{err}
		}
		return parseDoneMsg{doc}
	}
}

// waitForChange re-arms the watcher subscription: it blocks until the
// watcher signals a change, then delivers a single message
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return sourceChangedMsg{}
	}
}
