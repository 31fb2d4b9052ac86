package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/doums/apekey/logging"
	"github.com/doums/apekey/parser"
	"github.com/doums/apekey/search"
)

// KeybindList renders the parsed document and filters it as the user
// types. With an empty query the full document is shown, grouped by
// section; otherwise the ranked flat result list is shown. Every
// keystroke dispatches a new search tagged with a generation counter so
// that only the latest one ever reaches the screen.
type KeybindList struct {
	doc        *parser.Document
	flattened  []parser.Keybind
	results    []search.ScoredKeybind
	generation int

	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	styles   Styles

	width  int
	height int

	ShouldQuit bool
}

// NewKeybindList creates the list component. The document is injected
// later, once parsing completes.
func NewKeybindList(styles Styles, keys KeyMap) *KeybindList {
	input := textinput.New()
	input.Placeholder = "Search keybindings"
	input.Prompt = "❯ "
	input.Focus()

	return &KeybindList{
		input:    input,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     keys,
		styles:   styles,
	}
}

// SetDocument replaces the displayed document wholesale. The current
// query, if any, is re-run against the new flattened list.
func (l *KeybindList) SetDocument(doc *parser.Document) tea.Cmd {
	l.doc = doc
	l.flattened = doc.Flatten()
	l.generation++
	if pattern := l.input.Value(); pattern != "" {
		return searchCmd(l.flattened, pattern, l.generation)
	}
	l.results = nil
	l.refresh()
	return nil
}

// SetSize adjusts the component to the terminal dimensions
func (l *KeybindList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.help.Width = width
	// title, input and help bar each take one rendered block
	chromeHeight := lipgloss.Height(l.header()) + 1 + lipgloss.Height(l.footer())
	l.viewport.Width = width
	l.viewport.Height = max(height-chromeHeight, 1)
	l.refresh()
}

func (l *KeybindList) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, l.keys.Navigation.ClearFilter):
			if l.input.Value() == "" {
				l.ShouldQuit = true
				return nil
			}
			l.input.SetValue("")
			l.generation++
			l.results = nil
			l.refresh()
			return nil
		case key.Matches(msg, l.keys.Navigation.Up),
			key.Matches(msg, l.keys.Navigation.Down),
			key.Matches(msg, l.keys.Navigation.PageUp),
			key.Matches(msg, l.keys.Navigation.PageDown):
			var cmd tea.Cmd
			l.viewport, cmd = l.viewport.Update(msg)
			return cmd
		}

		before := l.input.Value()
		var cmd tea.Cmd
		l.input, cmd = l.input.Update(msg)
		if value := l.input.Value(); value != before {
			// a new keystroke supersedes any in-flight search
			l.generation++
			if value == "" {
				l.results = nil
				l.refresh()
				return cmd
			}
			return tea.Batch(cmd, searchCmd(l.flattened, value, l.generation))
		}
		return cmd

	case searchResultMsg:
		if msg.generation != l.generation {
			logging.Logger.Debug("Discarding stale search results",
				"generation", msg.generation, "current", l.generation)
			return nil
		}
		l.results = msg.results
		l.refresh()
		return nil
	}

	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return cmd
}

func (l *KeybindList) View() string {
	return l.header() + "\n" + l.input.View() + "\n" + l.viewport.View() + l.footer()
}

func (l *KeybindList) header() string {
	title := DefaultTitle
	if l.doc != nil && l.doc.Title != nil {
		title = *l.doc.Title
	}
	return l.styles.Title.Render(title)
}

func (l *KeybindList) footer() string {
	return l.styles.Help.Render(l.help.View(l.keys))
}

// refresh rebuilds the viewport content from the document or from the
// current result list
func (l *KeybindList) refresh() {
	if l.doc == nil {
		l.viewport.SetContent("")
		return
	}
	if l.input.Value() == "" {
		l.viewport.SetContent(l.renderDocument())
		l.viewport.GotoTop()
		return
	}
	l.viewport.SetContent(l.renderResults())
	l.viewport.GotoTop()
}

// renderDocument renders the whole document grouped by section
func (l *KeybindList) renderDocument() string {
	var b strings.Builder
	keysWidth := l.keysColumnWidth()
	for i, sec := range l.doc.Sections {
		if i > 0 {
			b.WriteByte('\n')
		}
		if sec.Title != nil {
			b.WriteString(l.styles.Section.Render(*sec.Title) + "\n")
		}
		for _, kb := range sec.Keybinds {
			b.WriteString("  " + l.styles.Keys.Render(pad(kb.Keys, keysWidth)))
			b.WriteString("  " + l.styles.Desc.Render(kb.Description) + "\n")
		}
	}
	if l.doc.KeybindCount() == 0 {
		return l.styles.Desc.Render("No keybinding found")
	}
	return b.String()
}

// renderResults renders the ranked flat list, highlighting matched runes
func (l *KeybindList) renderResults() string {
	if len(l.results) == 0 {
		return l.styles.Desc.Render("No matching keybind")
	}
	var b strings.Builder
	for _, scored := range l.results {
		b.WriteString("  " + l.renderScored(scored) + "\n")
	}
	return b.String()
}

// renderScored renders "keys description" with the keys segment in the
// keybind color and the matched runes emphasized
func (l *KeybindList) renderScored(scored search.ScoredKeybind) string {
	matched := map[int]bool{}
	if scored.Score != nil {
		for _, idx := range scored.Score.Positions {
			matched[idx] = true
		}
	}
	keysLen := len([]rune(scored.Keys))
	var b strings.Builder
	for i, r := range []rune(scored.Target()) {
		style := l.styles.Desc
		if i < keysLen {
			style = l.styles.Keys
		}
		if matched[i] {
			style = l.styles.Match
		}
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// keysColumnWidth returns the width of the keys column for the grouped
// document display
func (l *KeybindList) keysColumnWidth() int {
	width := 0
	for _, kb := range l.flattened {
		if n := len([]rune(kb.Keys)); n > width {
			width = n
		}
	}
	return width
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// searchCmd runs one search invocation off the UI loop
func searchCmd(flattened []parser.Keybind, pattern string, generation int) tea.Cmd {
	return func() tea.Msg {
		return searchResultMsg{
			generation: generation,
			results:    search.Search(flattened, pattern),
		}
	}
}
