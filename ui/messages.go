package ui

import (
	"github.com/doums/apekey/parser"
	"github.com/doums/apekey/search"
)

// Internal messages driving the model state machine
type sourceReadMsg struct{ content string }

type parseDoneMsg struct{ doc *parser.Document }

type errMsg struct{ err error }

// sourceChangedMsg is emitted by the file watcher when the configuration
// source was modified on disk
type sourceChangedMsg struct{}

// searchResultMsg carries the outcome of one search invocation. The
// generation counter identifies the keystroke that triggered it: results
// from a superseded keystroke are discarded, never displayed.
type searchResultMsg struct {
	generation int
	results    []search.ScoredKeybind
}
