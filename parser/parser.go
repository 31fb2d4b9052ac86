package parser

import (
	"strings"

	"github.com/doums/apekey/logging"
)

// Grammar markers. The boundary marker is the comment sequence followed
// by one boundaryToken not followed by another (longest-prefix
// disambiguation against the section marker, which is the token doubled).
const (
	commentToken       = "--"
	boundaryToken byte = '#'
	ignoreToken   byte = '!'
	quoteToken    byte = '"'
)

// Parse parses raw configuration text into a Document. It is a total,
// synchronous, side-effect-free pass over the input: it either returns a
// Document or ErrNoBoundary when no opening boundary marker exists.
// A missing closing boundary marker is not a failure; everything
// collected up to end of input is returned and a warning is logged.
func Parse(input string) (*Document, error) {
	s := &scanner{input: input}
	doc := &Document{}

	// Skip arbitrary surrounding code until the opening boundary marker
	found := false
	for !s.eof() {
		if title, ok := s.boundary(); ok {
			doc.Title = title
			found = true
			break
		}
		s.restOfLine()
	}
	if !found {
		return nil, ErrNoBoundary
	}
	logging.Logger.Debug("opening boundary marker found", "line", s.lineAt(s.pos))

	closed := false
	for !s.eof() {
		if _, ok := s.boundary(); ok {
			closed = true
			break
		}
		if s.atSectionTag() || s.atKeybind() {
			sec := s.section()
			// A bare "-- ##" close tag assembles into an empty untitled
			// section; it is a delimiter, not content.
			if sec.Title != nil || len(sec.Keybinds) > 0 {
				doc.Sections = append(doc.Sections, sec)
				logging.Logger.Debug("section parsed",
					"title", titleOrEmpty(sec.Title),
					"keybinds", len(sec.Keybinds))
			}
			continue
		}
		s.restOfLine()
	}
	if !closed {
		logging.Logger.Warn("parsing ended without a closing boundary marker")
	}

	logging.Logger.Debug("parsing done",
		"sections", doc.SectionCount(), "keybinds", doc.KeybindCount())
	return doc, nil
}

// section assembles an optional "-- ##" open tag and a run of keybind or
// filler lines. It stops, without consuming input, on lookahead of a
// boundary marker, of another section tag, or at end of input: sections
// are delimited by whatever starts next, an explicit close is optional.
func (s *scanner) section() Section {
	sec := Section{}
	if title, ok := s.sectionTag(); ok {
		sec.Title = title
	}
	for !s.eof() {
		if s.atBoundary() || s.atSectionTag() {
			break
		}
		if kb, ok := s.inlineKeybind(); ok {
			sec.Keybinds = append(sec.Keybinds, kb)
			continue
		}
		if kb, ok := s.declKeybind(); ok {
			sec.Keybinds = append(sec.Keybinds, kb)
			continue
		}
		// filler, no token emitted
		s.restOfLine()
	}
	return sec
}

// inlineKeybind recognizes `-- "keys" description`: a quoted keys token
// right after the comment sequence, followed without separator by the
// description, captured to end of line. Tried before the two-line form.
func (s *scanner) inlineKeybind() (Keybind, bool) {
	start := s.save()
	if !s.commentSeq() {
		return Keybind{}, false
	}
	switch s.peek() {
	case boundaryToken, ignoreToken:
		s.restore(start)
		return Keybind{}, false
	}
	if s.peek() != quoteToken {
		s.restore(start)
		return Keybind{}, false
	}
	s.pos++
	keys, ok := s.scanQuoted()
	if !ok {
		logging.Logger.Info("unmatched quote pair in keybind comment", "line", s.lineAt(start))
		s.restore(start)
		return Keybind{}, false
	}
	keys = strings.TrimSpace(keys)
	if keys == "" {
		s.restore(start)
		return Keybind{}, false
	}
	desc := strings.TrimSpace(s.restOfLine())
	return Keybind{Keys: keys, Description: desc}, true
}

// declKeybind recognizes the two-line form: a comment line carrying the
// description, then the Haskell binding itself from which the keys token
// is extracted.
func (s *scanner) declKeybind() (Keybind, bool) {
	start := s.save()
	desc, ok := s.declDescription()
	if !ok {
		return Keybind{}, false
	}
	keys, ok := s.declDefinition()
	if !ok {
		s.restore(start)
		return Keybind{}, false
	}
	return Keybind{Keys: keys, Description: desc}, true
}

// declDescription captures a plain comment line as the description;
// lines opening with the boundary, ignore or quote markers are rejected.
func (s *scanner) declDescription() (string, bool) {
	start := s.save()
	if !s.commentSeq() {
		return "", false
	}
	switch s.peek() {
	case boundaryToken, ignoreToken, quoteToken:
		s.restore(start)
		return "", false
	}
	return strings.TrimSpace(s.restOfLine()), true
}

// declDefinition extracts the keys token from a binding such as
// `, ("M-t", spawn term)`. The opening parenthesis must sit on this line;
// the quoted keys token follows it after optional spaces. The argument
// list may spill over following lines: input is consumed up to the
// matching closing parenthesis.
//
// The capture is the nearest quote pair; keys containing a literal quote
// character are unsupported.
func (s *scanner) declDefinition() (string, bool) {
	start := s.save()
	i := s.pos
	for i < len(s.input) && s.input[i] != '\n' && s.input[i] != '(' {
		i++
	}
	if i >= len(s.input) || s.input[i] == '\n' {
		s.restore(start)
		return "", false
	}
	s.pos = i + 1
	s.skipSpaces()
	if s.peek() != quoteToken {
		s.restore(start)
		return "", false
	}
	s.pos++
	keys, ok := s.scanQuoted()
	if !ok {
		logging.Logger.Info("unmatched quote pair in keybind definition", "line", s.lineAt(start))
		s.restore(start)
		return "", false
	}
	keys = strings.TrimSpace(keys)
	if keys == "" {
		s.restore(start)
		return "", false
	}
	depth := 1
	for s.pos < len(s.input) && depth > 0 {
		switch s.input[s.pos] {
		case '(':
			depth++
		case ')':
			depth--
		}
		s.pos++
	}
	if depth > 0 {
		logging.Logger.Debug("malformed multi-line keybind definition", "line", s.lineAt(start))
		s.restore(start)
		return "", false
	}
	s.restOfLine()
	return keys, true
}

// boundary recognizes "-- #", not followed by the section marker, with an
// optional trailing title captured to end of line.
func (s *scanner) boundary() (*string, bool) {
	start := s.save()
	if !s.commentSeq() {
		return nil, false
	}
	if s.peek() != boundaryToken {
		s.restore(start)
		return nil, false
	}
	s.pos++
	if s.peek() == boundaryToken {
		s.restore(start)
		return nil, false
	}
	s.skipSpaces()
	return normalizeTitle(s.restOfLine()), true
}

// sectionTag recognizes "-- ##" with the same trailing title capture
func (s *scanner) sectionTag() (*string, bool) {
	start := s.save()
	if !s.commentSeq() {
		return nil, false
	}
	if !s.expect("##") {
		s.restore(start)
		return nil, false
	}
	s.skipSpaces()
	return normalizeTitle(s.restOfLine()), true
}

// commentSeq recognizes optional leading horizontal whitespace followed by
// the comment sequence "--". "-->" introduces a pragma-like construct and
// is rejected. Trailing horizontal whitespace is consumed.
func (s *scanner) commentSeq() bool {
	start := s.save()
	s.skipSpaces()
	if !s.expect(commentToken) {
		s.restore(start)
		return false
	}
	if s.peek() == '>' {
		s.restore(start)
		return false
	}
	s.skipSpaces()
	return true
}

// An all-whitespace title capture normalizes to "no title"
func normalizeTitle(capture string) *string {
	trimmed := strings.TrimSpace(capture)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func titleOrEmpty(title *string) string {
	if title == nil {
		return ""
	}
	return *title
}
