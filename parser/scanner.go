package parser

import "strings"

// scanner is an explicit position-carrying cursor over the raw input.
// Grammar rules advance the position on success and rewind to a saved
// position on failure, which gives the parser its backtracking
// alternation (try rule A, rewind, try rule B).
type scanner struct {
	input string
	pos   int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) save() int {
	return s.pos
}

func (s *scanner) restore(pos int) {
	s.pos = pos
}

// peek returns the current byte, or 0 at end of input
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.input[s.pos]
}

// expect consumes lit if the input continues with it
func (s *scanner) expect(lit string) bool {
	if strings.HasPrefix(s.input[s.pos:], lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

// skipSpaces consumes horizontal whitespace only
func (s *scanner) skipSpaces() {
	for !s.eof() {
		if c := s.input[s.pos]; c != ' ' && c != '\t' {
			break
		}
		s.pos++
	}
}

// restOfLine consumes the remainder of the current line, including the
// line break, and returns it without the line break. At end of input it
// returns what is left.
func (s *scanner) restOfLine() string {
	start := s.pos
	for !s.eof() && s.input[s.pos] != '\n' {
		s.pos++
	}
	line := s.input[start:s.pos]
	if !s.eof() {
		s.pos++
	}
	return strings.TrimSuffix(line, "\r")
}

// scanQuoted consumes up to the nearest closing quote on the current
// line, the opening quote having been consumed already. Fails on a line
// break or end of input before the closing quote.
func (s *scanner) scanQuoted() (string, bool) {
	for i := s.pos; i < len(s.input); i++ {
		switch s.input[i] {
		case quoteToken:
			content := s.input[s.pos:i]
			s.pos = i + 1
			return content, true
		case '\n':
			return "", false
		}
	}
	return "", false
}

// atBoundary reports whether a boundary marker starts here, without
// consuming input
func (s *scanner) atBoundary() bool {
	start := s.save()
	_, ok := s.boundary()
	s.restore(start)
	return ok
}

// atSectionTag reports whether a section tag starts here, without
// consuming input
func (s *scanner) atSectionTag() bool {
	start := s.save()
	_, ok := s.sectionTag()
	s.restore(start)
	return ok
}

// atKeybind reports whether a keybind in either form starts here,
// without consuming input
func (s *scanner) atKeybind() bool {
	start := s.save()
	defer s.restore(start)
	if _, ok := s.inlineKeybind(); ok {
		return true
	}
	if _, ok := s.declKeybind(); ok {
		return true
	}
	return false
}

// lineAt returns the 1-based line number of a byte offset, for logging
func (s *scanner) lineAt(pos int) int {
	if pos > len(s.input) {
		pos = len(s.input)
	}
	return 1 + strings.Count(s.input[:pos], "\n")
}
