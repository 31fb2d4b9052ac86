// Package parser extracts a structured keybinding document from an
// annotated XMonad configuration file.
//
// The grammar is carried by Haskell comments: "-- #" opens (and closes)
// the documented block and may capture a title, "-- ##" opens a named
// section, and keybindings are declared either inline
// (`-- "M-t" Open a terminal`) or as a comment line followed by the
// actual binding definition (`-- Open a terminal` / `("M-t", spawn term)`).
// A "!" right after the comment sequence excludes the entry. Anything
// else is filler and is discarded.
package parser

import "strings"

// Keybind is a (key combination, description) pair extracted from the
// annotated source. Keys is always a non-empty trimmed string.
type Keybind struct {
	Keys        string `json:"keys"`
	Description string `json:"description"`
}

// Section is a named group of keybinds. Keybinds retain source order.
type Section struct {
	Title    *string   `json:"title"`
	Keybinds []Keybind `json:"keybinds"`
}

// Document is the parsed keymap: an optional title and the sections in
// source order. It is built once per parse and never mutated; re-parsing
// replaces it wholesale.
type Document struct {
	Title    *string   `json:"title"`
	Sections []Section `json:"sections"`
}

// SectionCount returns the number of sections
func (d *Document) SectionCount() int {
	return len(d.Sections)
}

// KeybindCount returns the total number of keybinds across all sections
func (d *Document) KeybindCount() int {
	count := 0
	for _, s := range d.Sections {
		count += len(s.Keybinds)
	}
	return count
}

// Flatten returns every keybind of every section, concatenated in
// document order.
func (d *Document) Flatten() []Keybind {
	var keybinds []Keybind
	for _, s := range d.Sections {
		keybinds = append(keybinds, s.Keybinds...)
	}
	return keybinds
}

// Encode re-serializes the document in the canonical two-line form.
// Parsing the result yields a Document equal to the receiver, as long as
// titles, descriptions and keys are free of quotes, newlines and leading
// grammar markers.
func (d *Document) Encode() string {
	var b strings.Builder
	b.WriteString("-- #")
	if d.Title != nil {
		b.WriteString(" " + *d.Title)
	}
	b.WriteByte('\n')
	for _, sec := range d.Sections {
		b.WriteByte('\n')
		b.WriteString("-- ##")
		if sec.Title != nil {
			b.WriteString(" " + *sec.Title)
		}
		b.WriteByte('\n')
		for _, kb := range sec.Keybinds {
			b.WriteString("-- " + kb.Description + "\n")
			b.WriteString(", (\"" + kb.Keys + "\", undefined)\n")
		}
	}
	b.WriteString("\n-- #\n")
	return b.String()
}
