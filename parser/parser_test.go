package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentSeq(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"--", true},
		{"--A comment", true},
		{" -- A comment", true},
		{"--> Not a comment", false},
		{"|-- Not a comment", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := &scanner{input: tt.input}
			assert.Equal(t, tt.ok, s.commentSeq())
		})
	}
}

func TestBoundary(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		title string
	}{
		{"--", false, ""},
		{"-- ", false, ""},
		{"-- a", false, ""},
		{"-- #", true, ""},
		{" -- #", true, ""},
		{" -- # ", true, ""},
		{" -- # Fool", true, "Fool"},
		{" -- # Fool\n", true, "Fool"},
		{"--#Fool\n", true, "Fool"},
		{"-- ##", false, ""},
		{"--##", false, ""},
		{"-- ##Fool", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := &scanner{input: tt.input}
			title, ok := s.boundary()
			require.Equal(t, tt.ok, ok)
			if tt.title == "" {
				assert.Nil(t, title)
			} else {
				require.NotNil(t, title)
				assert.Equal(t, tt.title, *title)
			}
		})
	}
}

func TestSectionTag(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		title string
	}{
		{"--", false, ""},
		{"-- ", false, ""},
		{"-- a", false, ""},
		{"--##\n", true, ""},
		{"-- ##\n", true, ""},
		{"-- ##", true, ""},
		{" -- ##\n", true, ""},
		{" -- ## \n", true, ""},
		{" -- ## Fool\n", true, "Fool"},
		{"--##Fool\n", true, "Fool"},
		{"-- ## -- ##\n", true, "-- ##"},
		{"-- #", false, ""},
		{"-- # #", false, ""},
		{"--#", false, ""},
		{"-- #Fool", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := &scanner{input: tt.input}
			title, ok := s.sectionTag()
			require.Equal(t, tt.ok, ok)
			if tt.title == "" {
				assert.Nil(t, title)
			} else {
				require.NotNil(t, title)
				assert.Equal(t, tt.title, *title)
			}
		})
	}
}

func TestInlineKeybind(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		keys  string
		desc  string
	}{
		{"regular", "-- \"M-<[]>\" Move to next/previous screen\n", true, "M-<[]>", "Move to next/previous screen"},
		{"no separators", "--\"M-<[]>\"Move to next/previous screen\n", true, "M-<[]>", "Move to next/previous screen"},
		{"boundary marker", "--# \"M-d\" description\n", false, "", ""},
		{"spaced boundary marker", "-- # \"M-d\" description\n", false, "", ""},
		{"unterminated quote", "-- \"M-d description\n", false, "", ""},
		{"no quotes", "-- M-d description\n", false, "", ""},
		{"ignore marker", "-- ! \"M-t\"Open a terminal\n", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &scanner{input: tt.input}
			kb, ok := s.inlineKeybind()
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, Keybind{Keys: tt.keys, Description: tt.desc}, kb)
			}
		})
	}
}

func TestDeclDescription(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		desc  string
	}{
		{"empty", "--\n", true, ""},
		{"no separator", "--A description\n", true, "A description"},
		{"regular", "-- A description\n", true, "A description"},
		{"leading whitespace", " -- A description\n", true, "A description"},
		{"ignore marker", "-- ! Ignored keybind\n", false, ""},
		{"tight ignore marker", "--! Ignored keybind\n", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &scanner{input: tt.input}
			desc, ok := s.declDescription()
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.desc, desc)
			}
		})
	}
}

func TestDeclDefinition(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		keys  string
	}{
		{"bare", `("M-t")`, true, "M-t"},
		{"with arguments", `, ("M-t", stuff)`, true, "M-t"},
		{"parenthesis in keys", `, ( "M-)", stuff)`, true, "M-)"},
		{"spaced", `, ( "M-t", stuff)`, true, "M-t"},
		{"multi-line arguments", ", ( \"M-<Space>\",\n        stuff)", true, "M-<Space>"},
		{"nested parentheses", `, ("M-b", sendMessage (IncMasterN 1))`, true, "M-b"},
		{"unterminated quote", `, ("M-t, spawn $ myTerminal)`, false, ""},
		{"no parenthesis", `"M-t" stuff`, false, ""},
		{"unterminated arguments", ", (\"M-t\", spawn\n", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &scanner{input: tt.input}
			keys, ok := s.declDefinition()
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.keys, keys)
			}
		})
	}
}

func TestDeclKeybind(t *testing.T) {
	t.Run("single line definition", func(t *testing.T) {
		s := &scanner{input: "  -- Recompile and restart XMonad\n" +
			`    ("M-C-q",       spawn "xmonad --recompile; xmonad --restart")`}
		kb, ok := s.declKeybind()
		require.True(t, ok)
		assert.Equal(t, Keybind{Keys: "M-C-q", Description: "Recompile and restart XMonad"}, kb)
	})

	t.Run("multi-line definition", func(t *testing.T) {
		s := &scanner{input: "  -- Recompile and restart XMonad\n" +
			"    (\"M-C-q\",\n" +
			`        spawn "xmonad --recompile; xmonad --restart")`}
		kb, ok := s.declKeybind()
		require.True(t, ok)
		assert.Equal(t, Keybind{Keys: "M-C-q", Description: "Recompile and restart XMonad"}, kb)
	})

	t.Run("unterminated quote", func(t *testing.T) {
		s := &scanner{input: "  -- Open a terminal\n" +
			`  , ("M-t,         spawn $ myTerminal)`}
		_, ok := s.declKeybind()
		assert.False(t, ok)
	})

	t.Run("no description line", func(t *testing.T) {
		s := &scanner{input: ` , ("M-t", spawn $ myTerminal)`}
		_, ok := s.declKeybind()
		assert.False(t, ok)
	})

	t.Run("missing definition", func(t *testing.T) {
		s := &scanner{input: "  -- Open a terminal\n              "}
		_, ok := s.declKeybind()
		assert.False(t, ok)
	})

	t.Run("ignore marker", func(t *testing.T) {
		s := &scanner{input: " -- ! Kill current window\n" +
			`                , ("M-x",  kill)`}
		_, ok := s.declKeybind()
		assert.False(t, ok)
	})
}

func TestSection(t *testing.T) {
	t.Run("garbage only", func(t *testing.T) {
		s := &scanner{input: "  -- ## A section\n  -- simple comment\n  some haskell code\n"}
		sec := s.section()
		require.NotNil(t, sec.Title)
		assert.Equal(t, "A section", *sec.Title)
		assert.Empty(t, sec.Keybinds)
	})

	t.Run("inline keybinds", func(t *testing.T) {
		s := &scanner{input: "  -- ## A section\n  -- \"M-1\" desc 1\n  -- \"M-2\" desc 2\n"}
		sec := s.section()
		assert.Equal(t, []Keybind{
			{Keys: "M-1", Description: "desc 1"},
			{Keys: "M-2", Description: "desc 2"},
		}, sec.Keybinds)
	})

	t.Run("mixed forms", func(t *testing.T) {
		s := &scanner{input: "  -- ## A section\n" +
			"  -- \"M-1\" desc 1\n" +
			"  -- desc a\n" +
			"  , (\"M-a\",     spawn \"lock.sh\")\n" +
			"  -- \"M-2\" desc 2\n" +
			"  -- desc b\n" +
			"  , (\"M-b\",     sendMessage (IncMasterN 1))\n"}
		sec := s.section()
		assert.Equal(t, []Keybind{
			{Keys: "M-1", Description: "desc 1"},
			{Keys: "M-a", Description: "desc a"},
			{Keys: "M-2", Description: "desc 2"},
			{Keys: "M-b", Description: "desc b"},
		}, sec.Keybinds)
	})

	t.Run("stops on next section tag", func(t *testing.T) {
		s := &scanner{input: "-- ## One\n-- \"M-1\" desc 1\n-- ## Two\n"}
		sec := s.section()
		require.NotNil(t, sec.Title)
		assert.Equal(t, "One", *sec.Title)
		assert.Len(t, sec.Keybinds, 1)
		// the next tag is left unconsumed
		title, ok := s.sectionTag()
		require.True(t, ok)
		assert.Equal(t, "Two", *title)
	})

	t.Run("stops on boundary", func(t *testing.T) {
		s := &scanner{input: "-- ## One\n-- \"M-1\" desc 1\n-- #\n"}
		sec := s.section()
		assert.Len(t, sec.Keybinds, 1)
		assert.True(t, s.atBoundary())
	})
}

func TestParseRealCase(t *testing.T) {
	input := `
module Main

import XMonad

-- # Xmonad keymap

-- ## Section One
-- "M-1" desc 1
-- desc a
, ("M-a",     spawn "lock.sh")
-- "M-2" desc 2
-- desc b
, ("M-b",     sendMessage (IncMasterN 1))
-- ##

-- ## Section Two
-- "M-1" desc 1
-- "M-2" desc 2
--! Nope
-- desc b
, ("M-b",     sendMessage (IncMasterN 1))
-- A simple comment
-- ##

-- a comment
some code

-- ## Section Three
-- "M-t" desc t
-- ##

-- #
`
	doc, err := Parse(input)
	require.NoError(t, err)
	require.NotNil(t, doc.Title)
	assert.Equal(t, "Xmonad keymap", *doc.Title)
	require.Len(t, doc.Sections, 3)

	one := doc.Sections[0]
	assert.Equal(t, "Section One", *one.Title)
	assert.Equal(t, []Keybind{
		{Keys: "M-1", Description: "desc 1"},
		{Keys: "M-a", Description: "desc a"},
		{Keys: "M-2", Description: "desc 2"},
		{Keys: "M-b", Description: "desc b"},
	}, one.Keybinds)

	two := doc.Sections[1]
	assert.Equal(t, "Section Two", *two.Title)
	assert.Equal(t, []Keybind{
		{Keys: "M-1", Description: "desc 1"},
		{Keys: "M-2", Description: "desc 2"},
		{Keys: "M-b", Description: "desc b"},
	}, two.Keybinds)

	three := doc.Sections[2]
	assert.Equal(t, "Section Three", *three.Title)
	assert.Equal(t, []Keybind{{Keys: "M-t", Description: "desc t"}}, three.Keybinds)
}

func TestParseMinimal(t *testing.T) {
	doc, err := Parse("-- # Menu\n-- ## Apps\n-- \"M-p\" Launch menu\n-- #")
	require.NoError(t, err)
	require.NotNil(t, doc.Title)
	assert.Equal(t, "Menu", *doc.Title)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Apps", *doc.Sections[0].Title)
	assert.Equal(t, []Keybind{{Keys: "M-p", Description: "Launch menu"}}, doc.Sections[0].Keybinds)
}

func TestParseNoBoundary(t *testing.T) {
	_, err := Parse("module Main\n\nmain = xmonad def\n")
	assert.ErrorIs(t, err, ErrNoBoundary)
}

func TestParseMissingCloseBoundary(t *testing.T) {
	doc, err := Parse("-- # Keymap\n-- ## Apps\n-- \"M-p\" Launch menu\n-- \"M-t\" Terminal\n")
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	assert.Len(t, doc.Sections[0].Keybinds, 2)
}

func TestParseUntitledDocument(t *testing.T) {
	doc, err := Parse("-- #\n-- ## Apps\n-- \"M-p\" Launch menu\n-- #")
	require.NoError(t, err)
	assert.Nil(t, doc.Title)
	assert.Len(t, doc.Sections, 1)
}

func TestParseKeybindsBeforeAnySectionTag(t *testing.T) {
	// the section open tag is optional
	doc, err := Parse("-- # Keymap\n-- \"M-p\" Launch menu\n-- #")
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	assert.Nil(t, doc.Sections[0].Title)
	assert.Equal(t, []Keybind{{Keys: "M-p", Description: "Launch menu"}}, doc.Sections[0].Keybinds)
}

func TestParseBareCloseTags(t *testing.T) {
	// bare "-- ##" close tags don't become sections of their own
	doc, err := Parse("-- # Keymap\n-- ## Apps\n-- \"M-p\" Launch menu\n-- ##\n-- #")
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Apps", *doc.Sections[0].Title)
}

func TestParseIgnoredDeclaration(t *testing.T) {
	doc, err := Parse("-- # Keymap\n-- ## Apps\n-- ! skip\n(\"M-x\", kill)\n-- #")
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	assert.Empty(t, doc.Sections[0].Keybinds)
}

func TestParseSectionsAndKeybindsInOrder(t *testing.T) {
	const sections = 4
	const keybinds = 3

	var b strings.Builder
	b.WriteString("-- # Keymap\n")
	for s := 0; s < sections; s++ {
		fmt.Fprintf(&b, "-- ## Section %d\n", s)
		for k := 0; k < keybinds; k++ {
			fmt.Fprintf(&b, "-- \"M-%d-%d\" desc %d %d\n", s, k, s, k)
		}
	}
	b.WriteString("-- #\n")

	doc, err := Parse(b.String())
	require.NoError(t, err)
	require.Len(t, doc.Sections, sections)
	for s, sec := range doc.Sections {
		require.NotNil(t, sec.Title)
		assert.Equal(t, fmt.Sprintf("Section %d", s), *sec.Title)
		require.Len(t, sec.Keybinds, keybinds)
		for k, kb := range sec.Keybinds {
			assert.Equal(t, fmt.Sprintf("M-%d-%d", s, k), kb.Keys)
		}
	}
}
