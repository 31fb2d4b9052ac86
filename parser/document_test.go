package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFlatten(t *testing.T) {
	doc := &Document{
		Title: strPtr("Keymap"),
		Sections: []Section{
			{
				Title: strPtr("Apps"),
				Keybinds: []Keybind{
					{Keys: "M-p", Description: "Launch menu"},
					{Keys: "M-t", Description: "Open a terminal"},
				},
			},
			{
				Keybinds: []Keybind{
					{Keys: "M-x", Description: "Kill current window"},
				},
			},
		},
	}

	assert.Equal(t, 2, doc.SectionCount())
	assert.Equal(t, 3, doc.KeybindCount())
	assert.Equal(t, []Keybind{
		{Keys: "M-p", Description: "Launch menu"},
		{Keys: "M-t", Description: "Open a terminal"},
		{Keys: "M-x", Description: "Kill current window"},
	}, doc.Flatten())
}

func TestFlattenEmpty(t *testing.T) {
	doc := &Document{}
	assert.Empty(t, doc.Flatten())
	assert.Equal(t, 0, doc.KeybindCount())
}

func TestEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
	}{
		{
			name: "full document",
			doc: &Document{
				Title: strPtr("Xmonad keymap"),
				Sections: []Section{
					{
						Title: strPtr("Apps"),
						Keybinds: []Keybind{
							{Keys: "M-p", Description: "Launch menu"},
							{Keys: "M-<Space>", Description: "Cycle layouts"},
						},
					},
					{
						Title: strPtr("Workspaces"),
						Keybinds: []Keybind{
							{Keys: "M-[1..9]", Description: "Switch to workspace N"},
						},
					},
				},
			},
		},
		{
			name: "untitled document",
			doc: &Document{
				Sections: []Section{
					{Keybinds: []Keybind{{Keys: "M-t", Description: "Open a terminal"}}},
				},
			},
		},
		{
			name: "titled empty section",
			doc: &Document{
				Title:    strPtr("Keymap"),
				Sections: []Section{{Title: strPtr("Empty")}},
			},
		},
		{
			name: "no sections",
			doc:  &Document{Title: strPtr("Keymap")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Parse(tt.doc.Encode())
			require.NoError(t, err)
			assert.Equal(t, tt.doc, parsed)
		})
	}
}

func TestEncodeRoundTripParsed(t *testing.T) {
	input := "-- # Keymap\n" +
		"-- ## Apps\n" +
		"-- \"M-p\" Launch menu\n" +
		"-- Open a terminal\n" +
		", (\"M-t\", spawn term)\n" +
		"-- #\n"
	doc, err := Parse(input)
	require.NoError(t, err)

	reparsed, err := Parse(doc.Encode())
	require.NoError(t, err)
	assert.Equal(t, doc, reparsed)
}
