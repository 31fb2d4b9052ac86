package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/doums/apekey/logging"
	"github.com/doums/apekey/parser"
	"github.com/doums/apekey/search"
)

// KeysCmd groups the non-interactive keymap commands
type KeysCmd struct {
	List   KeysListCmd   `cmd:"list" help:"Print the keymap as a table or JSON" default:"1"`
	Export KeysExportCmd `cmd:"export" help:"Print the keymap back in its annotation form"`
}

// KeysListCmd prints the parsed keymap to stdout, for piping into
// dmenu, rofi or scripts
type KeysListCmd struct {
	Path   string `arg:"" optional:"" help:"Path to the xmonad config file (overrides apekey.toml)" type:"path"`
	Filter string `help:"Fuzzy filter keybinds, ranked like the TUI search" short:"f"`
	JSON   bool   `help:"Output as JSON instead of a table" short:"j"`
}

// Run executes the keys list command
func (k *KeysListCmd) Run(cli *CLI) error {
	doc, err := loadDocument(cli.sourcePath(k.Path))
	if err != nil {
		return err
	}

	keybinds := doc.Flatten()
	if k.Filter != "" {
		results := search.Search(keybinds, k.Filter)
		keybinds = make([]parser.Keybind, len(results))
		for i, r := range results {
			keybinds[i] = parser.Keybind{Keys: r.Keys, Description: r.Description}
		}
	}

	if k.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(keybinds)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, kb := range keybinds {
		fmt.Fprintf(w, "%s\t%s\n", kb.Keys, kb.Description)
	}
	return w.Flush()
}

// loadDocument reads and parses the xmonad config file
func loadDocument(path string) (*parser.Document, error) {
	logging.Logger.Info("Parsing configuration source", "path", path)
	content, err := parser.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := parser.Parse(content)
	if err != nil {
		return nil, err
	}
	logging.Logger.Info("Parsing done",
		"sections", doc.SectionCount(),
		"keybinds", doc.KeybindCount())
	return doc, nil
}
