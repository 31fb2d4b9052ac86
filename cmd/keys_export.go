package cmd

import (
	"fmt"
	"os"
)

// KeysExportCmd prints the parsed keymap back in its annotation form, a
// normalized version of what the parser extracted. Useful to check what
// apekey actually understood from a config file.
type KeysExportCmd struct {
	Path string `arg:"" optional:"" help:"Path to the xmonad config file (overrides apekey.toml)" type:"path"`
}

// Run executes the keys export command
func (k *KeysExportCmd) Run(cli *CLI) error {
	doc, err := loadDocument(cli.sourcePath(k.Path))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(os.Stdout, doc.Encode())
	return err
}
