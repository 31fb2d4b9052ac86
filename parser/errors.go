package parser

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoBoundary is the only structural parse failure: no opening boundary
// marker ("-- #") anywhere in the input. Every other anomaly degrades to
// a logged warning and a partial result.
var ErrNoBoundary = errors.New(`no opening boundary marker ("-- #") found`)

// ReadFile reads the configuration source at path. An I/O failure is
// fatal to the attempt and is surfaced with the offending path and cause.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	return string(data), nil
}
