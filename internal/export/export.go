package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/stepform/internal/logger"
	"github.com/mark3labs/stepform/internal/multistep"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for output paths with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown output format")

// FormatFor picks the format from the path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Marshal encodes every step's values in format. Step keys become map keys,
// so an exported file can be read back as a seed.
func Marshal[K multistep.Key](all map[K]multistep.Values, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(all)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save writes every step's values to path, in the format its extension
// names. Creates the parent directory if it doesn't exist.
func Save[K multistep.Key](path string, all map[K]multistep.Values) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	data, err := Marshal(all, format)
	if err != nil {
		return fmt.Errorf("marshaling values: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	logger.Debug("Values exported to %s", path)
	return nil
}
