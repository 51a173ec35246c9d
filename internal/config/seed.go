package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Seed holds initial step values keyed by the step key as written in the
// seed file.
//
//	0:
//	  form-1-input: hello
//	"1":
//	  form-2-input: value
type Seed map[string]map[string]any

// LoadSeed reads a YAML seed file. An empty path yields a nil seed.
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	return seed, nil
}

// Indexed converts the seed's keys to step indices.
func (s Seed) Indexed() (map[int]map[string]any, error) {
	out := make(map[int]map[string]any, len(s))
	for key, values := range s {
		i, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("seed key %q is not a step index", key)
		}
		out[i] = values
	}
	return out, nil
}
