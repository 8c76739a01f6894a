package ranks

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed ranks.yaml
var defaultRanksYAML []byte

var (
	// ErrEmptyCatalog is returned when a rank list has no entries.
	ErrEmptyCatalog = errors.New("rank catalog is empty")

	// ErrDuplicateName is returned when two entries share a name.
	ErrDuplicateName = errors.New("duplicate rank name")

	// ErrBlankName is returned when an entry has an empty name.
	ErrBlankName = errors.New("rank name is blank")
)

// Entry is one quiz item: a rank name and a reference to its insignia.
type Entry struct {
	Name        string `yaml:"name" json:"name"`
	Insignia    string `yaml:"insignia" json:"insignia"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// Default returns the built-in Royal Canadian Navy rank list.
func Default() []Entry {
	entries, err := parseYAML(defaultRanksYAML)
	if err != nil {
		// The embedded asset is covered by tests.
		panic(fmt.Sprintf("ranks: embedded catalog: %v", err))
	}
	return entries
}

// Load reads a rank list from path. Files ending in .json are checked
// against the catalog schema; everything else is parsed as YAML.
// An empty path returns the built-in list.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rank file: %w", err)
	}

	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		entries, err = parseJSON(data)
	default:
		entries, err = parseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return entries, nil
}

// Validate checks that entries is non-empty and that every name is
// present and unique.
func Validate(entries []Entry) error {
	if len(entries) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return fmt.Errorf("entry %d: %w", i, ErrBlankName)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[name] = true
	}
	return nil
}

// Names returns the rank names in list order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func parseYAML(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if err := Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseJSON(data []byte) ([]Entry, error) {
	if err := validateJSON(data); err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if err := Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}
