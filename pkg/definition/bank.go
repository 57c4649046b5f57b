package definition

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"digital.vasic.zeal/pkg/evaluation"
	"digital.vasic.zeal/pkg/logging"
)

// bankFile is the on-disk format of a rule bank.
type bankFile struct {
	Version string    `json:"version" yaml:"version"`
	Name    string    `json:"name" yaml:"name"`
	Rules   []RuleSet `json:"rules" yaml:"rules"`
}

// Bank stores named rule sets loaded from JSON or YAML files. It is
// safe for concurrent use.
type Bank struct {
	mu      sync.RWMutex
	rules   map[string]*RuleSet
	sources []string
	log     logging.Logger
}

// NewBank creates an empty Bank. A nil logger is replaced with a
// NullLogger.
func NewBank(log logging.Logger) *Bank {
	if log == nil {
		log = logging.NewNullLogger()
	}
	return &Bank{
		rules: make(map[string]*RuleSet),
		log:   log,
	}
}

// LoadFile loads a rule bank file into the bank. The format is
// chosen by extension: .json decodes as JSON, .yaml and .yml as
// YAML. Rule sets with names already present replace the existing
// ones.
func (b *Bank) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read bank file: %w", err)
	}

	var file bankFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse bank file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse bank file %s: %w", path, err)
		}
	default:
		return fmt.Errorf(
			"unsupported bank file format: %s", path,
		)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range file.Rules {
		rs := file.Rules[i]
		if rs.Name == "" {
			return fmt.Errorf(
				"bank file %s: rule set without a name", path,
			)
		}
		b.rules[rs.Name] = &rs
	}
	b.sources = append(b.sources, path)

	b.log.Info("Loaded rule bank",
		logging.StringField("path", path),
		logging.StringField("bank", file.Name),
		logging.IntField("rules", len(file.Rules)))
	return nil
}

// LoadDir loads every .json, .yaml, and .yml file in the directory
// (non-recursive).
func (b *Bank) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read bank directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".yaml", ".yml":
			path := filepath.Join(dir, entry.Name())
			if err := b.LoadFile(path); err != nil {
				return err
			}
		}
	}
	return nil
}

// Get returns the rule set with the given name.
func (b *Bank) Get(name string) (*RuleSet, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rs, exists := b.rules[name]
	return rs, exists
}

// List returns the names of all loaded rule sets, sorted.
func (b *Bank) List() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.rules))
	for name := range b.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of loaded rule sets.
func (b *Bank) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.rules)
}

// Clear removes all loaded rule sets and forgets their sources.
func (b *Bank) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rules = make(map[string]*RuleSet)
	b.sources = nil
}

// Evaluate runs the named rule set against the value using the
// given engine.
func (b *Bank) Evaluate(
	engine Engine,
	name string,
	value any,
) (*evaluation.Evaluated, error) {
	rs, exists := b.Get(name)
	if !exists {
		return nil, fmt.Errorf("rule set not found: %s", name)
	}
	return engine.Evaluate(rs.Name, rs.Checks, value)
}
