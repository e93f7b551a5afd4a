// Package config loads .mdvet.yml validation settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/eykd/mdvet-go/internal/rules"
	"github.com/eykd/mdvet-go/internal/validator"
)

// Filename is the config file mdvet looks for.
const Filename = ".mdvet.yml"

// Config selects which rules a validator runs. The zero value enables every
// rule.
type Config struct {
	// DisabledByDefault turns every rule off unless Rules re-enables it.
	DisabledByDefault bool `yaml:"disabled-by-default"`
	// Only, when non-empty, enables exactly the listed rules.
	Only []string `yaml:"only"`
	// Rules holds per-rule enablement overrides.
	Rules map[string]bool `yaml:"rules"`
}

// Default returns the zero config: every rule enabled.
func Default() Config {
	return Config{}
}

// Load reads and parses a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes config data. Unknown fields and unknown rule IDs are
// errors; an empty document yields the default config.
func Parse(data []byte) (Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.checkRuleIDs(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) checkRuleIDs() error {
	catalog := rules.Catalog()
	for _, id := range c.Only {
		if _, ok := catalog[id]; !ok {
			return fmt.Errorf("unknown rule %q in only list", id)
		}
	}
	ids := make([]string, 0, len(c.Rules))
	for id := range c.Rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := catalog[id]; !ok {
			return fmt.Errorf("unknown rule %q in rules map", id)
		}
	}
	return nil
}

// Options converts the config into validator options.
func (c Config) Options() []validator.Option {
	var opts []validator.Option
	if c.DisabledByDefault {
		opts = append(opts, validator.WithDisabledByDefault())
	}
	if len(c.Only) > 0 {
		opts = append(opts, validator.WithOnly(c.Only...))
	}
	if len(c.Rules) > 0 {
		opts = append(opts, validator.WithRules(c.Rules))
	}
	return opts
}

// Starter renders the config written by mdvet init: every built-in rule
// listed with its description, enabled and ready to toggle.
func Starter() []byte {
	var b bytes.Buffer
	b.WriteString("# mdvet configuration\n")
	b.WriteString("disabled-by-default: false\n")
	b.WriteString("only: []\n")
	b.WriteString("rules:\n")
	for _, check := range rules.All() {
		for _, info := range check.Emits {
			fmt.Fprintf(&b, "  # %s\n", info.Description)
			fmt.Fprintf(&b, "  %s: true\n", info.ID)
		}
	}
	return b.Bytes()
}
