package numfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type ruleSet struct {
	Rules map[string]ruleEntry `yaml:"rules" toml:"rules"`
}

// ruleEntry uses pointers so that missing keys can be told apart from zero values.
type ruleEntry struct {
	MinFractionDigits *int    `yaml:"min_fraction_digits" toml:"min_fraction_digits"`
	MaxFractionDigits *int    `yaml:"max_fraction_digits" toml:"max_fraction_digits"`
	Grouping          *string `yaml:"grouping_separator" toml:"grouping_separator"`
	Decimal           *string `yaml:"decimal_separator" toml:"decimal_separator"`
	GroupSize         *int    `yaml:"grouping_size" toml:"grouping_size"`
}

func (e ruleEntry) rule() NumberRule {
	r := DefaultNumberRule
	if e.MinFractionDigits != nil {
		r.MinFractionDigits = *e.MinFractionDigits
	}
	if e.MaxFractionDigits != nil {
		r.MaxFractionDigits = *e.MaxFractionDigits
	}
	if e.Grouping != nil {
		r.Grouping = *e.Grouping
	}
	if e.Decimal != nil {
		r.Decimal = *e.Decimal
	}
	if e.GroupSize != nil {
		r.GroupSize = *e.GroupSize
	}
	return r
}

// LoadRules decodes a YAML rule set. Keys missing from an entry take their
// DefaultNumberRule value. Unknown keys are rejected so that a typo does not
// silently fall back to defaults. An empty document yields an empty set.
func LoadRules(r io.Reader) (map[string]NumberRule, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var set ruleSet
	if err := dec.Decode(&set); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]NumberRule{}, nil
		}
		return nil, errors.Join(ErrInvalidRules, err)
	}

	return set.rules()
}

// LoadRulesTOML decodes the same rule set from TOML:
//
//	[rules.usd]
//	grouping_separator = ","
//	decimal_separator = "."
func LoadRulesTOML(r io.Reader) (map[string]NumberRule, error) {
	var set ruleSet
	md, err := toml.NewDecoder(r).Decode(&set)
	if err != nil {
		return nil, errors.Join(ErrInvalidRules, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidRules, undecoded[0].String())
	}
	return set.rules()
}

func (s ruleSet) rules() (map[string]NumberRule, error) {
	rules := make(map[string]NumberRule, len(s.Rules))
	for name, entry := range s.Rules {
		if name == "" {
			return nil, fmt.Errorf("%w: empty rule name", ErrInvalidRules)
		}
		rules[name] = entry.rule()
	}
	return rules, nil
}

// LoadRulesFile reads a rule set from path. Files ending in .toml are decoded
// as TOML, everything else as YAML.
func LoadRulesFile(path string) (map[string]NumberRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("numfmt: open rule set: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return LoadRulesTOML(f)
	}
	return LoadRules(f)
}
