// Package rules provides the built-in header rules and reads rule sets from
// YAML files.
//
// A rule file looks like:
//
//	rules:
//	  - name: greeting
//	    old: |-
//	      Hello
//	    new: |-
//	      Hi
package rules

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/EchoTools/textpatch/pkg/patch"
)

// ErrNoRules is returned for a rule file that defines no rules.
var ErrNoRules = errors.New("no rules defined")

type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Name string `yaml:"name,omitempty"`
	Old  string `yaml:"old"`
	New  string `yaml:"new"`
}

// Load reads and validates a YAML rule set.
func Load(r io.Reader) (patch.RuleSet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f ruleFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRules
		}
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, ErrNoRules
	}

	rs := make(patch.RuleSet, len(f.Rules))
	for i, e := range f.Rules {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("rule-%d", i+1)
		}
		rs[i] = patch.Rule{Name: name, Old: e.Old, New: e.New}
	}

	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

// LoadFile reads a YAML rule set from path.
func LoadFile(path string) (patch.RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules: %w", err)
	}
	defer f.Close()

	rs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// Dump writes rs in the format Load reads.
func Dump(w io.Writer, rs patch.RuleSet) error {
	f := ruleFile{Rules: make([]ruleEntry, len(rs))}
	for i, r := range rs {
		f.Rules[i] = ruleEntry{Name: r.Name, Old: r.Old, New: r.New}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}
	return enc.Close()
}
