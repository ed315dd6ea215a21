// Package patch applies ordered literal replacement rules to a text buffer.
//
// A rule is an exact, whitespace-sensitive (old, new) pair. Rules run in order,
// each against the output of the previous one, and a rule whose old text is
// absent leaves the buffer unchanged.
package patch

import (
	"errors"
	"fmt"
)

// Rule is a single literal replacement.
type Rule struct {
	Name string
	Old  string
	New  string
}

// RuleSet is an ordered list of rules.
type RuleSet []Rule

var (
	// ErrEmptyOld is returned for a rule with no text to search for.
	ErrEmptyOld = errors.New("rule has empty old text")

	// ErrDuplicateRule is returned when two rules share a name.
	ErrDuplicateRule = errors.New("duplicate rule name")
)

// Validate checks that every rule has search text and a unique name.
func (rs RuleSet) Validate() error {
	seen := make(map[string]struct{}, len(rs))
	for i, r := range rs {
		if r.Old == "" {
			return fmt.Errorf("rule %d (%s): %w", i, r.Name, ErrEmptyOld)
		}
		if r.Name == "" {
			continue
		}
		if _, ok := seen[r.Name]; ok {
			return fmt.Errorf("rule %d: %w: %s", i, ErrDuplicateRule, r.Name)
		}
		seen[r.Name] = struct{}{}
	}
	return nil
}

// Names returns rule names in order.
func (rs RuleSet) Names() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}
