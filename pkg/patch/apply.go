package patch

import "strings"

// RuleResult records how often a rule matched.
type RuleResult struct {
	Name    string
	Matches int
}

// Report holds one result per rule, in application order.
type Report []RuleResult

// Applied returns the number of rules that matched at least once.
func (r Report) Applied() int {
	n := 0
	for _, res := range r {
		if res.Matches > 0 {
			n++
		}
	}
	return n
}

// Unmatched returns the names of rules that did not match.
func (r Report) Unmatched() []string {
	var names []string
	for _, res := range r {
		if res.Matches == 0 {
			names = append(names, res.Name)
		}
	}
	return names
}

// Apply runs each rule over text in order, replacing every occurrence of its
// old text. Each rule sees the output of the rules before it.
func Apply(text string, rules RuleSet) (string, Report) {
	report := make(Report, len(rules))
	for i, rule := range rules {
		report[i].Name = rule.Name
		if rule.Old == "" {
			continue
		}
		n := strings.Count(text, rule.Old)
		report[i].Matches = n
		if n > 0 {
			text = strings.ReplaceAll(text, rule.Old, rule.New)
		}
	}
	return text, report
}
