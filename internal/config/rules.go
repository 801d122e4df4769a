package config

import (
	"regexp"
	"strings"
)

// Rule decides, for one application or window, whether axwmd should manage
// it and which workspace it should land on. The Type/Operator/Value/Negate
// shape is grounded on window_rules_engine.go's RuleCondition, narrowed to
// the single condition axwmd needs per rule (the teacher's engine composes
// many conditions and actions per rule; a tiling core only ever needs to
// decide "manage or ignore, and if managed, where").
type Rule struct {
	Type     string `mapstructure:"type"`     // "app_name", "title", "bundle_id"
	Operator string `mapstructure:"operator"` // "equals", "contains", "matches"
	Value    string `mapstructure:"value"`
	Negate   bool   `mapstructure:"negate"`

	Ignore    bool `mapstructure:"ignore"`
	Workspace int  `mapstructure:"workspace"` // 1-based; 0 means "no preference"
}

// Target is the subset of a window's identity a Rule can match against.
type Target struct {
	AppName  string
	Title    string
	BundleID string
}

// Match reports whether r applies to t.
func (r Rule) Match(t Target) bool {
	var field string
	switch r.Type {
	case "app_name":
		field = t.AppName
	case "title":
		field = t.Title
	case "bundle_id":
		field = t.BundleID
	default:
		return false
	}

	matched := evaluate(r.Operator, field, r.Value)
	if r.Negate {
		return !matched
	}
	return matched
}

func evaluate(operator, field, value string) bool {
	switch operator {
	case "equals":
		return field == value
	case "contains":
		return strings.Contains(field, value)
	case "matches":
		re, err := regexp.Compile(value)
		if err != nil {
			return false
		}
		return re.MatchString(field)
	default:
		return false
	}
}

// FirstMatch returns the first rule in rules that matches t, in config
// order — rule precedence is positional, same as the teacher's
// WindowRulesEngine iterating rules in slice order and taking the first
// actionable match.
func FirstMatch(rules []Rule, t Target) (Rule, bool) {
	for _, r := range rules {
		if r.Match(t) {
			return r, true
		}
	}
	return Rule{}, false
}
