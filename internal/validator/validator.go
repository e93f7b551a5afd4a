// Package validator runs the built-in Markdown checks in a fixed order and
// aggregates their issues into a ValidationResult.
package validator

import (
	"sort"
	"strings"

	"github.com/eykd/mdvet-go/internal/domain"
	"github.com/eykd/mdvet-go/internal/rules"
)

// Validator holds an ordered check sequence and per-rule enablement. The
// zero value is not usable; construct with New.
type Validator struct {
	checks            []rules.Check
	only              map[string]bool
	overrides         map[string]bool
	disabledByDefault bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithOnly enables exactly the named rules and disables everything else.
func WithOnly(ids ...string) Option {
	return func(v *Validator) {
		v.only = make(map[string]bool, len(ids))
		for _, id := range ids {
			v.only[id] = true
		}
	}
}

// WithDisabledRules disables the named rules.
func WithDisabledRules(ids ...string) Option {
	return func(v *Validator) {
		for _, id := range ids {
			v.overrides[id] = false
		}
	}
}

// WithRules applies per-rule enablement overrides.
func WithRules(enabled map[string]bool) Option {
	return func(v *Validator) {
		for id, on := range enabled {
			v.overrides[id] = on
		}
	}
}

// WithDisabledByDefault disables every rule that is not explicitly enabled
// through WithRules.
func WithDisabledByDefault() Option {
	return func(v *Validator) {
		v.disabledByDefault = true
	}
}

// WithChecks replaces the built-in check sequence.
func WithChecks(checks ...rules.Check) Option {
	return func(v *Validator) {
		v.checks = checks
	}
}

// New builds a Validator over the built-in checks.
func New(opts ...Option) *Validator {
	v := &Validator{
		checks:    rules.All(),
		overrides: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every enabled check over text and aggregates the issues.
// It never fails: document defects become issues, and unrecognized input is
// simply text that happens to produce them. Issues are grouped by check in
// registration order and sorted by line within each check.
func (v *Validator) Validate(text string) domain.ValidationResult {
	lines := strings.Split(text, "\n")

	var issues []domain.Issue
	for _, check := range v.checks {
		found := v.keepEnabled(check.Run(lines))
		sort.SliceStable(found, func(i, j int) bool {
			return found[i].Line < found[j].Line
		})
		issues = append(issues, found...)
	}
	return domain.NewValidationResult(issues)
}

// RuleInfo describes one built-in rule and whether this validator runs it.
type RuleInfo struct {
	ID          string          `json:"id"`
	Severity    domain.Severity `json:"severity"`
	Fixable     bool            `json:"fixable"`
	Enabled     bool            `json:"enabled"`
	Description string          `json:"description"`
}

// Rules lists every rule of the check sequence in registration order.
func (v *Validator) Rules() []RuleInfo {
	var out []RuleInfo
	for _, check := range v.checks {
		for _, info := range check.Emits {
			out = append(out, RuleInfo{
				ID:          info.ID,
				Severity:    info.Severity,
				Fixable:     info.Fixable,
				Enabled:     v.enabled(info.ID),
				Description: info.Description,
			})
		}
	}
	return out
}

func (v *Validator) keepEnabled(issues []domain.Issue) []domain.Issue {
	kept := issues[:0:0]
	for _, issue := range issues {
		if v.enabled(issue.RuleID) {
			kept = append(kept, issue)
		}
	}
	return kept
}

func (v *Validator) enabled(id string) bool {
	if len(v.only) > 0 {
		return v.only[id]
	}
	if on, ok := v.overrides[id]; ok {
		return on
	}
	return !v.disabledByDefault
}

// Validate runs the default rule set over text. Each call constructs its own
// validator, so the package holds no shared state.
func Validate(text string) domain.ValidationResult {
	return New().Validate(text)
}
