package domain

import (
	"errors"
	"fmt"
)

// Severity indicates how severe a validation issue is.
type Severity string

const (
	// SeverityError indicates a structural defect that must be fixed.
	SeverityError Severity = "error"
	// SeverityWarning indicates a defect that should be fixed.
	SeverityWarning Severity = "warning"
	// SeverityInfo indicates a stylistic suggestion.
	SeverityInfo Severity = "info"
)

// ErrInvalidInput is returned by boundary layers when the supplied input is
// not text. It is the only failure mode on the validation path; document
// defects become Issues, never errors.
var ErrInvalidInput = errors.New("input is not text")

// Rule ID constants identify the check that produced an issue.
const (
	RuleUnclosedFrontmatter    = "unclosed-frontmatter"
	RuleMalformedFrontmatter   = "malformed-frontmatter"
	RuleHeadingMissingSpace    = "heading-missing-space"
	RuleEmptyHeading           = "empty-heading"
	RuleHeadingLevelSkip       = "heading-level-skip"
	RuleHeadingTrailingHashes  = "heading-trailing-hashes"
	RuleDuplicateHeading       = "duplicate-heading"
	RuleEmptyLinkText          = "empty-link-text"
	RuleEmptyLinkURL           = "empty-link-url"
	RuleUndefinedLinkReference = "undefined-link-reference"
	RuleUnbalancedLinkSyntax   = "unbalanced-link-syntax"
	RuleInvalidURLFormat       = "invalid-url-format"
	RuleBrokenAnchorLink       = "broken-anchor-link"
	RuleUnclosedCodeFence      = "unclosed-code-fence"
	RuleUnmatchedBackticks     = "unmatched-backticks"
	RuleListIndentation        = "list-indentation"
	RuleEmptyListItem          = "empty-list-item"
	RuleMissingImageAlt        = "missing-image-alt"
	RuleEmptyImageURL          = "empty-image-url"
	RuleUnmatchedEmphasis      = "unmatched-emphasis"
	RuleTableColumnMismatch    = "table-column-mismatch"
	RuleTrailingWhitespace     = "trailing-whitespace"
	RuleHardTabs               = "hard-tabs"
	RuleMultipleBlankLines     = "multiple-blank-lines"
	RuleInconsistentListMarker = "inconsistent-list-marker"
	RuleNoContent              = "no-content"
)

// Rule ID constants for link probe checks. These are reported by the probe
// layer, not the pure validation core.
const (
	RuleBrokenLocalLink    = "broken-local-link"
	RuleMissingImage       = "missing-image"
	RuleBrokenExternalLink = "broken-external-link"
	RuleLinkProbeTimeout   = "link-probe-timeout"
)

// Issue represents one Markdown defect found during validation.
// Line is 1-based; 0 means the issue applies to the whole document.
type Issue struct {
	RuleID       string   `json:"rule_id"`
	Severity     Severity `json:"severity"`
	Line         int      `json:"line_number"`
	Message      string   `json:"message"`
	Context      string   `json:"context,omitempty"`
	SuggestedFix string   `json:"suggested_fix,omitempty"`
}

// Summary holds per-severity issue counts for one validation run.
type Summary struct {
	Total    int `json:"total_issues"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// ValidationResult is the ordered aggregate of issues from one validation
// run. Issues are grouped by rule in registration order; within a rule they
// are sorted by ascending line number.
type ValidationResult struct {
	Issues  []Issue `json:"issues"`
	Summary Summary `json:"summary"`
}

// NewValidationResult builds a result from issues, computing summary counts.
// A nil issue slice yields an empty (non-nil) Issues field.
func NewValidationResult(issues []Issue) ValidationResult {
	if issues == nil {
		issues = []Issue{}
	}
	return ValidationResult{
		Issues:  issues,
		Summary: Summarize(issues),
	}
}

// Summarize counts issues by severity.
func Summarize(issues []Issue) Summary {
	s := Summary{Total: len(issues)}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		case SeverityInfo:
			s.Info++
		}
	}
	return s
}

// SummaryLine renders the one-line human-readable summary.
func (r ValidationResult) SummaryLine() string {
	return fmt.Sprintf("Found %d errors, %d warnings, and %d info messages",
		r.Summary.Errors, r.Summary.Warnings, r.Summary.Info)
}

// HasBlockingIssues reports whether the result contains any error- or
// warning-level issues. Info-level issues are advisory only.
func (r ValidationResult) HasBlockingIssues() bool {
	return r.Summary.Errors > 0 || r.Summary.Warnings > 0
}
