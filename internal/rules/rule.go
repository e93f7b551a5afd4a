// Package rules implements the built-in Markdown checks. Each check is a
// stateless function over line-split document text; the validator runs the
// checks in a fixed order and aggregates the issues they emit.
package rules

import (
	"github.com/eykd/mdvet-go/internal/domain"
)

// CheckFunc inspects line-split document text and reports any issues found.
// Implementations must not retain or mutate lines.
type CheckFunc func(lines []string) []domain.Issue

// Info describes one rule a check can emit.
type Info struct {
	ID          string
	Severity    domain.Severity
	Fixable     bool
	Description string
}

// Check couples a named concern with the rules it enforces.
type Check struct {
	Name  string
	Run   CheckFunc
	Emits []Info
}

// All returns the built-in checks in execution order. The order is part of
// the output contract: issues are reported grouped by check, in this order.
func All() []Check {
	return []Check{
		{
			Name: "frontmatter",
			Run:  CheckFrontmatter,
			Emits: []Info{
				{ID: domain.RuleUnclosedFrontmatter, Severity: domain.SeverityError, Description: "Frontmatter block opened but never closed"},
				{ID: domain.RuleMalformedFrontmatter, Severity: domain.SeverityError, Description: "Frontmatter block is not valid YAML"},
			},
		},
		{
			Name: "headings",
			Run:  CheckHeadings,
			Emits: []Info{
				{ID: domain.RuleHeadingMissingSpace, Severity: domain.SeverityWarning, Fixable: true, Description: "ATX heading hashes not followed by a space"},
				{ID: domain.RuleEmptyHeading, Severity: domain.SeverityWarning, Description: "Heading with no text"},
				{ID: domain.RuleHeadingLevelSkip, Severity: domain.SeverityWarning, Description: "Heading level jumps past the next level"},
				{ID: domain.RuleHeadingTrailingHashes, Severity: domain.SeverityInfo, Fixable: true, Description: "Closed ATX style with trailing hashes"},
				{ID: domain.RuleDuplicateHeading, Severity: domain.SeverityInfo, Description: "Two headings share the same anchor"},
			},
		},
		{
			Name: "links",
			Run:  CheckLinks,
			Emits: []Info{
				{ID: domain.RuleEmptyLinkText, Severity: domain.SeverityWarning, Description: "Link with empty text"},
				{ID: domain.RuleEmptyLinkURL, Severity: domain.SeverityError, Description: "Link with empty URL"},
				{ID: domain.RuleUndefinedLinkReference, Severity: domain.SeverityError, Description: "Reference link without a matching definition"},
				{ID: domain.RuleUnbalancedLinkSyntax, Severity: domain.SeverityError, Description: "Unpaired link brackets or unclosed destination"},
				{ID: domain.RuleInvalidURLFormat, Severity: domain.SeverityError, Description: "Absolute URL that does not parse or lacks a host"},
				{ID: domain.RuleBrokenAnchorLink, Severity: domain.SeverityWarning, Description: "Anchor link to a heading that does not exist"},
			},
		},
		{
			Name: "code-blocks",
			Run:  CheckCodeBlocks,
			Emits: []Info{
				{ID: domain.RuleUnclosedCodeFence, Severity: domain.SeverityError, Description: "Fenced code block never closed"},
				{ID: domain.RuleUnmatchedBackticks, Severity: domain.SeverityWarning, Description: "Odd number of inline code backticks"},
			},
		},
		{
			Name: "lists",
			Run:  CheckLists,
			Emits: []Info{
				{ID: domain.RuleListIndentation, Severity: domain.SeverityInfo, Description: "List item with non-standard indentation"},
				{ID: domain.RuleEmptyListItem, Severity: domain.SeverityWarning, Description: "List marker with no content"},
			},
		},
		{
			Name: "images",
			Run:  CheckImages,
			Emits: []Info{
				{ID: domain.RuleMissingImageAlt, Severity: domain.SeverityWarning, Description: "Image without alt text"},
				{ID: domain.RuleEmptyImageURL, Severity: domain.SeverityError, Description: "Image with empty URL"},
			},
		},
		{
			Name: "emphasis",
			Run:  CheckEmphasis,
			Emits: []Info{
				{ID: domain.RuleUnmatchedEmphasis, Severity: domain.SeverityWarning, Description: "Unpaired bold markers"},
			},
		},
		{
			Name: "tables",
			Run:  CheckTables,
			Emits: []Info{
				{ID: domain.RuleTableColumnMismatch, Severity: domain.SeverityError, Description: "Table row column count differs from the header"},
			},
		},
		{
			Name: "whitespace",
			Run:  CheckWhitespace,
			Emits: []Info{
				{ID: domain.RuleTrailingWhitespace, Severity: domain.SeverityInfo, Fixable: true, Description: "Line ends with spaces or tabs"},
				{ID: domain.RuleHardTabs, Severity: domain.SeverityInfo, Fixable: true, Description: "Line contains tab characters"},
				{ID: domain.RuleMultipleBlankLines, Severity: domain.SeverityInfo, Fixable: true, Description: "More than one consecutive blank line"},
				{ID: domain.RuleInconsistentListMarker, Severity: domain.SeverityInfo, Description: "Unordered list mixes marker styles"},
				{ID: domain.RuleNoContent, Severity: domain.SeverityInfo, Description: "Document is empty or whitespace only"},
			},
		},
	}
}

// Catalog returns rule metadata keyed by rule ID.
func Catalog() map[string]Info {
	catalog := make(map[string]Info)
	for _, check := range All() {
		for _, info := range check.Emits {
			catalog[info.ID] = info
		}
	}
	return catalog
}
