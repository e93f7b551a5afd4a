package rules

import (
	"fmt"
	"strings"

	"github.com/eykd/mdvet-go/internal/domain"
)

// CheckWhitespace enforces whitespace and formatting conventions. When the
// document has no content at all, that is the only issue reported.
func CheckWhitespace(lines []string) []domain.Issue {
	if isBlankDocument(lines) {
		return []domain.Issue{{
			RuleID:       domain.RuleNoContent,
			Severity:     domain.SeverityInfo,
			Line:         0,
			Message:      "Document has no content",
			SuggestedFix: "Add Markdown content",
		}}
	}

	var issues []domain.Issue
	issues = append(issues, trailingWhitespaceIssues(lines)...)
	issues = append(issues, hardTabIssues(lines)...)
	issues = append(issues, blankRunIssues(lines)...)
	issues = append(issues, listMarkerIssues(lines)...)
	return issues
}

func isBlankDocument(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

func trailingWhitespaceIssues(lines []string) []domain.Issue {
	var issues []domain.Issue
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		trimmed := strings.TrimRight(line, " \t")
		if trimmed != line {
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleTrailingWhitespace,
				Severity:     domain.SeverityInfo,
				Line:         i + 1,
				Message:      "Trailing whitespace",
				Context:      line,
				SuggestedFix: trimmed,
			})
		}
	}
	return issues
}

func hardTabIssues(lines []string) []domain.Issue {
	var issues []domain.Issue
	for i, line := range lines {
		if strings.Contains(line, "\t") {
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleHardTabs,
				Severity:     domain.SeverityInfo,
				Line:         i + 1,
				Message:      "Hard tab characters",
				Context:      line,
				SuggestedFix: strings.ReplaceAll(line, "\t", "    "),
			})
		}
	}
	return issues
}

// blankRunIssues reports each run of more than one blank line once, at the
// first extra line. A single trailing empty element from the final newline
// is not a line.
func blankRunIssues(lines []string) []domain.Issue {
	effective := lines
	if n := len(effective); n > 0 && effective[n-1] == "" {
		effective = effective[:n-1]
	}

	var issues []domain.Issue
	run := 0
	for i, line := range effective {
		if strings.TrimSpace(line) != "" {
			run = 0
			continue
		}
		run++
		if run == 2 {
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleMultipleBlankLines,
				Severity:     domain.SeverityInfo,
				Line:         i + 1,
				Message:      "Multiple consecutive blank lines",
				Context:      line,
				SuggestedFix: "Collapse to a single blank line",
			})
		}
	}
	return issues
}

// listMarkerIssues flags unordered list items whose marker differs from the
// first marker used at the same indent within the current list block.
func listMarkerIssues(lines []string) []domain.Issue {
	var issues []domain.Issue
	markers := make(map[int]string)

	for i, line := range lines {
		m := listItemRE.FindStringSubmatch(line)
		if m == nil {
			if strings.TrimSpace(line) != "" {
				markers = make(map[int]string)
			}
			continue
		}
		marker := m[2]
		if marker != "-" && marker != "*" && marker != "+" {
			continue
		}
		indent := len(m[1])
		first, ok := markers[indent]
		if !ok {
			markers[indent] = marker
			continue
		}
		if marker != first {
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleInconsistentListMarker,
				Severity:     domain.SeverityInfo,
				Line:         i + 1,
				Message:      fmt.Sprintf("List marker %q differs from %q used above", marker, first),
				Context:      line,
				SuggestedFix: m[1] + first + line[len(m[1])+len(marker):],
			})
		}
	}
	return issues
}
