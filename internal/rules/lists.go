package rules

import (
	"regexp"
	"strings"

	"github.com/eykd/mdvet-go/internal/domain"
)

// listItemRE matches a list item: optional indent, an unordered marker or an
// ordered marker like "1." or "1)", then at least one space before content.
var listItemRE = regexp.MustCompile(`^(\s*)([-*+]|\d+[.)])\s+(.*)$`)

// CheckLists flags list items with odd indentation or no content. A list
// continues across blank lines; any other non-blank line ends it.
func CheckLists(lines []string) []domain.Issue {
	var issues []domain.Issue
	prevWasList := false

	for i, line := range lines {
		m := listItemRE.FindStringSubmatch(line)
		if m == nil {
			if strings.TrimSpace(line) != "" {
				prevWasList = false
			}
			continue
		}
		num := i + 1
		indent := len(m[1])
		marker := m[2]
		content := m[3]

		if prevWasList && indent > 0 && indent%2 != 0 {
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleListIndentation,
				Severity:     domain.SeverityInfo,
				Line:         num,
				Message:      "Non-standard list indentation (use 2 or 4 spaces)",
				Context:      line,
				SuggestedFix: strings.Repeat("  ", indent/2) + marker + " " + content,
			})
		}

		if strings.TrimSpace(content) == "" {
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleEmptyListItem,
				Severity:     domain.SeverityWarning,
				Line:         num,
				Message:      "Empty list item",
				Context:      line,
				SuggestedFix: "Add content or remove empty item",
			})
		}

		prevWasList = true
	}
	return issues
}
