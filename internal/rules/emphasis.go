package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eykd/mdvet-go/internal/domain"
)

// inlineCodeRE matches an inline code span. Link and emphasis checks strip
// these before counting markers.
var inlineCodeRE = regexp.MustCompile("`[^`]+`")

// CheckEmphasis flags lines with an odd number of ** or __ bold markers.
// Fence delimiter lines are skipped and inline code spans are ignored.
func CheckEmphasis(lines []string) []domain.Issue {
	var issues []domain.Issue
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "```") || strings.HasPrefix(stripped, "~~~") {
			continue
		}
		num := i + 1
		scan := inlineCodeRE.ReplaceAllString(line, "")

		for _, marker := range []string{"**", "__"} {
			if strings.Count(scan, marker)%2 != 0 {
				issues = append(issues, domain.Issue{
					RuleID:       domain.RuleUnmatchedEmphasis,
					Severity:     domain.SeverityWarning,
					Line:         num,
					Message:      fmt.Sprintf("Possibly unmatched bold markers (%s)", marker),
					Context:      line,
					SuggestedFix: fmt.Sprintf("Ensure %s markers are properly paired", marker),
				})
			}
		}
	}
	return issues
}
