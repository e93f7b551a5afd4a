package rules

import (
	"fmt"
	"strings"

	"github.com/eykd/mdvet-go/internal/domain"
	"github.com/eykd/mdvet-go/internal/frontmatter"
)

// CheckFrontmatter validates the leading YAML frontmatter block, when one is
// present. Documents without frontmatter pass untouched.
func CheckFrontmatter(lines []string) []domain.Issue {
	block, err := frontmatter.Detect(lines)
	if err != nil {
		return []domain.Issue{{
			RuleID:       domain.RuleUnclosedFrontmatter,
			Severity:     domain.SeverityError,
			Line:         1,
			Message:      "Frontmatter block is never closed",
			Context:      lines[0],
			SuggestedFix: "Add a closing --- delimiter",
		}}
	}
	if block == nil {
		return nil
	}
	if err := block.Validate(); err != nil {
		context := strings.SplitN(block.Content, "\n", 2)[0]
		return []domain.Issue{{
			RuleID:       domain.RuleMalformedFrontmatter,
			Severity:     domain.SeverityError,
			Line:         1,
			Message:      fmt.Sprintf("Frontmatter is not valid YAML: %v", err),
			Context:      context,
			SuggestedFix: "Fix the YAML syntax between the --- delimiters",
		}}
	}
	return nil
}
