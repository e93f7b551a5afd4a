package rules

import (
	"regexp"
	"strings"

	"github.com/eykd/mdvet-go/internal/domain"
)

// fenceRE matches a fence delimiter line after stripping: a run of three or
// more backticks or tildes, optionally followed by a language word.
var fenceRE = regexp.MustCompile("^(`{3,}|~{3,})(\\w*)$")

// CheckCodeBlocks tracks fenced code blocks and flags blocks that never
// close, plus lines outside fences with an odd number of inline backticks.
// A closing fence must use the same character as the opener with at least
// the opener's run length.
func CheckCodeBlocks(lines []string) []domain.Issue {
	var issues []domain.Issue
	inFence := false
	openLine := 0
	var fenceChar byte
	fenceLen := 0

	for i, line := range lines {
		num := i + 1
		stripped := strings.TrimSpace(line)

		if m := fenceRE.FindStringSubmatch(stripped); m != nil {
			run := m[1]
			if !inFence {
				inFence = true
				openLine = num
				fenceChar = run[0]
				fenceLen = len(run)
			} else if run[0] == fenceChar && len(run) >= fenceLen {
				inFence = false
			}
		}

		if !inFence {
			singles := strings.Count(line, "`") - 3*strings.Count(line, "```")
			if singles%2 != 0 && !strings.HasPrefix(stripped, "```") {
				issues = append(issues, domain.Issue{
					RuleID:       domain.RuleUnmatchedBackticks,
					Severity:     domain.SeverityWarning,
					Line:         num,
					Message:      "Possible unmatched inline code backticks",
					Context:      line,
					SuggestedFix: "Ensure backticks are properly paired",
				})
			}
		}
	}

	if inFence {
		issues = append(issues, domain.Issue{
			RuleID:       domain.RuleUnclosedCodeFence,
			Severity:     domain.SeverityError,
			Line:         openLine,
			Message:      "Unclosed fenced code block",
			Context:      lines[openLine-1],
			SuggestedFix: "Add closing fence: " + strings.Repeat(string(fenceChar), fenceLen),
		})
	}
	return issues
}
