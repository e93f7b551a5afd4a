package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eykd/mdvet-go/internal/domain"
)

var imageRE = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)`)

// Images extracts inline image targets.
func Images(lines []string) []Target {
	var targets []Target
	for i, line := range lines {
		for _, m := range imageRE.FindAllStringSubmatchIndex(line, -1) {
			targets = append(targets, Target{
				Line:    i + 1,
				Text:    line[m[2]:m[3]],
				URL:     strings.TrimSpace(line[m[4]:m[5]]),
				Context: line[m[0]:m[1]],
			})
		}
	}
	return targets
}

// CheckImages flags inline images with no alt text or an empty URL. Whether
// a local image target exists on disk is the probe layer's concern.
func CheckImages(lines []string) []domain.Issue {
	var issues []domain.Issue
	for _, img := range Images(lines) {
		if img.Text == "" {
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleMissingImageAlt,
				Severity:     domain.SeverityWarning,
				Line:         img.Line,
				Message:      "Image missing alt text (accessibility issue)",
				Context:      img.Context,
				SuggestedFix: fmt.Sprintf("![descriptive alt text](%s)", img.URL),
			})
		}
		if img.URL == "" {
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleEmptyImageURL,
				Severity:     domain.SeverityError,
				Line:         img.Line,
				Message:      "Empty image URL",
				Context:      img.Context,
				SuggestedFix: fmt.Sprintf("![%s](path/to/image.png)", img.Text),
			})
		}
	}
	return issues
}
