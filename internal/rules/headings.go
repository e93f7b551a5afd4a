package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eykd/mdvet-go/internal/anchor"
	"github.com/eykd/mdvet-go/internal/domain"
)

var headingRE = regexp.MustCompile(`^(#{1,6})\s*(.*)$`)

// CheckHeadings enforces ATX heading conventions: a space after the hashes,
// non-empty text, no skipped levels, no trailing hashes, unique anchors.
// The first heading is held against an implied level 0, so a document that
// opens below H1 is flagged.
func CheckHeadings(lines []string) []domain.Issue {
	var issues []domain.Issue
	prevLevel := 0
	firstSeen := make(map[string]int)

	for i, line := range lines {
		m := headingRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		num := i + 1
		hashes := m[1]
		text := strings.TrimSpace(m[2])
		level := len(hashes)

		if text != "" && !strings.HasPrefix(line[len(hashes):], " ") {
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleHeadingMissingSpace,
				Severity:     domain.SeverityWarning,
				Line:         num,
				Message:      "Missing space after heading hashes",
				Context:      line,
				SuggestedFix: hashes + " " + text,
			})
		}

		if text == "" {
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleEmptyHeading,
				Severity:     domain.SeverityWarning,
				Line:         num,
				Message:      "Empty heading text",
				Context:      line,
				SuggestedFix: "Add descriptive heading text",
			})
		}

		if level > prevLevel+1 {
			msg := fmt.Sprintf("Heading level skipped from H%d to H%d", prevLevel, level)
			if prevLevel == 0 {
				msg = fmt.Sprintf("First heading is H%d (expected H1)", level)
			}
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleHeadingLevelSkip,
				Severity:     domain.SeverityWarning,
				Line:         num,
				Message:      msg,
				Context:      line,
				SuggestedFix: strings.Repeat("#", prevLevel+1) + " " + text,
			})
		}

		if strings.HasSuffix(text, "#") {
			clean := strings.TrimRight(strings.TrimRight(text, "#"), " \t")
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleHeadingTrailingHashes,
				Severity:     domain.SeverityInfo,
				Line:         num,
				Message:      "Trailing hashes in heading (not recommended)",
				Context:      line,
				SuggestedFix: hashes + " " + clean,
			})
		}

		if slug := anchor.Slug(text); slug != "" {
			if first, ok := firstSeen[slug]; ok {
				issues = append(issues, domain.Issue{
					RuleID:       domain.RuleDuplicateHeading,
					Severity:     domain.SeverityInfo,
					Line:         num,
					Message:      fmt.Sprintf("Duplicate heading anchor %q (first used on line %d)", slug, first),
					Context:      line,
					SuggestedFix: "Make the heading text unique",
				})
			} else {
				firstSeen[slug] = num
			}
		}

		prevLevel = level
	}
	return issues
}

// headingAnchors collects the anchor slug of every heading in the document.
func headingAnchors(lines []string) map[string]bool {
	anchors := make(map[string]bool)
	for _, line := range lines {
		m := headingRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if slug := anchor.Slug(strings.TrimSpace(m[2])); slug != "" {
			anchors[slug] = true
		}
	}
	return anchors
}
