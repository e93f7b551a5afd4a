package rules

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/eykd/mdvet-go/internal/anchor"
	"github.com/eykd/mdvet-go/internal/domain"
)

var (
	inlineLinkRE = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	refLinkRE    = regexp.MustCompile(`\[([^\]]+)\]\[([^\]]*)\]`)
	refDefRE     = regexp.MustCompile(`^\[([^\]]+)\]:\s*(.+)$`)
)

// Target is a link or image destination extracted from a document. Text
// holds the link text or image alt text as written; URL is trimmed.
type Target struct {
	Line    int
	Text    string
	URL     string
	Context string
}

// Links extracts inline link targets, skipping image syntax.
func Links(lines []string) []Target {
	var targets []Target
	for i, line := range lines {
		for _, m := range inlineLinkRE.FindAllStringSubmatchIndex(line, -1) {
			if m[0] > 0 && line[m[0]-1] == '!' {
				continue
			}
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

// CheckLinks validates inline and reference link syntax. Inline image syntax
// is excluded here; the image check owns it. Relative targets and non-HTTP
// schemes are left to the link probe layer, which can touch disk and network.
func CheckLinks(lines []string) []domain.Issue {
	var issues []domain.Issue

	refDefs := make(map[string]bool)
	for _, line := range lines {
		if m := refDefRE.FindStringSubmatch(line); m != nil {
			refDefs[strings.ToLower(m[1])] = true
		}
	}
	anchors := headingAnchors(lines)

	for _, link := range Links(lines) {
		if link.Text == "" {
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleEmptyLinkText,
				Severity:     domain.SeverityWarning,
				Line:         link.Line,
				Message:      "Empty link text",
				Context:      link.Context,
				SuggestedFix: fmt.Sprintf("[descriptive text](%s)", link.URL),
			})
		}
		if link.URL == "" {
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleEmptyLinkURL,
				Severity:     domain.SeverityError,
				Line:         link.Line,
				Message:      "Empty URL in link",
				Context:      link.Context,
				SuggestedFix: fmt.Sprintf("[%s](https://example.com)", link.Text),
			})
			continue
		}
		issues = append(issues, checkTarget(link, anchors)...)
	}

	for i, line := range lines {
		num := i + 1
		for _, m := range refLinkRE.FindAllStringSubmatch(line, -1) {
			refID := strings.ToLower(m[2])
			if refID == "" {
				refID = strings.ToLower(m[1])
			}
			if !refDefs[refID] {
				issues = append(issues, domain.Issue{
					RuleID:       domain.RuleUndefinedLinkReference,
					Severity:     domain.SeverityError,
					Line:         num,
					Message:      fmt.Sprintf("Undefined link reference: [%s]", refID),
					Context:      m[0],
					SuggestedFix: fmt.Sprintf("Add reference definition: [%s]: https://example.com", refID),
				})
			}
		}
	}

	for i, line := range lines {
		if issue := unbalancedLinkIssue(i+1, line); issue != nil {
			issues = append(issues, *issue)
		}
	}
	return issues
}

// checkTarget validates a link destination that needs no I/O: document
// anchors and absolute HTTP(S) URL syntax.
func checkTarget(link Target, anchors map[string]bool) []domain.Issue {
	switch {
	case strings.HasPrefix(link.URL, "#"):
		name := link.URL[1:]
		if name == "" || anchors[anchor.Slug(name)] {
			return nil
		}
		return []domain.Issue{{
			RuleID:       domain.RuleBrokenAnchorLink,
			Severity:     domain.SeverityWarning,
			Line:         link.Line,
			Message:      fmt.Sprintf("Anchor not found in document: #%s", name),
			Context:      link.Context,
			SuggestedFix: "Link to an existing heading anchor",
		}}
	case strings.HasPrefix(link.URL, "http://") || strings.HasPrefix(link.URL, "https://"):
		if u, err := url.Parse(link.URL); err != nil || u.Host == "" {
			return []domain.Issue{{
				RuleID:       domain.RuleInvalidURLFormat,
				Severity:     domain.SeverityError,
				Line:         link.Line,
				Message:      fmt.Sprintf("Invalid URL format: %s", link.URL),
				Context:      link.Context,
				SuggestedFix: "Use a valid absolute URL",
			}}
		}
	}
	return nil
}

// unbalancedLinkIssue reports bracket or destination imbalance on one line,
// at most once per line. Inline code spans are ignored and fence delimiter
// lines are skipped.
func unbalancedLinkIssue(num int, line string) *domain.Issue {
	stripped := strings.TrimSpace(line)
	if strings.HasPrefix(stripped, "```") || strings.HasPrefix(stripped, "~~~") {
		return nil
	}
	scan := inlineCodeRE.ReplaceAllString(line, "")

	if strings.Count(scan, "[") != strings.Count(scan, "]") {
		return &domain.Issue{
			RuleID:       domain.RuleUnbalancedLinkSyntax,
			Severity:     domain.SeverityError,
			Line:         num,
			Message:      "Unbalanced square brackets in link syntax",
			Context:      line,
			SuggestedFix: "Pair every [ with a ]",
		}
	}

	pending := 0
	for j := 0; j < len(scan); j++ {
		switch {
		case scan[j] == ']' && j+1 < len(scan) && scan[j+1] == '(':
			pending++
			j++
		case scan[j] == ')' && pending > 0:
			pending--
		}
	}
	if pending > 0 {
		return &domain.Issue{
			RuleID:       domain.RuleUnbalancedLinkSyntax,
			Severity:     domain.SeverityError,
			Line:         num,
			Message:      "Unclosed link destination",
			Context:      line,
			SuggestedFix: "Close the link destination with )",
		}
	}
	return nil
}
