package checker

import (
	"regexp"
	"strings"

	"github.com/eykd/mdvet-go/internal/domain"
)

// A fixer mechanically rewrites lines to clear one rule's issues. Fixers run
// in sequence, each over the previous fixer's output, so stacked defects on
// one line resolve cleanly. All are line-count preserving except the blank
// line collapse, which runs last.
type fixer struct {
	ruleID string
	apply  func(lines []string) ([]string, []int)
}

func fixers() []fixer {
	return []fixer{
		{domain.RuleHeadingMissingSpace, fixHeadingSpace},
		{domain.RuleHeadingTrailingHashes, fixTrailingHashes},
		{domain.RuleHardTabs, fixHardTabs},
		{domain.RuleTrailingWhitespace, fixTrailingWhitespace},
		{domain.RuleMultipleBlankLines, collapseBlankRuns},
	}
}

var fixHeadingRE = regexp.MustCompile(`^(#{1,6})\s*(.*)$`)

func fixHeadingSpace(lines []string) ([]string, []int) {
	var touched []int
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line
		m := fixHeadingRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[2])
		if text == "" || strings.HasPrefix(line[len(m[1]):], " ") {
			continue
		}
		out[i] = m[1] + " " + text
		touched = append(touched, i+1)
	}
	return out, touched
}

func fixTrailingHashes(lines []string) ([]string, []int) {
	var touched []int
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line
		m := fixHeadingRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[2])
		if !strings.HasSuffix(text, "#") {
			continue
		}
		clean := strings.TrimRight(strings.TrimRight(text, "#"), " \t")
		out[i] = m[1] + " " + clean
		touched = append(touched, i+1)
	}
	return out, touched
}

func fixHardTabs(lines []string) ([]string, []int) {
	var touched []int
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line
		if strings.Contains(line, "\t") {
			out[i] = strings.ReplaceAll(line, "\t", "    ")
			touched = append(touched, i+1)
		}
	}
	return out, touched
}

func fixTrailingWhitespace(lines []string) ([]string, []int) {
	var touched []int
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line
		if strings.TrimSpace(line) == "" {
			continue
		}
		trimmed := strings.TrimRight(line, " \t")
		if trimmed != line {
			out[i] = trimmed
			touched = append(touched, i+1)
		}
	}
	return out, touched
}

// collapseBlankRuns keeps the first line of each blank run and drops the
// rest. A trailing empty element from the final newline is preserved. The
// touched line is the first dropped line of each run, matching where the
// check reports.
func collapseBlankRuns(lines []string) ([]string, []int) {
	work := lines
	artifact := false
	if n := len(work); n > 0 && work[n-1] == "" {
		artifact = true
		work = work[:n-1]
	}

	var out []string
	var touched []int
	run := 0
	for i, line := range work {
		if strings.TrimSpace(line) != "" {
			run = 0
			out = append(out, line)
			continue
		}
		run++
		if run == 1 {
			out = append(out, line)
			continue
		}
		if run == 2 {
			touched = append(touched, i+1)
		}
	}

	if artifact {
		out = append(out, "")
	}
	return out, touched
}
