package rules

import (
	"testing"

	"github.com/eykd/mdvet-go/internal/domain"
)

func TestCheckLists(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []issueRef
	}{
		{
			name:  "well formed list",
			lines: []string{"- one", "- two", "  - nested", "    - deeper"},
			want:  nil,
		},
		{
			name:  "ordered list",
			lines: []string{"1. one", "2. two", "3) three"},
			want:  nil,
		},
		{
			name:  "odd indentation",
			lines: []string{"- one", "   - three spaces"},
			want:  []issueRef{{domain.RuleListIndentation, 2}},
		},
		{
			name:  "lone indented item is not measured",
			lines: []string{"   - floating"},
			want:  nil,
		},
		{
			name:  "empty item",
			lines: []string{"- one", "- "},
			want:  []issueRef{{domain.RuleEmptyListItem, 2}},
		},
		{
			name:  "empty ordered item",
			lines: []string{"1. "},
			want:  []issueRef{{domain.RuleEmptyListItem, 1}},
		},
		{
			name:  "paragraph resets list state",
			lines: []string{"- one", "a paragraph", "   - odd but fresh"},
			want:  nil,
		},
		{
			name:  "blank line keeps list state",
			lines: []string{"- one", "", "   - three spaces"},
			want:  []issueRef{{domain.RuleListIndentation, 3}},
		},
		{
			name:  "dash without trailing space is not a list",
			lines: []string{"-not a list"},
			want:  nil,
		},
		{
			name:  "thematic break is not a list",
			lines: []string{"---"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRefs(t, CheckLists(tt.lines), tt.want)
		})
	}
}

func TestCheckLists_IndentationFix(t *testing.T) {
	got := CheckLists([]string{"- one", "   - three spaces"})

	assertIssues(t, got, []domain.Issue{{
		RuleID:       domain.RuleListIndentation,
		Severity:     domain.SeverityInfo,
		Line:         2,
		Message:      "Non-standard list indentation (use 2 or 4 spaces)",
		Context:      "   - three spaces",
		SuggestedFix: "  - three spaces",
	}})
}
