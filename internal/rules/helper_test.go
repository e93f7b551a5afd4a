package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/eykd/mdvet-go/internal/domain"
)

// issueRef is a compact expectation for table tests: which rule fired where.
type issueRef struct {
	ID   string
	Line int
}

func refs(issues []domain.Issue) []issueRef {
	out := make([]issueRef, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issueRef{ID: issue.RuleID, Line: issue.Line})
	}
	return out
}

// assertRefs compares fired rules and lines against expectations.
func assertRefs(t *testing.T, got []domain.Issue, want []issueRef) {
	t.Helper()
	if diff := cmp.Diff(want, refs(got), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

// assertIssues compares full issues, including messages and fixes.
func assertIssues(t *testing.T, got, want []domain.Issue) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}
