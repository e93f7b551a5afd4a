package checker

import (
	"context"
	"fmt"
	"strings"

	"github.com/eykd/mdvet-go/internal/textenc"
)

// Fix records the lines one rule's transform touched in a file.
type Fix struct {
	RuleID string `json:"rule_id"`
	Lines  []int  `json:"lines"`
}

// FixOutcome describes the planned or applied changes for one file.
type FixOutcome struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
	Fixes   []Fix  `json:"fixes,omitempty"`
}

// FixResult aggregates fix outcomes across one run.
type FixResult struct {
	Files   []FixOutcome `json:"files"`
	Applied bool         `json:"applied"`
}

// FixService rewrites files to clear mechanically fixable issues: heading
// spacing, trailing hashes, hard tabs, trailing whitespace, and runs of
// blank lines.
type FixService struct {
	reader ContentReader
	writer FileWriter
	locker Locker
}

// NewFixService creates a FixService with the given dependencies.
func NewFixService(reader ContentReader, writer FileWriter, locker Locker) *FixService {
	return &FixService{
		reader: reader,
		writer: writer,
		locker: locker,
	}
}

// Fix plans fixes for each file and, when apply is true, writes changed
// content back under an advisory lock. Line endings are normalized to LF in
// rewritten files.
func (s *FixService) Fix(ctx context.Context, paths []string, apply bool) (*FixResult, error) {
	if apply {
		if err := s.locker.TryLock(ctx); err != nil {
			return nil, err
		}
		defer s.locker.Unlock()
	}

	result := &FixResult{Applied: apply}
	for _, path := range paths {
		outcome, fixed, err := s.planFile(ctx, path)
		if err != nil {
			return nil, err
		}
		if apply && outcome.Changed {
			if err := s.writer.WriteFile(ctx, path, fixed); err != nil {
				return nil, err
			}
		}
		result.Files = append(result.Files, *outcome)
	}
	return result, nil
}

// planFile computes the fixed content of one file without writing it.
func (s *FixService) planFile(ctx context.Context, path string) (*FixOutcome, string, error) {
	raw, err := s.reader.ReadFile(ctx, path)
	if err != nil {
		return nil, "", err
	}
	text, err := textenc.Normalize(raw)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	outcome := &FixOutcome{Path: path}

	lines := strings.Split(text, "\n")
	if blankDocument(lines) {
		return outcome, text, nil
	}

	for _, f := range fixers() {
		var touched []int
		lines, touched = f.apply(lines)
		if len(touched) > 0 {
			outcome.Fixes = append(outcome.Fixes, Fix{RuleID: f.ruleID, Lines: touched})
		}
	}

	fixed := strings.Join(lines, "\n")
	outcome.Changed = fixed != text
	return outcome, fixed, nil
}

func blankDocument(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}
