// Package checker provides the application services that connect the pure
// validator to files on disk: checking documents and applying mechanical
// fixes.
package checker

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/eykd/mdvet-go/internal/domain"
	"github.com/eykd/mdvet-go/internal/textenc"
	"github.com/eykd/mdvet-go/internal/validator"
)

// ContentReader abstracts reading a file's raw bytes.
type ContentReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileWriter abstracts replacing a file's content.
type FileWriter interface {
	WriteFile(ctx context.Context, path, content string) error
}

// Locker abstracts advisory lock acquisition for mutating commands.
type Locker interface {
	TryLock(ctx context.Context) error
	Unlock() error
}

// Prober abstracts the optional link target probe.
type Prober interface {
	Probe(ctx context.Context, text, baseDir string) []domain.Issue
}

// DocumentReport pairs a checked document with its validation result.
type DocumentReport struct {
	Path string `json:"path"`
	domain.ValidationResult
}

// CheckService validates Markdown files on disk. A nil prober disables link
// target probing.
type CheckService struct {
	reader    ContentReader
	validator *validator.Validator
	prober    Prober
}

// NewCheckService creates a CheckService with the given dependencies.
func NewCheckService(reader ContentReader, v *validator.Validator, prober Prober) *CheckService {
	return &CheckService{
		reader:    reader,
		validator: v,
		prober:    prober,
	}
}

// CheckFile reads, normalizes, and validates one file. Relative link targets
// found by the prober are resolved against the file's directory.
func (s *CheckService) CheckFile(ctx context.Context, path string) (*DocumentReport, error) {
	raw, err := s.reader.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.check(ctx, path, filepath.Dir(path), raw)
}

// CheckContent normalizes and validates in-memory content. Relative link
// targets found by the prober are resolved against the working directory.
func (s *CheckService) CheckContent(ctx context.Context, name string, raw []byte) (*DocumentReport, error) {
	return s.check(ctx, name, ".", raw)
}

func (s *CheckService) check(ctx context.Context, path, baseDir string, raw []byte) (*DocumentReport, error) {
	text, err := textenc.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	result := s.validator.Validate(text)
	if s.prober != nil {
		probed := s.prober.Probe(ctx, text, baseDir)
		if len(probed) > 0 {
			result = domain.NewValidationResult(append(result.Issues, probed...))
		}
	}

	return &DocumentReport{Path: path, ValidationResult: result}, nil
}

// Report is the flattened result contract served by the HTTP and tool
// surfaces.
type Report struct {
	FileName    string         `json:"file_name"`
	TotalIssues int            `json:"total_issues"`
	Errors      int            `json:"errors"`
	Warnings    int            `json:"warnings"`
	Info        int            `json:"info"`
	Issues      []domain.Issue `json:"issues"`
	Summary     string         `json:"summary"`
}

// BuildReport flattens a validation result into the wire report.
func BuildReport(fileName string, result domain.ValidationResult) Report {
	return Report{
		FileName:    fileName,
		TotalIssues: result.Summary.Total,
		Errors:      result.Summary.Errors,
		Warnings:    result.Summary.Warnings,
		Info:        result.Summary.Info,
		Issues:      result.Issues,
		Summary:     result.SummaryLine(),
	}
}
