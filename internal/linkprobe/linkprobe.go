// Package linkprobe checks link and image targets that need I/O: local file
// existence and external URL reachability. It runs outside the pure
// validation core, only when explicitly requested.
package linkprobe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/eykd/mdvet-go/internal/domain"
	"github.com/eykd/mdvet-go/internal/rules"
)

// DefaultTimeout bounds each external HEAD request.
const DefaultTimeout = 5 * time.Second

// Statter reports whether a path exists on disk.
type Statter interface {
	Exists(path string) bool
}

// HTTPDoer issues HTTP requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Prober checks the targets a document links to. Relative targets are
// resolved against a base directory and checked on disk; absolute HTTP(S)
// link targets are probed with a bounded HEAD request.
type Prober struct {
	Stat    Statter
	Client  HTTPDoer
	Timeout time.Duration
}

// Probe extracts link and image targets from document text and reports the
// unreachable ones. Network failures other than timeouts are not reported.
func (p *Prober) Probe(ctx context.Context, text, baseDir string) []domain.Issue {
	lines := strings.Split(text, "\n")

	var issues []domain.Issue
	for _, link := range rules.Links(lines) {
		issues = append(issues, p.probeLink(ctx, link, baseDir)...)
	}
	for _, img := range rules.Images(lines) {
		issues = append(issues, p.probeImage(img, baseDir)...)
	}
	return issues
}

func (p *Prober) probeLink(ctx context.Context, link rules.Target, baseDir string) []domain.Issue {
	switch {
	case link.URL == "", strings.HasPrefix(link.URL, "#"):
		return nil
	case strings.HasPrefix(link.URL, "http://"), strings.HasPrefix(link.URL, "https://"):
		return p.probeExternal(ctx, link)
	case strings.HasPrefix(link.URL, "mailto:"), strings.HasPrefix(link.URL, "tel:"):
		return nil
	}

	path := filepath.Join(baseDir, strings.SplitN(link.URL, "#", 2)[0])
	if p.Stat.Exists(path) {
		return nil
	}
	return []domain.Issue{{
		RuleID:       domain.RuleBrokenLocalLink,
		Severity:     domain.SeverityError,
		Line:         link.Line,
		Message:      fmt.Sprintf("Local file not found: %s", link.URL),
		Context:      link.Context,
		SuggestedFix: fmt.Sprintf("Verify file exists at: %s", path),
	}}
}

func (p *Prober) probeImage(img rules.Target, baseDir string) []domain.Issue {
	if img.URL == "" ||
		strings.HasPrefix(img.URL, "http://") ||
		strings.HasPrefix(img.URL, "https://") ||
		strings.HasPrefix(img.URL, "data:") {
		return nil
	}

	path := filepath.Join(baseDir, img.URL)
	if p.Stat.Exists(path) {
		return nil
	}
	return []domain.Issue{{
		RuleID:       domain.RuleMissingImage,
		Severity:     domain.SeverityError,
		Line:         img.Line,
		Message:      fmt.Sprintf("Image file not found: %s", img.URL),
		Context:      img.Context,
		SuggestedFix: fmt.Sprintf("Add image at: %s", path),
	}}
}

func (p *Prober) probeExternal(ctx context.Context, link rules.Target) []domain.Issue {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, link.URL, nil)
	if err != nil {
		return nil
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return []domain.Issue{{
				RuleID:       domain.RuleLinkProbeTimeout,
				Severity:     domain.SeverityWarning,
				Line:         link.Line,
				Message:      fmt.Sprintf("Link timed out: %s", link.URL),
				Context:      link.Context,
				SuggestedFix: "Verify URL is accessible",
			}}
		}
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return []domain.Issue{{
			RuleID:       domain.RuleBrokenExternalLink,
			Severity:     domain.SeverityError,
			Line:         link.Line,
			Message:      fmt.Sprintf("Broken link (HTTP %d): %s", resp.StatusCode, link.URL),
			Context:      link.Context,
			SuggestedFix: "Update URL or remove the link",
		}}
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

// Infos lists the probe rules for display alongside the built-ins.
func Infos() []rules.Info {
	return []rules.Info{
		{ID: domain.RuleBrokenLocalLink, Severity: domain.SeverityError, Description: "Relative link target missing on disk"},
		{ID: domain.RuleMissingImage, Severity: domain.SeverityError, Description: "Relative image target missing on disk"},
		{ID: domain.RuleBrokenExternalLink, Severity: domain.SeverityError, Description: "External link answering HTTP 400 or higher"},
		{ID: domain.RuleLinkProbeTimeout, Severity: domain.SeverityWarning, Description: "External link probe timed out"},
	}
}
