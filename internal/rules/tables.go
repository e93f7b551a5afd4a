package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eykd/mdvet-go/internal/domain"
)

// tableSeparatorRE matches header separator rows such as |---|:--:|.
var tableSeparatorRE = regexp.MustCompile(`^[\s|:-]+$`)

// CheckTables verifies that every row of a pipe table has the same column
// count as the table's first row. Separator rows are exempt. A table row is
// a line containing a pipe that starts or ends with one after stripping; a
// table ends at the first non-blank line without a pipe.
func CheckTables(lines []string) []domain.Issue {
	var issues []domain.Issue
	inTable := false
	headerCols := 0

	for i, line := range lines {
		if !strings.Contains(line, "|") {
			if inTable && strings.TrimSpace(line) != "" {
				inTable = false
			}
			continue
		}
		stripped := strings.TrimSpace(line)
		if !strings.HasPrefix(stripped, "|") && !strings.HasSuffix(stripped, "|") {
			continue
		}

		cols := countTableCells(stripped)
		if !inTable {
			inTable = true
			headerCols = cols
			continue
		}
		if cols != headerCols && !tableSeparatorRE.MatchString(stripped) {
			issues = append(issues, domain.Issue{
				RuleID:       domain.RuleTableColumnMismatch,
				Severity:     domain.SeverityError,
				Line:         i + 1,
				Message:      fmt.Sprintf("Table has inconsistent columns (expected %d, found %d)", headerCols, cols),
				Context:      line,
				SuggestedFix: fmt.Sprintf("Adjust to %d columns", headerCols),
			})
		}
	}
	return issues
}

// countTableCells counts pipe-delimited segments. Zero-width segments at the
// outer delimiters count as boundaries; whitespace-only interior segments do
// not count as cells.
func countTableCells(stripped string) int {
	cols := 0
	for _, cell := range strings.Split(stripped, "|") {
		if cell == "" || strings.TrimSpace(cell) != "" {
			cols++
		}
	}
	return cols
}
