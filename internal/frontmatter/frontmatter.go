// Package frontmatter locates and validates YAML frontmatter blocks.
package frontmatter

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter marks the start and end of a frontmatter block.
const Delimiter = "---"

// ErrUnclosed is returned when a document opens a frontmatter block that
// never closes.
var ErrUnclosed = errors.New("unclosed frontmatter")

// Block is a frontmatter block found at the top of a document.
type Block struct {
	// Content holds the raw YAML between the delimiters.
	Content string
	// EndLine is the 1-based line number of the closing delimiter.
	EndLine int
}

// Detect scans line-split document text for a leading frontmatter block.
// It returns (nil, nil) when the document has no frontmatter and ErrUnclosed
// when the opening delimiter is never matched. A document consisting of a
// single "---" line is a thematic break, not frontmatter.
func Detect(lines []string) (*Block, error) {
	if len(lines) < 2 || lines[0] != Delimiter {
		return nil, nil
	}
	for i := 1; i < len(lines); i++ {
		if lines[i] == Delimiter {
			return &Block{
				Content: strings.Join(lines[1:i], "\n"),
				EndLine: i + 1,
			}, nil
		}
	}
	return nil, ErrUnclosed
}

// Validate parses the block content as YAML.
func (b *Block) Validate() error {
	var doc any
	return yaml.Unmarshal([]byte(b.Content), &doc)
}
