package frontmatter

import (
	"errors"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		wantBlock   bool
		wantContent string
		wantEndLine int
		wantErr     bool
	}{
		{
			name:  "no frontmatter",
			lines: []string{"# Title", "", "Body text."},
		},
		{
			name:  "empty document",
			lines: []string{""},
		},
		{
			name:  "no lines",
			lines: nil,
		},
		{
			name:        "simple frontmatter",
			lines:       []string{"---", "title: Test", "---", "", "Body."},
			wantBlock:   true,
			wantContent: "title: Test",
			wantEndLine: 3,
		},
		{
			name:        "multi-line frontmatter",
			lines:       []string{"---", "title: Test", "tags:", "  - go", "---", "Body."},
			wantBlock:   true,
			wantContent: "title: Test\ntags:\n  - go",
			wantEndLine: 5,
		},
		{
			name:        "empty frontmatter block",
			lines:       []string{"---", "---", "Body."},
			wantBlock:   true,
			wantContent: "",
			wantEndLine: 2,
		},
		{
			name:        "first closing delimiter wins",
			lines:       []string{"---", "title: X", "---", "text", "---"},
			wantBlock:   true,
			wantContent: "title: X",
			wantEndLine: 3,
		},
		{
			name:  "delimiter mid-document is not frontmatter",
			lines: []string{"Intro paragraph.", "---", "More text."},
		},
		{
			name:  "single delimiter line is a thematic break",
			lines: []string{"---"},
		},
		{
			name:    "unclosed frontmatter",
			lines:   []string{"---", "title: Test", "", "Body with no closing delimiter."},
			wantErr: true,
		},
		{
			name:    "indented delimiter does not close",
			lines:   []string{"---", "title: Test", "  ---", "Body."},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := Detect(tt.lines)

			if tt.wantErr {
				if !errors.Is(err, ErrUnclosed) {
					t.Fatalf("Detect() error = %v, want ErrUnclosed", err)
				}
				if block != nil {
					t.Errorf("Detect() = %+v, want nil", block)
				}
				return
			}
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if !tt.wantBlock {
				if block != nil {
					t.Fatalf("Detect() = %+v, want nil", block)
				}
				return
			}
			if block == nil {
				t.Fatal("Detect() = nil, want block")
			}
			if block.Content != tt.wantContent {
				t.Errorf("Content = %q, want %q", block.Content, tt.wantContent)
			}
			if block.EndLine != tt.wantEndLine {
				t.Errorf("EndLine = %d, want %d", block.EndLine, tt.wantEndLine)
			}
		})
	}
}

func TestBlock_Validate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "valid mapping",
			content: "title: Test\ntags:\n  - go\n  - markdown",
		},
		{
			name:    "empty content",
			content: "",
		},
		{
			name:    "scalar content",
			content: "just a string",
		},
		{
			name:    "comments preserved as valid",
			content: "# build metadata\ntitle: Test",
		},
		{
			name:    "unclosed flow sequence",
			content: "tags: [go, markdown",
			wantErr: true,
		},
		{
			name:    "tab indentation",
			content: "title: Test\nnested:\n\tkey: value",
			wantErr: true,
		},
		{
			name:    "duplicate keys",
			content: "title: One\ntitle: Two",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := &Block{Content: tt.content}
			err := block.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
