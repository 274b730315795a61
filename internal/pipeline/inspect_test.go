package pipeline

import (
	"strings"
	"testing"
)

func TestGoldmarkInspector_Inspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fragment  string
		wantKinds []string // empty = no findings
	}{
		{
			name:     "empty fragment",
			fragment: "",
		},
		{
			name:     "plain text",
			fragment: "Hello world",
		},
		{
			name:     "escaped emphasis with break",
			fragment: `Hello \*world\*\!<br>`,
		},
		{
			name:     "escaped link, heading and list markers",
			fragment: `\# Title<br>\[a\]\(b\)<br>\- item<br>1\. one`,
		},
		{
			name:     "break markers only",
			fragment: "<br>",
		},
		{
			name:     "paragraph markers",
			fragment: "a<br><br>b",
		},
		{
			name:      "emphasis",
			fragment:  "*hi*",
			wantKinds: []string{"Emphasis"},
		},
		{
			name:      "heading",
			fragment:  "# Title",
			wantKinds: []string{"Heading"},
		},
		{
			name:      "list",
			fragment:  "- item",
			wantKinds: []string{"List"},
		},
		{
			name:      "code span",
			fragment:  "`code`",
			wantKinds: []string{"CodeSpan"},
		},
		{
			name:      "link",
			fragment:  "[a](b)",
			wantKinds: []string{"Link"},
		},
		{
			name:      "blockquote",
			fragment:  "> quoted",
			wantKinds: []string{"Blockquote"},
		},
		{
			name:      "indented code",
			fragment:  "    indented",
			wantKinds: []string{"CodeBlock"},
		},
		{
			name:      "inline tag",
			fragment:  "a <span>x</span>",
			wantKinds: []string{"RawHTML", "RawHTML"},
		},
	}

	inspector := NewGoldmarkInspector()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			findings := inspector.Inspect(tt.fragment)

			kinds := make([]string, 0, len(findings))
			for _, f := range findings {
				kinds = append(kinds, f.Kind)
			}
			if strings.Join(kinds, ",") != strings.Join(tt.wantKinds, ",") {
				t.Errorf("Inspect(%q) kinds = %v, want %v", tt.fragment, kinds, tt.wantKinds)
			}
		})
	}
}

func TestGoldmarkInspector_FindingOffset(t *testing.T) {
	t.Parallel()

	fragment := "text <b>bold</b>"
	findings := NewGoldmarkInspector().Inspect(fragment)
	if len(findings) == 0 {
		t.Fatalf("Inspect(%q) returned no findings", fragment)
	}

	first := findings[0]
	if first.Offset != strings.Index(fragment, "<b>") {
		t.Errorf("Offset = %d, want %d", first.Offset, strings.Index(fragment, "<b>"))
	}
	if !strings.HasPrefix(first.Snippet, "<b>") {
		t.Errorf("Snippet = %q, want prefix %q", first.Snippet, "<b>")
	}
}

func TestOnlyBreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"<br>", true},
		{"<br><br>", true},
		{" <br>\n", true},
		{"", false},
		{"<br/>", false},
		{"<span>", false},
		{"<br>x", false},
	}

	for _, tt := range tests {
		if got := onlyBreaks(tt.input); got != tt.expected {
			t.Errorf("onlyBreaks(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestSnippet(t *testing.T) {
	t.Parallel()

	source := []byte(strings.Repeat("x", 40))
	if got := snippet(source, 0); len(got) != snippetLength {
		t.Errorf("snippet length = %d, want %d", len(got), snippetLength)
	}
	if got := snippet(source, 35); got != "xxxxx" {
		t.Errorf("snippet near end = %q, want %q", got, "xxxxx")
	}
	if got := snippet(source, -1); got != "" {
		t.Errorf("snippet(-1) = %q, want empty", got)
	}
	if got := snippet(source, 40); got != "" {
		t.Errorf("snippet(len) = %q, want empty", got)
	}
}
