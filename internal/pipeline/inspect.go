package pipeline

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// snippetLength bounds Finding.Snippet in bytes.
const snippetLength = 24

// Finding is a Markdown construct found in a converted fragment.
type Finding struct {
	Kind    string // goldmark node kind, e.g. "Emphasis", "Blockquote"
	Offset  int    // byte offset in the fragment, -1 if unknown
	Snippet string // fragment text starting at Offset
}

// FragmentInspector reports Markdown constructs in converted fragments.
type FragmentInspector interface {
	Inspect(fragment string) []Finding
}

// GoldmarkInspector parses fragments with goldmark using GFM, the same
// dialect as GoldmarkPreview.
type GoldmarkInspector struct {
	md goldmark.Markdown
}

// NewGoldmarkInspector creates a GoldmarkInspector.
func NewGoldmarkInspector() *GoldmarkInspector {
	return &GoldmarkInspector{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Inspect parses fragment and returns every node other than plain text,
// paragraphs and break markers, in document order. Children of a reported
// node are not reported. An escaped fragment yields no findings unless it
// contains syntax outside the escape set, such as a leading ">" or "<tag>".
func (i *GoldmarkInspector) Inspect(fragment string) []Finding {
	source := []byte(fragment)
	doc := i.md.Parser().Parse(text.NewReader(source))

	var findings []Finding
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || allowed(n, source) {
			return ast.WalkContinue, nil
		}
		offset := firstOffset(n)
		findings = append(findings, Finding{
			Kind:    n.Kind().String(),
			Offset:  offset,
			Snippet: snippet(source, offset),
		})
		return ast.WalkSkipChildren, nil
	})
	return findings
}

func allowed(n ast.Node, source []byte) bool {
	switch node := n.(type) {
	case *ast.Document, *ast.Paragraph, *ast.TextBlock, *ast.Text, *ast.String:
		return true
	case *ast.RawHTML:
		return onlyBreaks(string(segmentsValue(node.Segments, source)))
	case *ast.HTMLBlock:
		return onlyBreaks(string(segmentsValue(node.Lines(), source)))
	}
	return false
}

func segmentsValue(segs *text.Segments, source []byte) []byte {
	var buf bytes.Buffer
	for j := 0; j < segs.Len(); j++ {
		seg := segs.At(j)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

// firstOffset returns the start of the first source segment under n.
func firstOffset(n ast.Node) int {
	switch node := n.(type) {
	case *ast.Text:
		return node.Segment.Start
	case *ast.RawHTML:
		if node.Segments.Len() > 0 {
			return node.Segments.At(0).Start
		}
	}
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off := firstOffset(c); off >= 0 {
			return off
		}
	}
	return -1
}

func snippet(source []byte, offset int) string {
	if offset < 0 || offset >= len(source) {
		return ""
	}
	end := min(offset+snippetLength, len(source))
	return string(source[offset:end])
}
