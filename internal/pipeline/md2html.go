package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Preview</title>
</head>
<body>
%s</body>
</html>
`

// PreviewRenderer renders converted fragments as HTML.
type PreviewRenderer interface {
	RenderPreview(ctx context.Context, fragment string) (string, error)
}

// GoldmarkPreview renders fragments with goldmark using GFM.
type GoldmarkPreview struct {
	md goldmark.Markdown
}

// NewGoldmarkPreview creates a GoldmarkPreview.
func NewGoldmarkPreview() *GoldmarkPreview {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
		),
		// WithUnsafe() is not used: "<br>" markers go through placeholders,
		// any other raw HTML in the fragment is omitted from the preview.
	)
	return &GoldmarkPreview{md: md}
}

// RenderPreview converts a fragment to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (p *GoldmarkPreview) RenderPreview(ctx context.Context, fragment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := p.md.Convert([]byte(protectBreaks(fragment)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlTemplate, restoreBreaks(buf.String()))}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
