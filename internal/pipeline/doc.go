// Package pipeline checks and renders converted fragments with Goldmark.
//
// Conversion itself lives in the root txt2md package. This package covers
// what happens to a fragment afterwards:
//   - Inspection: parse the fragment and report Markdown constructs that
//     survived escaping (GoldmarkInspector)
//   - Preview: render the fragment to a standalone HTML5 document
//     (GoldmarkPreview)
//
// Both use the same GFM dialect, so a fragment without findings renders as
// plain paragraphs in the preview.
package pipeline
