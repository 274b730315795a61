package pipeline

import "strings"

// BreakMarker is the line break marker written into converted fragments.
const BreakMarker = "<br>"

// BreakPlaceholder uses a Unicode Private Use Area character. It passes
// through Goldmark unchanged (no WithUnsafe needed) and is turned back into
// a <br> tag after HTML generation.
const BreakPlaceholder = "\uE002" // U+E002: Private Use Area

// protectBreaks swaps break markers for placeholders. Placeholders already
// present in the fragment are dropped so they cannot turn into tags.
func protectBreaks(fragment string) string {
	fragment = strings.ReplaceAll(fragment, BreakPlaceholder, "")
	return strings.ReplaceAll(fragment, BreakMarker, BreakPlaceholder)
}

// restoreBreaks converts placeholders in rendered HTML back to <br> tags.
func restoreBreaks(html string) string {
	return strings.ReplaceAll(html, BreakPlaceholder, BreakMarker)
}

// onlyBreaks reports whether s holds nothing but break markers and whitespace.
func onlyBreaks(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && strings.TrimSpace(strings.ReplaceAll(s, BreakMarker, "")) == ""
}
