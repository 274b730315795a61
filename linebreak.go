package txt2md

import "fmt"

// LineBreakMarker replaces line terminators in converted text.
const LineBreakMarker = "<br>"

// LineBreakPolicy selects how line terminators are replaced.
type LineBreakPolicy int

const (
	// SingleFeedOnly replaces each "\n" and leaves every "\r" in place,
	// including the "\r" of a "\r\n" pair.
	SingleFeedOnly LineBreakPolicy = iota
	// CollapseAll replaces "\r\n", "\n" and "\r" with one marker each.
	CollapseAll
	// PreserveParagraphs replaces doubled terminators with two markers,
	// then single terminators with one.
	PreserveParagraphs
)

// Policy names accepted by ParseLineBreakPolicy.
const (
	policySingleFeedOnly     = "single-feed-only"
	policyCollapseAll        = "collapse-all"
	policyPreserveParagraphs = "preserve-paragraphs"
)

const doubleMarker = LineBreakMarker + LineBreakMarker

// singleTerminatorRules consumes "\r\n" before its parts so one Windows
// terminator yields one marker.
var singleTerminatorRules = []rule{
	{"\r\n", LineBreakMarker},
	{"\n", LineBreakMarker},
	{"\r", LineBreakMarker},
}

var lineBreakRules = map[LineBreakPolicy][]rule{
	SingleFeedOnly: {
		{"\n", LineBreakMarker},
	},
	CollapseAll: singleTerminatorRules,
	PreserveParagraphs: append([]rule{
		{"\r\n\r\n", doubleMarker},
		{"\n\n", doubleMarker},
		{"\r\r", doubleMarker},
	}, singleTerminatorRules...),
}

// String returns the policy name.
func (p LineBreakPolicy) String() string {
	switch p {
	case SingleFeedOnly:
		return policySingleFeedOnly
	case CollapseAll:
		return policyCollapseAll
	case PreserveParagraphs:
		return policyPreserveParagraphs
	}
	return fmt.Sprintf("LineBreakPolicy(%d)", int(p))
}

// Valid reports whether p is a known policy.
func (p LineBreakPolicy) Valid() bool {
	_, ok := lineBreakRules[p]
	return ok
}

// ParseLineBreakPolicy parses a policy name as returned by String.
func ParseLineBreakPolicy(name string) (LineBreakPolicy, error) {
	switch name {
	case policySingleFeedOnly:
		return SingleFeedOnly, nil
	case policyCollapseAll:
		return CollapseAll, nil
	case policyPreserveParagraphs:
		return PreserveParagraphs, nil
	}
	return 0, fmt.Errorf("%w: %q (must be %s, %s, or %s)", ErrInvalidPolicy, name,
		policySingleFeedOnly, policyCollapseAll, policyPreserveParagraphs)
}

// PolicyFor returns the advanced policy for the preserveDoubleNewlines option.
func PolicyFor(preserveDoubleNewlines bool) LineBreakPolicy {
	if preserveDoubleNewlines {
		return PreserveParagraphs
	}
	return CollapseAll
}

// NormalizeLineBreaks replaces line terminators in s with LineBreakMarker
// according to p. Unknown policies return s unchanged.
//
// Doubled forms only match their exact literal ("\r\n\r\n", "\n\n", "\r\r").
// A mixed run such as "\n\r" is handled by the single-terminator rules.
func NormalizeLineBreaks(s string, p LineBreakPolicy) string {
	return applyRules(s, lineBreakRules[p])
}
