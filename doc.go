// Package txt2md converts plain text into Markdown-safe fragments.
//
// # Quick Start
//
// Convert a string:
//
//	out := txt2md.Convert("Hello *world*!\n", txt2md.SingleFeedOnly)
//	// out == `Hello \*world\*\!<br>`
//
// Convert a file:
//
//	res := txt2md.ConvertFile(ctx, "input.txt", "output.txt")
//	for _, line := range res.Status() {
//	    fmt.Println(line)
//	}
//
// # Conversion Pipeline
//
// Conversion runs two stages in order:
//
//  1. Escaping: every character of EscapeChars gets a backslash prefix.
//     Backslashes are doubled first.
//  2. Line break replacement: terminators become LineBreakMarker ("<br>")
//     according to a LineBreakPolicy.
//
// # Line Break Policies
//
// SingleFeedOnly, used by ConvertFile, replaces "\n" only, so the "\r" of a
// Windows terminator is kept. CollapseAll and PreserveParagraphs, used by
// ConvertFileAdvanced, handle "\r\n", "\n" and "\r"; PreserveParagraphs
// turns "\n\n", "\r\n\r\n" and "\r\r" into "<br><br>".
//
// # Error Handling
//
// File conversions never panic and do not return an error value. The
// returned Result carries Err, which matches the package sentinels with
// errors.Is:
//
//	res := txt2md.ConvertFile(ctx, "missing.txt", "out.txt")
//	if errors.Is(res.Err, txt2md.ErrInputNotFound) {
//	    // no output file was written
//	}
package txt2md
