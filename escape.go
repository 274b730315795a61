package txt2md

// EscapeChars lists the characters Escape prefixes with a backslash.
const EscapeChars = "\\`*_[]()~#+-£.!"

// escapeRules must start with the backslash rule: later rules insert
// backslashes that must not be doubled again.
var escapeRules = []rule{
	{`\`, `\\`},
	{"`", "\\`"},
	{`*`, `\*`},
	{`_`, `\_`},
	{`[`, `\[`},
	{`]`, `\]`},
	{`(`, `\(`},
	{`)`, `\)`},
	{`~`, `\~`},
	{`#`, `\#`},
	{`+`, `\+`},
	{`-`, `\-`},
	{`£`, `\£`},
	{`.`, `\.`},
	{`!`, `\!`},
}

// Escape returns s with every character of EscapeChars preceded by a
// backslash. Existing backslashes are doubled.
//
// Escape is not idempotent: escaping twice doubles the backslashes added by
// the first pass.
func Escape(s string) string {
	return applyRules(s, escapeRules)
}
