package txt2md

import "strings"

// rule is a literal substitution. Rules are applied in slice order and each
// one runs over the whole text before the next one starts, so a rule never
// sees text it would have matched before an earlier rule rewrote it.
type rule struct {
	old string
	new string
}

// applyRules runs rules over s in order.
func applyRules(s string, rules []rule) string {
	for _, r := range rules {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	return s
}
