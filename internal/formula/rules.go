package formula

import (
	"fmt"
	"regexp"
)

// Rule maps an anchored pattern to a token class. Group selects which
// submatch becomes the token text; group 0 is the whole match.
type Rule struct {
	Pattern *regexp.Regexp
	Group   int
	Class   Class
}

// NewRule compiles pattern anchored at the scan position.
func NewRule(pattern string, group int, class Class) (Rule, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return Rule{}, fmt.Errorf("compile rule %q: %w", pattern, err)
	}
	if group < 0 || group > re.NumSubexp() {
		return Rule{}, fmt.Errorf("rule %q has no group %d", pattern, group)
	}
	return Rule{Pattern: re, Group: group, Class: class}, nil
}

// MustRule is like NewRule but panics on error. It is meant for
// package-level rule tables.
func MustRule(pattern string, group int, class Class) Rule {
	r, err := NewRule(pattern, group, class)
	if err != nil {
		panic(err)
	}
	return r
}

// RuleSet is an ordered rule table. It is walked top to bottom at every scan
// position and the first rule that matches wins, so the order of the rules is
// part of the grammar. A RuleSet is never mutated after construction and may
// be shared between goroutines.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet returns a rule set trying rules in the given order.
func NewRuleSet(rules ...Rule) *RuleSet {
	return &RuleSet{rules: append([]Rule(nil), rules...)}
}

// Len reports the number of rules.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// match tries every rule at pos. Empty matches are ignored since they would
// not advance the scan.
func (rs *RuleSet) match(input string, pos int) (Token, int, bool) {
	rest := input[pos:]
	for _, r := range rs.rules {
		loc := r.Pattern.FindStringSubmatchIndex(rest)
		if loc == nil || loc[1] == 0 {
			continue
		}
		start, end := loc[2*r.Group], loc[2*r.Group+1]
		text := ""
		if start >= 0 {
			text = rest[start:end]
		}
		return Token{Text: text, Raw: rest[:loc[1]], Class: r.Class}, pos + loc[1], true
	}
	return Token{}, pos, false
}

// Tokenizer returns a single pass tokenizer over input using this rule set.
func (rs *RuleSet) Tokenizer(input string) *Tokenizer {
	return &Tokenizer{rules: rs, input: input}
}

// nonSpace is one character that is not Unicode white space. RE2's \S only
// excludes ASCII spaces, so vertical tab, the ASCII separators, NEL and the
// Z categories are listed explicitly.
const nonSpace = `[^\s\x0b\x1c-\x1f\x{85}\p{Z}]`

// Priority order, highest first. Multi-character operators must precede the
// catch-all, and "<->" must precede "<>".
var defaultRules = NewRuleSet(
	MustRule(`[0-9.][0-9./]*`, 0, Number),
	MustRule(`\?`, 0, Number), // unknown stoichiometric quantity
	MustRule(`[a-zA-Z]+`, 0, Name),
	MustRule(`\^\((.+?)\)`, 1, Superscript),
	MustRule(`\^(`+nonSpace+`)`, 1, Superscript),
	MustRule(`[\[\]()]`, 0, Brace),
	MustRule(`<->`, 0, Char),
	MustRule(`->`, 0, Char),
	MustRule(`<>`, 0, Char),
	MustRule(`(?s).`, 0, Char),
)

// DefaultRules returns the fixed formula grammar.
func DefaultRules() *RuleSet {
	return defaultRules
}
