// Package inline finds formula spans inside a larger text and replaces them
// with rendered markup.
//
// A span is the text between an opening "{" and the nearest following "}".
// Braces do not nest. When a trigger is set, only spans written as
// trigger + "{...}" are recognized and the trigger is consumed with the span.
package inline

import "strings"

// Match is one formula span. Start and End delimit the whole match in the
// scanned text, including the trigger and both braces.
type Match struct {
	Start   int
	End     int
	Formula string
}

type Scanner struct {
	trigger string
}

func NewScanner(trigger string) *Scanner {
	return &Scanner{trigger: trigger}
}

// Trigger returns the configured trigger prefix.
func (s *Scanner) Trigger() string {
	return s.trigger
}

// Find returns all spans of doc in order. An opening brace without a
// closing one is not a span.
func (s *Scanner) Find(doc string) []Match {
	var matches []Match
	pos := 0
	for pos < len(doc) {
		m, ok := s.next(doc, pos)
		if !ok {
			break
		}
		matches = append(matches, m)
		pos = m.End
	}
	return matches
}

// MatchAt reports whether a span starts exactly at pos.
func (s *Scanner) MatchAt(doc string, pos int) (Match, bool) {
	rest := doc[pos:]
	if !strings.HasPrefix(rest, s.trigger+"{") {
		return Match{}, false
	}
	open := len(s.trigger)
	end := strings.IndexByte(rest[open+1:], '}')
	if end < 0 {
		return Match{}, false
	}
	closeAt := open + 1 + end
	return Match{
		Start:   pos,
		End:     pos + closeAt + 1,
		Formula: rest[open+1 : closeAt],
	}, true
}

func (s *Scanner) next(doc string, pos int) (Match, bool) {
	i := strings.Index(doc[pos:], s.trigger+"{")
	if i < 0 {
		return Match{}, false
	}
	// without a closing brace here there is none for any later span either
	return s.MatchAt(doc, pos+i)
}
