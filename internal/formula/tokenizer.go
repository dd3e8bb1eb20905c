package formula

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// ErrNoMatchingToken is returned when no rule matches at the scan position.
// It cannot happen with DefaultRules, whose last rule accepts any character.
var ErrNoMatchingToken = errors.New("no matching token")

// NoMatchingTokenError reports where a rule set without a catch-all rule
// stopped.
type NoMatchingTokenError struct {
	Pos     int
	Preview string
}

func (e *NoMatchingTokenError) Error() string {
	return fmt.Sprintf("no matching token at offset %d, string starts as: %q", e.Pos, e.Preview)
}

func (e *NoMatchingTokenError) Unwrap() error {
	return ErrNoMatchingToken
}

// TokenSource is a pull-based token stream. Next returns io.EOF once the
// stream is exhausted.
type TokenSource interface {
	Next() (Token, error)
}

// Tokenizer scans a formula left to right. It is single pass and cannot be
// restarted; create a new one for every input.
type Tokenizer struct {
	rules *RuleSet
	input string
	pos   int
	err   error
}

// NewTokenizer creates a tokenizer for input using DefaultRules.
func NewTokenizer(input string) *Tokenizer {
	return defaultRules.Tokenizer(input)
}

// Next returns the next token. After the last token it returns io.EOF, and
// after a failure it keeps returning the same error.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	if t.pos >= len(t.input) {
		t.err = io.EOF
		return Token{}, t.err
	}

	tok, end, ok := t.rules.match(t.input, t.pos)
	if !ok {
		t.err = &NoMatchingTokenError{Pos: t.pos, Preview: preview(t.input[t.pos:], 20)}
		return Token{}, t.err
	}
	t.pos = end
	return tok, nil
}

// All yields the remaining tokens. A scan failure is yielded once with a
// zero Token and ends the sequence; io.EOF is not yielded.
func (t *Tokenizer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := t.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Token{}, err)
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Tokenize drains a default tokenizer over input.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	for tok, err := range NewTokenizer(input).All() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func preview(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
