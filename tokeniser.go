package subglob

import (
	"fmt"
	"unicode/utf8"
)

// UnknownEscapeError is returned by Parse when a backslash escapes anything
// other than '*', '?' or '\'.
type UnknownEscapeError struct {
	Index int    // byte offset of the backslash within the pattern
	Seq   string // the offending escape sequence, e.g. `\n`
}

func (e *UnknownEscapeError) Error() string {
	return fmt.Sprintf("unknown escape sequence %q at index %d", e.Seq, e.Index)
}

// UnterminatedEscapeError is returned by Parse when a pattern ends with an
// unescaped backslash.
type UnterminatedEscapeError struct {
	Index int // byte offset of the trailing backslash
}

func (e *UnterminatedEscapeError) Error() string {
	return fmt.Sprintf("unterminated escape sequence at index %d", e.Index)
}

// tokenise converts a pattern into a token sequence in a single pass.
// Literal runs are tracked as byte ranges into the pattern and only sliced
// out when a metacharacter (or the end of input) terminates the run.
func tokenise(p string) ([]token, error) {
	var tks []token

	// Tokenisation state.
	escape := false     // the previous char was \
	start, end := -1, 0 // current literal run; start < 0 means no run

	flush := func() {
		if start >= 0 {
			appendLiteral(&tks, p[start:end])
			start = -1
		}
	}

	for i, c := range p {
		if escape {
			escape = false
			switch c {
			case '*', '?', '\\':
				// The escaped metacharacter is a literal. It starts a new
				// segment - the run before the backslash is already flushed.
				start, end = i, i+1
			default:
				return nil, &UnknownEscapeError{
					Index: i - 1,
					Seq:   p[i-1 : i+utf8.RuneLen(c)],
				}
			}
			continue
		}

		switch c {
		case '*':
			flush()
			appendWildcard(&tks, minWildcard(0))

		case '?':
			flush()
			appendWildcard(&tks, exactWildcard(1))

		case '\\':
			flush()
			escape = true

		default:
			if start < 0 {
				start = i
			}
			end = i + utf8.RuneLen(c)
		}
	}

	// Escape at end of string?
	if escape {
		return nil, &UnterminatedEscapeError{Index: len(p) - 1}
	}
	flush()
	return tks, nil
}
