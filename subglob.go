// Package subglob implements substring matching with glob-style patterns.
//
// A pattern matches if it occurs anywhere within the searched string - the
// pattern does not need to cover the whole string:
//
//	ok, err := subglob.Match("*.json", "folder/foo.json")
//	// ok == true, err == nil
//
// To use the same pattern on multiple strings, parse it once:
//
//	p, err := subglob.Parse("thesis-*.pdf")
//	if err != nil { ... }
//	p.Match("My Documents/thesis/thesis-final-2.pdf") // true
//
// # Pattern syntax
//
// The asterisk * is a wildcard for zero or more arbitrary characters. The
// question mark ? is a wildcard for exactly one character. Both can be
// escaped with a backslash, in which case they match only themselves, as
// does an escaped backslash:
//
//	subglob.Match(`\*`, "My favourite character is '*'.") // true
//	subglob.Match(`\\`, `Windows path separator: \`)      // true
//
// A backslash escaping any other character, or a trailing unescaped
// backslash, is a parse error. There are no other metacharacters - no
// character classes, anchors or alternation.
//
// Matching and pattern offsets are defined over bytes, so a multi-byte
// UTF-8 character counts as more than one character for wildcard lengths.
package subglob

import "strings"

// Pattern is a parsed glob pattern. It is immutable after parsing, so a
// single Pattern may be used to Match concurrently without synchronisation.
type Pattern struct {
	tokens []token
}

// Parse parses a pattern. It returns an *UnknownEscapeError or
// *UnterminatedEscapeError if the pattern is not well-formed.
func Parse(pattern string) (*Pattern, error) {
	tks, err := tokenise(pattern)
	if err != nil {
		return nil, err
	}
	return &Pattern{tokens: tks}, nil
}

// MustParse calls Parse, and panics if unable to parse the pattern.
func MustParse(pattern string) *Pattern {
	p, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether the pattern occurs anywhere within s.
func (p *Pattern) Match(s string) bool {
	return matchFrom(p.tokens, s)
}

// String reconstructs a pattern equivalent to the one parsed, with adjacent
// wildcards in canonical merged form and all metacharacters escaped.
func (p *Pattern) String() string {
	var sb strings.Builder
	for _, t := range p.tokens {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// Match reports whether pattern occurs anywhere within s, parsing pattern
// freshly each call. Use Parse to match one pattern against many strings.
func Match(pattern, s string) (bool, error) {
	p, err := Parse(pattern)
	if err != nil {
		return false, err
	}
	return p.Match(s), nil
}
