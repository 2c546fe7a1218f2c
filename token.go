package subglob

import (
	"fmt"
	"strings"
)

// Parser tokens. A pattern parses to a sequence of these; the sequence is
// the left-to-right match order.
type (
	// exactWildcard matches exactly this many bytes. Produced by runs of ?.
	exactWildcard int

	// minWildcard matches at least this many bytes, with no upper bound.
	// Produced by any wildcard run containing at least one *.
	minWildcard int
)

func (exactWildcard) tokenTag() {}
func (minWildcard) tokenTag()   {}
func (*literal) tokenTag()      {}

type token interface {
	tokenTag()
	fmt.Stringer
}

// appendWildcard appends w to tks, merging it into a trailing wildcard if
// there is one: adjacent wildcards are equivalent to a single wildcard whose
// bound is the sum, exact only if both operands are exact (so ?*, *?, **
// and ???* each collapse to one token).
func appendWildcard(tks *[]token, w token) {
	if n := len(*tks); n > 0 {
		if m, ok := mergeWildcards((*tks)[n-1], w); ok {
			(*tks)[n-1] = m
			return
		}
	}
	*tks = append(*tks, w)
}

func mergeWildcards(a, b token) (token, bool) {
	switch a := a.(type) {
	case exactWildcard:
		switch b := b.(type) {
		case exactWildcard:
			return a + b, true
		case minWildcard:
			return minWildcard(a) + b, true
		}
	case minWildcard:
		switch b := b.(type) {
		case exactWildcard:
			return a + minWildcard(b), true
		case minWildcard:
			return a + b, true
		}
	}
	return nil, false
}

// appendLiteral appends seg to tks, merging it into a trailing literal token
// as another segment if there is one.
func appendLiteral(tks *[]token, seg string) {
	if n := len(*tks); n > 0 {
		if lit, ok := (*tks)[n-1].(*literal); ok {
			lit.push(seg)
			return
		}
	}
	lit := &literal{}
	lit.push(seg)
	*tks = append(*tks, lit)
}

// String renders the token in pattern syntax.
func (w exactWildcard) String() string { return strings.Repeat("?", int(w)) }

func (w minWildcard) String() string { return strings.Repeat("?", int(w)) + "*" }

func (l *literal) String() string {
	var sb strings.Builder
	sb.Grow(l.n)
	for _, seg := range l.segs {
		for i := 0; i < len(seg); i++ {
			switch seg[i] {
			case '*', '?', '\\':
				sb.WriteByte('\\')
			}
			sb.WriteByte(seg[i])
		}
	}
	return sb.String()
}
