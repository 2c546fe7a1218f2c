package subglob

// matchHere reports whether the token sequence matches a prefix of s, the
// first token starting exactly at position 0. Bytes of s beyond the last
// token are permitted.
func matchHere(tks []token, s string) bool {
	if len(tks) == 0 {
		return true
	}
	rest := tks[1:]
	switch t := tks[0].(type) {
	case exactWildcard:
		return len(s) >= int(t) && matchHere(rest, s[int(t):])

	case minWildcard:
		// Beyond its minimum, * absorbs anything up to wherever the next
		// token can start, so the remainder is matched unanchored.
		return len(s) >= int(t) && matchFrom(rest, s[int(t):])

	case *literal:
		return t.prefixOf(s) && matchHere(rest, s[t.n:])
	}
	return false
}

// matchFrom reports whether the token sequence matches anywhere in s. A
// leading wildcard only needs its minimum length to remain; a leading
// literal anchors the match, so each of its occurrences is tried in turn.
func matchFrom(tks []token, s string) bool {
	if len(tks) == 0 {
		return true
	}
	rest := tks[1:]
	switch t := tks[0].(type) {
	case exactWildcard:
		return len(s) >= int(t) && matchFrom(rest, s[int(t):])

	case minWildcard:
		return len(s) >= int(t) && matchFrom(rest, s[int(t):])

	case *literal:
		occ := t.occurrencesIn(s)
		for pos, ok := occ.next(); ok; pos, ok = occ.next() {
			if matchHere(rest, s[pos+t.n:]) {
				return true
			}
		}
		return false
	}
	return false
}
