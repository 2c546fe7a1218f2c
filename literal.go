package subglob

import "strings"

// literal is the content of a single literal token. The content may be
// split over several segments, because escape sequences interrupt
// contiguous slicing of the pattern: parsing `ab\*cd` produces the segments
// "ab", "*cd". Segments are substrings of the pattern string, so
// building a literal copies nothing.
//
// Segment boundaries carry no meaning. Two literals are equal exactly when
// their concatenated contents are equal.
type literal struct {
	segs []string
	n    int // combined length of all segments, in bytes
}

func (l *literal) push(seg string) {
	l.segs = append(l.segs, seg)
	l.n += len(seg)
}

// prefixOf reports whether s starts with the literal's content. Trailing
// bytes of s beyond the content are fine - this is a prefix test.
func (l *literal) prefixOf(s string) bool {
	i := 0
	for _, seg := range l.segs {
		if len(seg) > len(s)-i || s[i:i+len(seg)] != seg {
			return false
		}
		i += len(seg)
	}
	return true
}

// equal reports whether l and m have the same content, regardless of how
// each is segmented. It walks both in lock-step, comparing the largest
// window that fits in the current segment of each.
func (l *literal) equal(m *literal) bool {
	var li, lo, mi, mo int // segment number and offset within it, per side
	for {
		for li < len(l.segs) && lo == len(l.segs[li]) {
			li, lo = li+1, 0
		}
		for mi < len(m.segs) && mo == len(m.segs[mi]) {
			mi, mo = mi+1, 0
		}
		lDone, mDone := li == len(l.segs), mi == len(m.segs)
		if lDone || mDone {
			return lDone && mDone
		}
		w := min(len(l.segs[li])-lo, len(m.segs[mi])-mo)
		if l.segs[li][lo:lo+w] != m.segs[mi][mo:mo+w] {
			return false
		}
		lo += w
		mo += w
	}
}

// occurrencesIn returns a cursor over every offset in s where the literal's
// content occurs, in ascending order. Each call starts a fresh search.
func (l *literal) occurrencesIn(s string) *occurrences {
	o := &occurrences{lit: l, s: s}
	for _, seg := range l.segs {
		if seg != "" {
			o.anchor = seg
			break
		}
	}
	return o
}

// occurrences produces one occurrence per call to next, in the manner of a
// consuming reader. The first non-empty segment is used as an anchor: each
// anchor hit is verified against the whole content before being reported.
type occurrences struct {
	lit    *literal
	s      string
	anchor string // empty means the literal has no content
	pos    int    // next position to search from
}

func (o *occurrences) next() (int, bool) {
	if o.anchor == "" {
		// Empty content occurs at every offset, including len(s).
		if o.pos > len(o.s) {
			return 0, false
		}
		p := o.pos
		o.pos++
		return p, true
	}
	for o.pos < len(o.s) {
		i := strings.Index(o.s[o.pos:], o.anchor)
		if i < 0 {
			o.pos = len(o.s)
			return 0, false
		}
		hit := o.pos + i
		o.pos = hit + 1
		if o.lit.prefixOf(o.s[hit:]) {
			return hit, true
		}
	}
	return 0, false
}
