package subglob

import (
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern, s string
		want       bool
	}{
		// Literal only.
		{"bc", "abcd", true},
		{"abcd", "abcd", true},
		{"ab", "abc", true},
		{"bc", "bc", true},
		{"bc", "b", false},

		// Empty pattern matches everything.
		{"", "", true},
		{"", "abc", true},

		// Lone wildcards.
		{"*", "", true},
		{"*", "42", true},
		{"?", "", false},
		{"?", "?", true},
		{"?", "???...", true},

		// Asterisk and literal.
		{`*\*`, "", false},
		{"*abc", "ab", false},
		{"*foo", "foo", true},
		{"*you", "Do you think so?", true},
		{"*you", "I don't think so.", false},
		{`*otherwise\?`, "Why do you think otherwise?", true},

		// Question mark and literal.
		{"?a", "", false},
		{"?a", "a", false},
		{"?bc", "abcd", true},
		{"?bc", "abc", true},
		{"?cde", "abcdef", true},
		{"?f", "abcdef", true},
		{"?AR", "foobarbaz", false},

		// Literal and asterisk.
		{"Letter.*", "", false},
		{"letter*", "let", false},
		{"foo*", "foo", true},
		{"you*", "Do you think so?", true},
		{"you*", "I don't think so.", false},
		{`otherwise\?*`, "Why do you think otherwise?", true},

		// Literal and question mark.
		{"a?", "", false},
		{"a?", "a", false},
		{"ab?", "abcd", true},
		{"ab?", "abc", true},
		{"cd?", "abcdef", true},
		{"de?", "abcdef", true},
		{"AR?", "foobarbaz", false},

		// Wildcards only - merged bounds.
		{"?*", "", false},
		{"*?", "", false},
		{"*?", "a", true},
		{"?*", "a", true},
		{"*?", "01", true},
		{"?*", "Hello, World!", true},
		{"**", "", true},
		{"****", "", true},
		{"??", "", false},
		{"??", "0", false},
		{"?**", "", false},
		{"*?*", "", false},
		{"**?", "", false},
		{"?**", "1", true},
		{"*?*", "2", true},
		{"**?", "3", true},

		// Wildcard, literal, wildcard.
		{"*-*", "", false},
		{"*de*", "de", true},
		{"*.*", ".bin", true},
		{"*.od?", "Spreadsheet.ods", true},
		{"*-final.*", "thesis-final.pdf", true},
		{"*-final-2.*", "thesis-final-3.pdf", false},

		// Longer patterns.
		{"let mut ? = ?", "let mut i = 0;", true},
		{"let mut ??? = ?", "let mut i = 0;", false},
		{"let mut * = *;", "let mut i : usize = 0;", true},
		{"let mut * = *", `let mut my_string = "abc"`, true},
		{"let * = *", "let mut foo = bar", true},
		{"let * = *", "let a=1;", false},
		{`"*": *`, `{"key": "value"}`, true},
		{`"*": *`, `{"key":"value"`, false},
		{"[*,*,*]", "[]", false},
		{"[*,*,*]", "[1]", false},
		{"[*,*,*]", "[1, 2]", false},
		{"[*,*,*]", "[1, 2, 3]", true},

		// Paths.
		{"*.json", "foo.json", true},
		{"*.json", "folder/foo.json", true},
		{".json", "path/to/foo.json", true},
		{"json", "path/to/json.py", true},
		{"*.yaml", "path/to/foo.json", false},
		{"*.yaml", "statefulset.yaml", true},
		{"*.y*ml", "path/to/deployment.yml", true},
		{".y*ml", "path/to/daemonset.yml", true},
		{".y*ml", "path/to/configmap.yaml", true},
		{"*.ods", "path/to/secret.yaml", false},
		{"thesis*", "path/to/netpol.yaml", false},
		{"thesis*", "path/to/thesis-final-3.pdf", true},

		// Backtracking: the first occurrence of a literal need not be the
		// one that lets the rest of the sequence match.
		{"an?na", "banana banana", true},
		{"ab?d", "abcabcd", true},
		{"a*bc?", "aXbc", false},
		{"a*bc?", "abcaXbcY", true},
	}

	for _, test := range tests {
		p, err := Parse(test.pattern)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", test.pattern, err)
		}

		if got, want := p.Match(test.s), test.want; got != want {
			t.Errorf("(%q).Match(%q) = %v, want %v", test.pattern, test.s, got, want)
		}
	}
}

func TestMatchEmptyString(t *testing.T) {
	// A pattern matches the empty string exactly when every token is a
	// wildcard with minimum length 0.
	tests := []struct {
		pattern string
		want    bool
	}{
		{"", true},
		{"*", true},
		{"***", true},
		{"?", false},
		{"*?*", false},
		{"a", false},
		{"*a*", false},
	}

	for _, test := range tests {
		p, err := Parse(test.pattern)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", test.pattern, err)
		}
		if got := p.Match(""); got != test.want {
			t.Errorf("(%q).Match(%q) = %v, want %v", test.pattern, "", got, test.want)
		}
	}
}
