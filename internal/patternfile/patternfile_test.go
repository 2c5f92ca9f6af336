package patternfile

import (
	"bytes"
	"testing"
)

func mustParser(t *testing.T) *Parser {
	t.Helper()
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestParse_LiteralEntries(t *testing.T) {
	p := mustParser(t)
	entries, err := p.Parse(`
		// a comment
		0 = "bc"
		1 = "ghi"
		2 = "o p"
		3 = "qr"
	`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Entry{
		{ID: 0, Kind: Literal, Text: "bc"},
		{ID: 1, Kind: Literal, Text: "ghi"},
		{ID: 2, Kind: Literal, Text: "o p"},
		{ID: 3, Kind: Literal, Text: "qr"},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(entries), len(want), entries)
	}
	for i, w := range want {
		if entries[i].ID != w.ID || entries[i].Kind != w.Kind || entries[i].Text != w.Text {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], w)
		}
	}
}

func TestParse_RegexEntry(t *testing.T) {
	p := mustParser(t)
	entries, err := p.Parse(`0 = /ab.*cd/`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Kind != Regex || entries[0].Text != "ab.*cd" {
		t.Errorf("entry = %+v, want {Kind:Regex Text:ab.*cd}", entries[0])
	}
	if !bytes.Equal(entries[0].Atom, []byte("ab")) {
		t.Errorf("Atom = %q, want %q", entries[0].Atom, "ab")
	}
}

func TestParse_RegexWithNoLiteralAtomIsRejected(t *testing.T) {
	p := mustParser(t)
	if _, err := p.Parse(`0 = /.*/`); err == nil {
		t.Fatalf("Parse of atom-less regex = nil error")
	}
}

func TestParse_InvalidRegexIsRejected(t *testing.T) {
	p := mustParser(t)
	if _, err := p.Parse(`0 = /a(b/`); err == nil {
		t.Fatalf("Parse of invalid regex = nil error")
	}
}

func TestParse_EscapedQuoteAndHex(t *testing.T) {
	p := mustParser(t)
	entries, err := p.Parse(`0 = "a\"b\x41c"`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := entries[0].Text, "a\"bAc"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestParse_EmptyFile(t *testing.T) {
	p := mustParser(t)
	entries, err := p.Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestParse_RejectsMalformedLine(t *testing.T) {
	p := mustParser(t)
	if _, err := p.Parse(`not a valid line`); err == nil {
		t.Fatalf("Parse of malformed input = nil error")
	}
}

func TestLongestLiteralRun(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
		wantOK  bool
	}{
		{"abc.*def", "abc", true},
		{"abcdef", "abcdef", true},
		{"a.b.c", "a", true},
		{"...", "", false},
		{`foo\.bar`, "foo", true},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := LongestLiteralRun(tc.pattern)
		if ok != tc.wantOK || string(got) != tc.want {
			t.Errorf("LongestLiteralRun(%q) = (%q,%v), want (%q,%v)", tc.pattern, got, ok, tc.want, tc.wantOK)
		}
	}
}
