// Package patternfile parses pattern definition files: one entry per
// line, mapping an integer id to either a quoted literal or a /slash
// delimited/ regular expression.
//
//	0 = "bc"
//	1 = "ghi"
//	2 = /o[ \t]p/
//	3 = "qr"
//
// Blank lines and '//' comments are allowed between entries.
package patternfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	re2 "github.com/wasilibs/go-re2"
)

// Kind distinguishes how an Entry's pattern text should be interpreted.
type Kind int

const (
	// Literal entries match their Text verbatim.
	Literal Kind = iota
	// Regex entries carry a regular expression; callers that need a
	// literal search atom can fall back to the longest literal run via
	// LongestLiteralRun.
	Regex
)

// Entry is one parsed line of a pattern file. For a Regex entry, Text
// holds the regex source and Atom holds the longest literal run
// extracted from it by LongestLiteralRun. Quantifiers, alternation and
// character classes are not taken into account, so Atom is not
// guaranteed to appear in every match of the regex.
type Entry struct {
	ID   int
	Kind Kind
	Text string
	Atom []byte
}

// Parser parses pattern files.
type Parser struct {
	parser *participle.Parser[file]
}

// New builds a Parser.
func New() (*Parser, error) {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Newline", Pattern: `\r?\n`},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Equals", Pattern: `=`},
		{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
		{Name: "Regex", Pattern: `/(?:[^/\\]|\\.)+/`},
	})

	p, err := participle.Build[file](
		participle.Lexer(lex),
		participle.Elide("Comment", "Whitespace", "Newline"),
	)
	if err != nil {
		return nil, fmt.Errorf("patternfile: building parser: %w", err)
	}
	return &Parser{parser: p}, nil
}

// Parse parses pattern entries from a string.
func (p *Parser) Parse(input string) ([]Entry, error) {
	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("patternfile: %w", err)
	}
	return convert(f)
}

// ParseFile parses pattern entries from a file on disk.
func (p *Parser) ParseFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("patternfile: reading %s: %w", filename, err)
	}
	f, err := p.parser.ParseBytes(filename, content)
	if err != nil {
		return nil, fmt.Errorf("patternfile: %w", err)
	}
	return convert(f)
}

func convert(f *file) ([]Entry, error) {
	entries := make([]Entry, 0, len(f.Entries))
	for _, e := range f.Entries {
		entry := Entry{ID: e.ID}
		switch {
		case e.Text != nil:
			entry.Kind = Literal
			entry.Text = unquoteString(*e.Text)
		case e.Pattern != nil:
			entry.Kind = Regex
			entry.Text = strings.Trim(*e.Pattern, "/")
			if _, err := re2.Compile(entry.Text); err != nil {
				return nil, fmt.Errorf("patternfile: entry %d: invalid regex %q: %w", e.ID, entry.Text, err)
			}
			atom, ok := LongestLiteralRun(entry.Text)
			if !ok {
				return nil, fmt.Errorf("patternfile: entry %d: regex %q has no literal atom to search for", e.ID, entry.Text)
			}
			entry.Atom = atom
		default:
			return nil, fmt.Errorf("patternfile: entry %d has neither a string nor a regex value", e.ID)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func unquoteString(s string) string {
	if len(s) < 2 {
		return s
	}
	s = s[1 : len(s)-1]

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'x':
			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			b.WriteByte('\\')
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
