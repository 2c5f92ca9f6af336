package patternfile

// Grammar structs for participle parser.

type file struct {
	Entries []*entryGrammar `parser:"@@*"`
}

type entryGrammar struct {
	ID      int     `parser:"@Int '='"`
	Text    *string `parser:"( @String"`
	Pattern *string `parser:"| @Regex )"`
}
