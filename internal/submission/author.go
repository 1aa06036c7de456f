package submission

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExtractAuthor returns the student name annotated in body, falling back to a
// name derived from filename ("sanchez-alex.md" -> "Sanchez Alex").
func ExtractAuthor(filename, body string) string {
	for _, r := range AuthorRules {
		if name := r.Capture(body); name != "" {
			return name
		}
	}
	return NameFromFilename(filename)
}

// NameFromFilename strips the .md extension (any case), turns - and _ into spaces and
// capitalizes the first letter of each word.
func NameFromFilename(filename string) string {
	name := filename
	if n := len(name) - len(".md"); n >= 0 && strings.EqualFold(name[n:], ".md") {
		name = name[:n]
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titleWords(name)
}

// titleWords uppercases the first rune of every whitespace-delimited word and
// leaves everything else, spacing included, as is.
func titleWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	atStart := true
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		switch {
		case unicode.IsSpace(r):
			atStart = true
		case atStart:
			r = unicode.ToUpper(r)
			atStart = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
