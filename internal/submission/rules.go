// Package submission normalizes student-submitted discussion questions:
// it strips identifying metadata from markdown bodies, recovers the author
// name, and labels week folders for display.
package submission

import "regexp"

// LineRule classifies a single trimmed line of a submission.
type LineRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Match reports whether the trimmed line matches the rule.
func (r LineRule) Match(line string) bool {
	return r.Pattern.MatchString(line)
}

// StripRules lists the lines CleanBody drops, in evaluation order. Colons may
// be ASCII or full-width.
var StripRules = []LineRule{
	// Only levels 1 and 2; students use ### for subheadings worth keeping.
	{Name: "heading", Pattern: regexp.MustCompile(`^#{1,2}\s`)},
	{Name: "bold-student-author", Pattern: regexp.MustCompile(`(?i)^\*\*(Student|Author)[:：]\*\*`)},
	{Name: "plain-student", Pattern: regexp.MustCompile(`(?i)^Student[:：]`)},
	{Name: "bold-date", Pattern: regexp.MustCompile(`(?i)^\*\*Date[:：]\*\*`)},
	{Name: "plain-date", Pattern: regexp.MustCompile(`(?i)^Date[:：]`)},
}

// AuthorRule captures an author name from a document body. The name is the
// last submatch of Pattern.
type AuthorRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Capture returns the first non-empty trimmed name found by the rule, or ""
// when no labeled line carries a name.
func (r AuthorRule) Capture(body string) string {
	for _, m := range r.Pattern.FindAllStringSubmatch(body, -1) {
		if name := trim(m[len(m)-1]); name != "" {
			return name
		}
	}
	return ""
}

// AuthorRules are tried in order by ExtractAuthor; first non-empty capture wins.
// The name must sit on the label's own line.
var AuthorRules = []AuthorRule{
	{Name: "bold-label", Pattern: regexp.MustCompile(`(?i)\*\*(Student|Author)[:：]\*\*[ \t]*(.+)`)},
	{Name: "plain-label", Pattern: regexp.MustCompile(`(?im)^Student[:：][ \t]*(.+)`)},
}
