package submission

import "strings"

// MatchRule returns the first strip rule matching line after trimming.
func MatchRule(line string) (LineRule, bool) {
	trimmed := trim(line)
	for _, r := range StripRules {
		if r.Match(trimmed) {
			return r, true
		}
	}
	return LineRule{}, false
}

// CleanBody drops level 1-2 headings and Student/Author/Date metadata lines,
// keeping every other line verbatim. The result is trimmed.
func CleanBody(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := MatchRule(line); ok {
			continue
		}
		kept = append(kept, line)
	}
	return trim(strings.Join(kept, "\n"))
}

func trim(s string) string { return strings.TrimSpace(s) }
