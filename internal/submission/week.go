package submission

import "strings"

var weekLabels = map[string]string{
	"week02-chapter01":       "Week 2 — Ch 1: Making Inevitable Conflict Productive",
	"week03-chapter02":       "Week 3 — Ch 2: Giving Good-Enough Answers",
	"week04-chapter03":       "Week 4 — Ch 3: Creating Constructive Loyalty",
	"week06-dual-reading":    "Week 6 — Ch 4 + ProducingOSS Ch 8",
	"week07-chapter05-async": "Week 7 — Ch 5: Winning the Prisoner's Dilemma",
	"week08-dual-reading":    "Week 8 — Ch 6 + ProducingOSS Ch 6",
	"week10-dual-reading":    "Week 10 — Ch 7 + ProducingOSS Ch 4",
	"week11-chapter08":       "Week 11 — Ch 8: Your Boss Is Not Your Friend",
	"week12-chapter09":       "Week 12 — Ch 9: Dealing with Special Cases",
	"week13-chapter10":       "Week 13 — Ch 10: Managing Your Manager",
}

// WeekLabels returns a copy of the known week folder labels.
func WeekLabels() map[string]string {
	out := make(map[string]string, len(weekLabels))
	for k, v := range weekLabels {
		out[k] = v
	}
	return out
}

// WeekLabel maps a week folder name to its display label. Unknown folders are
// title-cased with hyphens turned into spaces ("week99-future" -> "Week99 Future").
func WeekLabel(dirname string) string {
	if label, ok := weekLabels[dirname]; ok {
		return label
	}
	return titleWords(strings.ReplaceAll(dirname, "-", " "))
}
