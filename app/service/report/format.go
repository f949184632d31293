package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/elliotchance/pie/v2"
)

// Format renders ranked tallies as lines of "<rank>. <name> (<count>)" with names
// padded to the longest one. Only the first line names the unit.
func Format(ranked []Ranked) []string {
	if len(ranked) == 0 {
		return nil
	}

	width := pie.Max(pie.Map(ranked, func(r Ranked) int {
		return utf8.RuneCountInString(r.Name)
	}))

	lines := make([]string, 0, len(ranked))
	for i, r := range ranked {
		padding := strings.Repeat(" ", width-utf8.RuneCountInString(r.Name))

		suffix := fmt.Sprintf("(%d)", r.Count)
		if i == 0 {
			suffix = fmt.Sprintf("(%d %s)", r.Count, activityUnit(r.Count))
		}

		lines = append(lines, fmt.Sprintf("%d. %s%s %s", r.Rank, r.Name, padding, suffix))
	}

	return lines
}

func activityUnit(count int) string {
	if count == 1 {
		return "activity"
	}
	return "activities"
}
