package journal

import (
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`(^|[^\p{L}\p{N}_])_([^_]+?)_([^\p{L}\p{N}_]|$)`)
	tagRe    = regexp.MustCompile(`(?:^|\s)@([\p{L}\p{N}_:\-]+)`)
	akaRe    = regexp.MustCompile(`\(a\.k\.a\.\s+(.+?)\)`)
	homeRe   = regexp.MustCompile(`\[([^\]]+)\]`)
)

// Normalize strips markdown emphasis from a raw journal line.
// Bracket and @tag annotations are left alone, see EntityName.
func Normalize(line string) string {
	line = boldRe.ReplaceAllString(line, "$1")

	// adjacent italics share a boundary rune, so a single pass can miss the second one
	for {
		next := italicRe.ReplaceAllString(line, "${1}${2}${3}")
		if next == line {
			return line
		}
		line = next
	}
}

// EntityName returns the display name of a declared friend or location:
// everything before the first annotation.
func EntityName(payload string) string {
	if i := strings.IndexAny(payload, "([@"); i >= 0 {
		payload = payload[:i]
	}
	return strings.TrimSpace(payload)
}

// Tags returns the distinct @tags of text in order of first appearance.
func Tags(text string) []string {
	var result []string
	seen := make(map[string]bool)

	for _, m := range tagRe.FindAllStringSubmatch(text, -1) {
		tag := "@" + m[1]
		if seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}

	return result
}

func nicknames(payload string) []string {
	m := akaRe.FindStringSubmatch(payload)
	if m == nil {
		return nil
	}

	var result []string
	for _, nick := range strings.Split(m[1], "a.k.a.") {
		if nick = strings.TrimSpace(nick); nick != "" {
			result = append(result, nick)
		}
	}
	return result
}

func homeLocation(payload string) string {
	m := homeRe.FindStringSubmatch(payload)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
