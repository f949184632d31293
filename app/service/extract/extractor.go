package extract

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/elliotchance/pie/v2"
)

const maskRune = '\x00'

type candidate struct {
	text       string
	isLocation bool
	isFriend   bool
}

// Mentions holds the declared names found in one description, each in declaration order.
type Mentions struct {
	Locations []string
	Friends   []string
}

// Extractor finds declared names inside activity descriptions. Names are matched
// exactly and case-sensitively, and only when bounded by non-alphanumeric runes.
type Extractor struct {
	locations  []string
	friends    []string
	candidates []*candidate
}

func New(locations, friends []string) *Extractor {
	byText := make(map[string]*candidate)
	var candidates []*candidate

	var declaredLocations, declaredFriends []string

	add := func(text string) *candidate {
		c, ok := byText[text]
		if !ok {
			c = &candidate{text: text}
			byText[text] = c
			candidates = append(candidates, c)
		}
		return c
	}

	for _, l := range locations {
		if l == "" {
			continue
		}
		if c := add(l); !c.isLocation {
			c.isLocation = true
			declaredLocations = append(declaredLocations, l)
		}
	}
	for _, f := range friends {
		if f == "" {
			continue
		}
		if c := add(f); !c.isFriend {
			c.isFriend = true
			declaredFriends = append(declaredFriends, f)
		}
	}

	// longest first, so a friend name is masked before shorter names are searched
	candidates = pie.SortStableUsing(candidates, func(a, b *candidate) bool {
		return len(a.text) > len(b.text)
	})

	return &Extractor{
		locations:  declaredLocations,
		friends:    declaredFriends,
		candidates: candidates,
	}
}

// Extract returns the declared names mentioned in description. Friend names hide
// any shorter name inside them; location names only hide shorter friend names, so
// `Paris` still counts inside `Paris Hotel`.
func (e *Extractor) Extract(description string) Mentions {
	foundLocations := make(map[string]bool)
	foundFriends := make(map[string]bool)

	// friendText is masked by every match, locationText by friend matches only
	friendText := []byte(description)
	locationText := []byte(description)

	for _, c := range e.candidates {
		// a name declared as both kinds is looked up in both texts before either is masked
		asLocation := c.isLocation && len(boundedSpans(locationText, c.text)) > 0

		var friendSpans []int
		if c.isFriend {
			friendSpans = boundedSpans(friendText, c.text)
		}

		if asLocation {
			foundLocations[c.text] = true
			mask(friendText, boundedSpans(friendText, c.text), len(c.text))
		}
		if len(friendSpans) > 0 {
			foundFriends[c.text] = true
			mask(friendText, friendSpans, len(c.text))
			mask(locationText, friendSpans, len(c.text))
		}
	}

	return Mentions{
		Locations: pie.Filter(e.locations, func(name string) bool {
			return foundLocations[name]
		}),
		Friends: pie.Filter(e.friends, func(name string) bool {
			return foundFriends[name]
		}),
	}
}

func (e *Extractor) Locations(description string) []string {
	return e.Extract(description).Locations
}

func (e *Extractor) Friends(description string) []string {
	return e.Extract(description).Friends
}

// boundedSpans returns the start offsets of every occurrence of name in text
// that is not part of a longer word.
func boundedSpans(text []byte, name string) []int {
	var spans []int

	for from := 0; from <= len(text)-len(name); {
		i := bytes.Index(text[from:], []byte(name))
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(name)

		if isBoundaryBefore(text[:start]) && isBoundaryAfter(text[end:]) {
			spans = append(spans, start)
			from = end
			continue
		}

		// skip one rune and keep searching
		_, size := utf8.DecodeRune(text[start:])
		from = start + size
	}

	return spans
}

func mask(text []byte, spans []int, n int) {
	for _, start := range spans {
		for i := start; i < start+n; i++ {
			text[i] = maskRune
		}
	}
}

func isBoundaryBefore(prefix []byte) bool {
	if len(prefix) == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRune(prefix)
	return !isWordRune(r)
}

func isBoundaryAfter(suffix []byte) bool {
	if len(suffix) == 0 {
		return true
	}
	r, _ := utf8.DecodeRune(suffix)
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
