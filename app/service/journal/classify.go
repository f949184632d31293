package journal

import (
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	headerRe = regexp.MustCompile(`^###\s*(.+?):\s*$`)
	bulletRe = regexp.MustCompile(`^\s*-\s+(.*\S)\s*$`)
	dateRe   = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}):\s*(.*)$`)
)

// classifier tracks which section the current line belongs to.
// Only headers change its state.
type classifier struct {
	state Section
}

func sectionByName(name string) Section {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "activities":
		return Activities
	case "friends":
		return Friends
	case "locations":
		return Locations
	default:
		return Unknown
	}
}

func (c *classifier) step(line string) (Record, bool) {
	if m := headerRe.FindStringSubmatch(line); m != nil {
		c.state = sectionByName(m[1])
		return Record{}, false
	}

	switch c.state {
	case Activities, Friends, Locations:
	default:
		return Record{}, false
	}

	m := bulletRe.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}

	return Record{Section: c.state, Payload: m[1]}, true
}

// Classify normalizes every line and returns the bullet records of the
// known sections in document order.
func Classify(lines []string) []Record {
	var c classifier
	var result []Record

	for _, line := range lines {
		line = Normalize(strings.TrimRight(line, "\r"))
		if rec, ok := c.step(line); ok {
			result = append(result, rec)
		}
	}

	return result
}

func Parse(text string) *Journal {
	j := &Journal{
		Activities: []*Activity{},
		Friends:    []*Friend{},
		Locations:  []*Location{},
	}
	if text == "" {
		return j
	}

	friendIdx := make(map[string]int)
	locationIdx := make(map[string]int)

	for _, rec := range Classify(strings.Split(text, "\n")) {
		switch rec.Section {
		case Activities:
			j.Activities = append(j.Activities, parseActivity(rec.Payload))

		case Friends:
			friend := parseFriend(rec.Payload)
			if friend.Name == "" {
				continue
			}
			if i, ok := friendIdx[friend.Name]; ok {
				j.Friends[i] = friend
				continue
			}
			friendIdx[friend.Name] = len(j.Friends)
			j.Friends = append(j.Friends, friend)

		case Locations:
			name := EntityName(rec.Payload)
			if name == "" {
				continue
			}
			if _, ok := locationIdx[name]; ok {
				continue
			}
			locationIdx[name] = len(j.Locations)
			j.Locations = append(j.Locations, &Location{Name: name})
		}
	}

	return j
}

func parseActivity(payload string) *Activity {
	activity := &Activity{
		Description: payload,
		Tags:        Tags(payload),
	}

	m := dateRe.FindStringSubmatch(payload)
	if m == nil {
		return activity
	}

	date, err := time.Parse(dateLayout, m[1])
	if err != nil {
		return activity
	}

	activity.Date = &date
	activity.Description = m[2]

	return activity
}

func parseFriend(payload string) *Friend {
	return &Friend{
		Name:      EntityName(payload),
		Nicknames: nicknames(payload),
		Location:  homeLocation(payload),
		Tags:      Tags(payload),
	}
}
