package journal

import (
	"time"

	"github.com/elliotchance/pie/v2"
)

type Section int

const (
	NoSection Section = iota
	Activities
	Friends
	Locations
	Unknown
)

func (s Section) String() string {
	switch s {
	case NoSection:
		return "none"
	case Activities:
		return "Activities"
	case Friends:
		return "Friends"
	case Locations:
		return "Locations"
	default:
		return "unknown"
	}
}

// Record is a bullet payload tagged with the section it was found in.
type Record struct {
	Section Section
	Payload string
}

type Activity struct {
	// Date is nil when the entry has no YYYY-MM-DD prefix
	Date        *time.Time
	Description string
	Tags        []string
}

func (a *Activity) String() string {
	if a.Date == nil {
		return a.Description
	}
	return a.Date.Format(dateLayout) + ": " + a.Description
}

type Friend struct {
	Name      string
	Nicknames []string
	// Location is the friend's default location, taken from a [Name] annotation
	Location string
	Tags     []string
}

type Location struct {
	Name string
}

type Journal struct {
	Activities []*Activity
	Friends    []*Friend
	Locations  []*Location
}

func (j *Journal) LocationNames() []string {
	return pie.Map(j.Locations, func(l *Location) string {
		return l.Name
	})
}

func (j *Journal) FriendNames() []string {
	return pie.Map(j.Friends, func(f *Friend) string {
		return f.Name
	})
}
