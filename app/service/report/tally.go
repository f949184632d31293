package report

import (
	"github.com/Shan2017/friends/app/service/extract"
	"github.com/Shan2017/friends/app/service/journal"
	"github.com/elliotchance/pie/v2"
)

// Tally is the number of activities mentioning a declared name.
type Tally struct {
	Name  string
	Count int
}

type Ranked struct {
	Rank int
	Tally
}

func CountLocations(j *journal.Journal, ex *extract.Extractor) []Tally {
	return count(j, j.LocationNames(), func(m extract.Mentions) []string {
		return m.Locations
	}, ex)
}

func CountFriends(j *journal.Journal, ex *extract.Extractor) []Tally {
	return count(j, j.FriendNames(), func(m extract.Mentions) []string {
		return m.Friends
	}, ex)
}

func count(
	j *journal.Journal,
	declared []string,
	pick func(extract.Mentions) []string,
	ex *extract.Extractor,
) []Tally {
	tallies := pie.Map(declared, func(name string) Tally {
		return Tally{Name: name}
	})

	index := make(map[string]int, len(tallies))
	for i, t := range tallies {
		index[t.Name] = i
	}

	for _, activity := range j.Activities {
		for _, name := range pick(ex.Extract(activity.Description)) {
			if i, ok := index[name]; ok {
				tallies[i].Count++
			}
		}
	}

	return tallies
}

// Rank orders tallies by descending count. Equal counts keep their input order.
func Rank(tallies []Tally) []Ranked {
	sorted := pie.SortStableUsing(tallies, func(a, b Tally) bool {
		return a.Count > b.Count
	})

	result := make([]Ranked, 0, len(sorted))
	for i, t := range sorted {
		result = append(result, Ranked{Rank: i + 1, Tally: t})
	}

	return result
}

// Limit keeps the first n entries; n <= 0 keeps all of them.
func Limit(ranked []Ranked, n int) []Ranked {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
