package report

import (
	"log/slog"

	"github.com/Shan2017/friends/app/service/extract"
	"github.com/Shan2017/friends/app/service/journal"
	"github.com/elliotchance/pie/v2"
	"github.com/samber/do"
)

type Service struct {
	journalSvc *journal.Service
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		journalSvc: do.MustInvoke[*journal.Service](di),
	}, nil
}

// ActivityFilter narrows activities by mention. Empty fields match everything.
type ActivityFilter struct {
	Location string
	Friend   string
	Tag      string
}

func (s *Service) load() (*journal.Journal, *extract.Extractor, error) {
	j, err := s.journalSvc.Load()
	if err != nil {
		return nil, nil, err
	}

	return j, extract.New(j.LocationNames(), j.FriendNames()), nil
}

func (s *Service) FavoriteLocations(limit int) ([]string, error) {
	j, ex, err := s.load()
	if err != nil {
		return nil, err
	}

	ranked := Limit(Rank(CountLocations(j, ex)), limit)
	slog.Debug("Ranked locations", "count", len(ranked), "limit", limit)

	return Format(ranked), nil
}

func (s *Service) FavoriteFriends(limit int) ([]string, error) {
	j, ex, err := s.load()
	if err != nil {
		return nil, err
	}

	ranked := Limit(Rank(CountFriends(j, ex)), limit)
	slog.Debug("Ranked friends", "count", len(ranked), "limit", limit)

	return Format(ranked), nil
}

func (s *Service) Locations() ([]string, error) {
	j, err := s.journalSvc.Load()
	if err != nil {
		return nil, err
	}
	return j.LocationNames(), nil
}

func (s *Service) Friends() ([]string, error) {
	j, err := s.journalSvc.Load()
	if err != nil {
		return nil, err
	}
	return j.FriendNames(), nil
}

func (s *Service) Activities(filter ActivityFilter) ([]string, error) {
	j, ex, err := s.load()
	if err != nil {
		return nil, err
	}

	matching := pie.Filter(j.Activities, func(a *journal.Activity) bool {
		return filter.Matches(a, ex)
	})

	return pie.Map(matching, func(a *journal.Activity) string {
		return a.String()
	}), nil
}

// Tags lists the distinct tags used by activities and friends, sorted.
func (s *Service) Tags() ([]string, error) {
	j, err := s.journalSvc.Load()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tags []string
	collect := func(list []string) {
		for _, t := range list {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}

	for _, a := range j.Activities {
		collect(a.Tags)
	}
	for _, f := range j.Friends {
		collect(f.Tags)
	}

	return pie.Sort(tags), nil
}

func (f ActivityFilter) Matches(a *journal.Activity, ex *extract.Extractor) bool {
	if f.Tag != "" && !pie.Contains(a.Tags, normalizeTag(f.Tag)) {
		return false
	}
	if f.Location == "" && f.Friend == "" {
		return true
	}

	m := ex.Extract(a.Description)
	if f.Location != "" && !pie.Contains(m.Locations, f.Location) {
		return false
	}
	if f.Friend != "" && !pie.Contains(m.Friends, f.Friend) {
		return false
	}

	return true
}

func normalizeTag(tag string) string {
	if tag == "" || tag[0] == '@' {
		return tag
	}
	return "@" + tag
}
