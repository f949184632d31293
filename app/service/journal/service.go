package journal

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/Shan2017/friends/app/config"
	"github.com/samber/do"
	"github.com/samber/oops"
)

type Service struct {
	path string
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Service{
		path: cfg.Journal.Path,
	}, nil
}

func (s *Service) Path() string {
	return s.path
}

// Load reads the whole journal into memory. A missing file yields an empty journal.
func (s *Service) Load() (*Journal, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Journal file does not exist, treating as empty", "path", s.path)
		return Parse(""), nil
	}
	if err != nil {
		return nil, oops.With("path", s.path).Wrapf(err, "failed to read journal")
	}

	j := Parse(string(data))

	slog.Debug("Journal loaded",
		"path", s.path,
		"activities_count", len(j.Activities),
		"friends_count", len(j.Friends),
		"locations_count", len(j.Locations),
	)

	return j, nil
}
