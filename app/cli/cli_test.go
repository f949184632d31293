package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Shan2017/friends/app/service/journal"
	"github.com/Shan2017/friends/app/service/report"
	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJournal = `### Activities:
- 2017-01-01: **Grace Hopper** and I went to _Marie's Diner_ for breakfast.
- 2015-11-01: **Grace Hopper** and I went to _Marie's Diner_. George had to cancel at the last minute. @food
- 2015-01-04: Got lunch with **Grace Hopper** and **George Washington Carver**. @food
- 2014-12-31: Celebrated the new year in _Paris_ with **Marie Curie**. @partying
- 2014-11-15: Talked to **George Washington Carver** on the phone for an hour.

### Friends:
- George Washington Carver
- Grace Hopper (a.k.a. The Admiral a.k.a. Amazing Grace) [Paris] @navy @science
- Marie Curie [Atlantis] @science

### Locations:
- Atlantis
- Marie's Diner
- Paris
`

// run executes the command tree against a journal in a temp dir.
// A nil content leaves the journal file absent.
func run(t *testing.T, content *string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "friends.md")
	if content != nil {
		require.NoError(t, os.WriteFile(path, []byte(*content), 0644))
	}

	di := do.New()
	do.Provide(di, journal.New)
	do.Provide(di, report.New)

	cmd := NewRootCommand(di)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{
		"--filename", path,
		"--config", filepath.Join(dir, "friends.yaml"),
	}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestListFavoriteLocations(t *testing.T) {
	t.Run("When file does not exist", func(t *testing.T) {
		out, err := run(t, nil, "list", "favorite", "locations")
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("When file is empty", func(t *testing.T) {
		empty := ""
		out, err := run(t, &empty, "list", "favorite", "locations")
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("Lists locations in order of decreasing activity", func(t *testing.T) {
		content := sampleJournal
		out, err := run(t, &content, "list", "favorite", "locations")
		require.NoError(t, err)
		assert.Equal(t, "1. Marie's Diner (2 activities)\n"+
			"2. Paris         (1)\n"+
			"3. Atlantis      (0)\n", out)
	})

	t.Run("Limit", func(t *testing.T) {
		content := sampleJournal
		out, err := run(t, &content, "list", "favorite", "locations", "--limit", "1")
		require.NoError(t, err)
		assert.Equal(t, "1. Marie's Diner (2 activities)\n", out)
	})

	t.Run("Rejects extra arguments", func(t *testing.T) {
		_, err := run(t, nil, "list", "favorite", "locations", "extra")
		assert.Error(t, err)
	})
}

func TestListCommands(t *testing.T) {
	content := sampleJournal

	t.Run("Favorite friends", func(t *testing.T) {
		out, err := run(t, &content, "list", "favorite", "friends", "--limit", "1")
		require.NoError(t, err)
		assert.Equal(t, "1. Grace Hopper (3 activities)\n", out)
	})

	t.Run("Locations", func(t *testing.T) {
		out, err := run(t, &content, "list", "locations")
		require.NoError(t, err)
		assert.Equal(t, "Atlantis\nMarie's Diner\nParis\n", out)
	})

	t.Run("Friends", func(t *testing.T) {
		out, err := run(t, &content, "list", "friends")
		require.NoError(t, err)
		assert.Equal(t, "George Washington Carver\nGrace Hopper\nMarie Curie\n", out)
	})

	t.Run("Tags", func(t *testing.T) {
		out, err := run(t, &content, "list", "tags")
		require.NoError(t, err)
		assert.Equal(t, "@food\n@navy\n@partying\n@science\n", out)
	})

	t.Run("Activities in a location", func(t *testing.T) {
		out, err := run(t, &content, "list", "activities", "--in", "Marie's Diner", "--tagged", "@food")
		require.NoError(t, err)
		assert.Equal(t, "2015-11-01: Grace Hopper and I went to Marie's Diner. "+
			"George had to cancel at the last minute. @food\n", out)
	})
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "friends.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log:\n  level: loud\n"), 0644))

	di := do.New()
	do.Provide(di, journal.New)
	do.Provide(di, report.New)

	cmd := NewRootCommand(di)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath, "list", "locations"})

	assert.Error(t, cmd.Execute())
}
