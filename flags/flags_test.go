package flags

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"

	"hop.computer/dlist/config"
	"hop.computer/dlist/pkg/thunks"
)

func TestParseSortArgs(t *testing.T) {
	f, err := ParseSortArgs([]string{"dlist", "-r", "-n", "-C", "/tmp/c.toml", "3", "1", "2"})
	assert.NilError(t, err)
	assert.Check(t, f.Reverse)
	assert.Check(t, f.Numeric)
	assert.Equal(t, "/tmp/c.toml", f.ConfigPath)
	assert.DeepEqual(t, []string{"3", "1", "2"}, f.Values)
	assert.Equal(t, uint64(1), f.Seed)

	f, err = ParseSortArgs([]string{"dlist", "-gen", "10", "-seed", "99"})
	assert.NilError(t, err)
	assert.Equal(t, 10, f.Generate)
	assert.Equal(t, uint64(99), f.Seed)
	assert.Check(t, is.Len(f.Values, 0))
}

func TestParseSortArgsErrors(t *testing.T) {
	_, err := ParseSortArgs([]string{"dlist", "-gen", "3", "x"})
	assert.Equal(t, ErrGenerateWithValues, err)

	_, err = ParseSortArgs([]string{"dlist", "-gen", "-1"})
	assert.Check(t, is.ErrorContains(err, "must not be negative"))

	_, err = ParseSortArgs([]string{"dlist", "-bogus"})
	assert.Check(t, err != nil)
}

func TestMergeSortFlagsAndConfig(t *testing.T) {
	c := config.Default()
	mergeSortFlagsAndConfig(&SortFlags{Reverse: true, Generate: 5, Plain: true, Verbose: true}, c)
	assert.DeepEqual(t, c, &config.Config{
		Order:    config.Descending,
		Numeric:  true,
		Style:    config.StylePlain,
		LogLevel: "debug",
	})

	// Unset flags leave the file's settings alone.
	c = &config.Config{Order: config.Descending, Numeric: true, Style: config.StylePlain, LogLevel: "warning"}
	mergeSortFlagsAndConfig(&SortFlags{}, c)
	assert.Equal(t, config.Descending, c.Order)
	assert.Equal(t, "warning", c.LogLevel)
}

func TestLoadConfigFromFlags(t *testing.T) {
	dir := t.TempDir()
	thunks.UserHomeDir = func() (string, error) { return dir, nil }
	defer thunks.TearDownTest()

	// The home directory has no config file, so defaults apply.
	c, err := LoadConfigFromFlags(&SortFlags{Numeric: true})
	assert.NilError(t, err)
	assert.Equal(t, config.Ascending, c.Order)
	assert.Check(t, c.Numeric)

	_, err = LoadConfigFromFlags(&SortFlags{ConfigPath: "/nonexistent/dlist.toml"})
	assert.Check(t, err != nil)

	path := filepath.Join(dir, config.UserConfigFile)
	assert.NilError(t, os.WriteFile(path, []byte("order = \"descending\"\n"), 0o600))
	c, err = LoadConfigFromFlags(&SortFlags{Plain: true})
	assert.NilError(t, err)
	assert.Equal(t, config.Descending, c.Order)
	assert.Equal(t, config.StylePlain, c.Style)
}
