// Package config contains the structure and loader for the dlist
// configuration file.
package config

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"hop.computer/dlist/pkg/combinators"
	"hop.computer/dlist/pkg/thunks"
)

// UserConfigFile is the name of the configuration file in the user's home
// directory.
const UserConfigFile = ".dlist.toml"

// Order is the direction values are sorted in.
type Order string

// Known orders.
const (
	Ascending  Order = "ascending"
	Descending Order = "descending"
)

// Style selects how the list is printed.
type Style string

// Known styles. StylePretty only applies when writing to a terminal.
const (
	StylePlain  Style = "plain"
	StylePretty Style = "pretty"
)

// Config represents a parsed dlist configuration. Unset fields take their
// defaults when loaded.
type Config struct {
	Order    Order  `toml:"order"`
	Numeric  bool   `toml:"numeric"`
	Style    Style  `toml:"style"`
	LogLevel string `toml:"log_level"`
}

// overwriting fileSystem lets us use a mock filesystem for tests
var fileSystem fs.FS = osFS{}

type osFS struct{}

// Open implements fs.FS on top of the real filesystem, accepting absolute
// paths.
func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := new(Config)
	c.fillDefaults()
	return c
}

func (c *Config) fillDefaults() {
	c.Order = combinators.Or(c.Order, Ascending)
	c.Style = combinators.Or(c.Style, StylePretty)
	c.LogLevel = combinators.Or(c.LogLevel, logrus.InfoLevel.String())
}

// Validate checks that every setting has a known value.
func (c *Config) Validate() error {
	if !slices.Contains([]Order{Ascending, Descending}, c.Order) {
		return errors.Errorf("invalid order %q", c.Order)
	}
	if !slices.Contains([]Style{StylePlain, StylePretty}, c.Style) {
		return errors.Errorf("invalid style %q", c.Style)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log_level")
	}
	return nil
}

// Level returns the parsed log level. It falls back to info if LogLevel does
// not validate.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Load parses a TOML configuration from r. Unknown keys are an error.
func Load(r io.Reader) (*Config, error) {
	c := new(Config)
	md, err := toml.NewDecoder(r).Decode(c)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown setting %q", undecoded[0].String())
	}
	c.fillDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFromFile parses the configuration file at path.
func LoadFromFile(path string) (*Config, error) {
	f, err := fileSystem.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

// UserConfigPath returns the path of the configuration file for the current
// user, or the empty string if the home directory is unknown.
func UserConfigPath() string {
	home, err := thunks.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigFile)
}

// LoadUserConfig loads the current user's configuration file. A missing file
// is not an error: the defaults are returned instead.
func LoadUserConfig() (*Config, error) {
	path := UserConfigPath()
	if path == "" {
		return Default(), nil
	}
	c, err := LoadFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Debugf("no config at %s, using defaults", path)
		return Default(), nil
	}
	return c, err
}
