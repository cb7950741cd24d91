// Package flags provides support for dlist CLI args
package flags

import (
	"errors"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"hop.computer/dlist/config"
)

// ErrGenerateWithValues is returned when -gen is combined with explicit values.
var ErrGenerateWithValues = errors.New("-gen cannot be combined with values")

// SortFlags holds CLI arguments for dlist.
type SortFlags struct {
	ConfigPath string

	Reverse  bool   // sort in descending order
	Numeric  bool   // compare values as integers
	Plain    bool   // never style the output
	Generate int    // generate this many values instead of reading them
	Seed     uint64 // seed for -gen
	Verbose  bool   // debug logging

	Values []string // values given on the command line
}

// defineSortFlags calls fs.*Var for every SortFlags field.
func defineSortFlags(fs *flag.FlagSet, f *SortFlags) {
	fs.StringVar(&f.ConfigPath, "C", "", "path to config (uses ~/"+config.UserConfigFile+" when unspecified)")
	fs.BoolVar(&f.Reverse, "r", false, "sort in descending order")
	fs.BoolVar(&f.Numeric, "n", false, "compare values as integers")
	fs.BoolVar(&f.Plain, "plain", false, "print the list without styling")
	fs.IntVar(&f.Generate, "gen", 0, "sort this many generated integers instead of reading input")
	fs.Uint64Var(&f.Seed, "seed", 1, "seed used by -gen")
	fs.BoolVar(&f.Verbose, "V", false, "display debug logging")
}

// ParseSortArgs defines and parses the flags from the command line. args[0]
// is the program name. Remaining positional arguments become Values; when
// there are none the values are read from stdin.
func ParseSortArgs(args []string) (*SortFlags, error) {
	f := new(SortFlags)
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	defineSortFlags(fs, f)

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if f.Generate < 0 {
		return nil, fmt.Errorf("invalid -gen %d: must not be negative", f.Generate)
	}
	f.Values = fs.Args()
	if f.Generate > 0 && len(f.Values) > 0 {
		return nil, ErrGenerateWithValues
	}
	return f, nil
}

func mergeSortFlagsAndConfig(f *SortFlags, c *config.Config) {
	if f.Reverse {
		c.Order = config.Descending
	}
	if f.Numeric || f.Generate > 0 {
		c.Numeric = true
	}
	if f.Plain {
		c.Style = config.StylePlain
	}
	if f.Verbose {
		c.LogLevel = logrus.DebugLevel.String()
	}
}

// LoadConfigFromFlags loads the config file named by the flags, or the user's
// config when none is named, and applies the flags on top of it.
func LoadConfigFromFlags(f *SortFlags) (*config.Config, error) {
	var c *config.Config
	var err error
	if f.ConfigPath != "" {
		c, err = config.LoadFromFile(f.ConfigPath)
	} else {
		c, err = config.LoadUserConfig()
	}
	if err != nil {
		return nil, err
	}
	mergeSortFlagsAndConfig(f, c)
	return c, nil
}
