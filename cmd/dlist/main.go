package main

import (
	"errors"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"hop.computer/dlist/config"
	"hop.computer/dlist/display"
	"hop.computer/dlist/flags"
)

func main() {
	f, err := flags.ParseSortArgs(os.Args)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logrus.Fatalf("invalid arguments: %s", err)
	}

	c, err := flags.LoadConfigFromFlags(f)
	if err != nil {
		logrus.Fatalf("unable to load config: %s", err)
	}
	logrus.SetLevel(c.Level())

	values, err := inputValues(f, os.Stdin)
	if err != nil {
		logrus.Fatalf("unable to read input: %s", err)
	}
	out, err := sortValues(c, values)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := display.Print(os.Stdout, out, c.Style == config.StylePretty); err != nil {
		logrus.Fatalf("unable to write output: %s", err)
	}
}
