package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"hop.computer/dlist/config"
	"hop.computer/dlist/flags"
	"hop.computer/dlist/pkg/list"
	"hop.computer/dlist/pkg/readers"
)

// generatedMax bounds the integers produced by -gen.
const generatedMax = 1000

// inputValues returns the values to sort: generated, from the command line,
// or one per non-empty line of r, in that order of preference.
func inputValues(f *flags.SortFlags, r io.Reader) ([]string, error) {
	if f.Generate > 0 {
		logrus.Debugf("generating %d values with seed %d", f.Generate, f.Seed)
		ints := readers.NewSource(f.Seed).Ints(f.Generate, generatedMax)
		out := make([]string, len(ints))
		for i, n := range ints {
			out[i] = strconv.Itoa(n)
		}
		return out, nil
	}
	if len(f.Values) > 0 {
		return f.Values, nil
	}

	var out []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, s.Err()
}

// sortValues builds a list from values, sorts it in place as configured, and
// returns its rendering.
func sortValues(c *config.Config, values []string) (string, error) {
	logrus.Debugf("sorting %d values (order=%s, numeric=%t)", len(values), c.Order, c.Numeric)
	if !c.Numeric {
		l := list.Of(values...)
		sortList(l, c.Order)
		return l.String(), nil
	}

	l := list.New[int]()
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return "", errors.Wrapf(err, "value %q is not an integer", v)
		}
		l.PushBack(n)
	}
	sortList(l, c.Order)
	return l.String(), nil
}

func sortList[T constraints.Ordered](l *list.List[T], order config.Order) {
	if order == config.Descending {
		l.Sort(func(a, b T) bool { return a > b })
		return
	}
	list.SortOrdered(l)
}
