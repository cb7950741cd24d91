package must

import (
	"errors"
	"strconv"
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestDo(t *testing.T) {
	assert.Equal(t, 42, Do(strconv.Atoi("42")))
	assert.Check(t, is.Panics(func() { Do(0, errors.New("boom")) }))
}
