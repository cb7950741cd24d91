package combinators

import (
	"testing"

	"gotest.tools/assert"
)

func TestOr(t *testing.T) {
	assert.Equal(t, "default", Or("", "default"))
	assert.Equal(t, "set", Or("set", "default"))
	assert.Equal(t, 3, Or(0, 3))
	assert.Equal(t, -1, Or(-1, 3))
}
