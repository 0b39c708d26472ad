package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init(nil, false) })

	var buf bytes.Buffer

	Init(&buf, true)
	assert.True(t, Enabled())

	Debug("discovered route files", "count", 3)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "count=3")

	buf.Reset()
	Init(&buf, false)
	assert.False(t, Enabled())

	Debug("hidden")
	Warn("hidden")
	assert.Empty(t, buf.String())
}
