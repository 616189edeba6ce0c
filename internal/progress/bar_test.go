package progress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarRedrawsOncePerPercent(t *testing.T) {
	var out bytes.Buffer
	bar := New(&out, 20)

	for i := 1; i <= 1000; i++ {
		bar.Update(i, 1000)
	}

	assert.Equal(t, 101, strings.Count(out.String(), "\r"))
	assert.Contains(t, out.String(), "100%")
}

func TestBarIgnoresEmptyTotal(t *testing.T) {
	var out bytes.Buffer
	bar := New(&out, 20)
	bar.Update(0, 0)
	bar.Clear()
	assert.Empty(t, out.String())
}

func TestBarClearResets(t *testing.T) {
	var out bytes.Buffer
	bar := New(&out, 20)
	bar.Update(1, 2)
	bar.Clear()
	assert.True(t, strings.HasSuffix(out.String(), "\r\x1b[2K"))

	out.Reset()
	bar.Update(1, 2)
	assert.NotEmpty(t, out.String(), "a cleared bar draws the same percentage again")
}
