package localbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus(t *testing.T) {
	t.Parallel()

	b := New()

	var got1, got2, other []string
	b.Subscribe("key", func(v string) { got1 = append(got1, v) })
	b.Subscribe("key", func(v string) { got2 = append(got2, v) })
	b.Subscribe("other", func(v string) { other = append(other, v) })

	b.Publish("key", "v1")
	b.Publish("key", "v2")
	b.Publish("unknown", "v3")

	assert.Equal(t, []string{"v1", "v2"}, got1)
	assert.Equal(t, []string{"v1", "v2"}, got2)
	assert.Empty(t, other)
}
