package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	t.Parallel()

	d := time.Date(2024, 3, 7, 23, 59, 59, 0, time.Local)
	assert.Equal(t, "2024-03-07", DateKey(d))
	assert.Equal(t, "2024-03-08", DateKey(d.Add(time.Second)))
}
