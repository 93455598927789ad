package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got := ParseDate("2026-01-06")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), *got)

	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("06/01/2026"))
	assert.Nil(t, ParseDate("not a date"))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 12*time.Hour, ParseDuration("12h", time.Hour))
	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("twelve hours", time.Hour))
}
