package datex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	anchor := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		offset int
		want   string
	}{
		{name: "zero offset is the anchor", offset: 0, want: "2024-01-01"},
		{name: "two days in", offset: 2, want: "2024-01-03"},
		{name: "crosses a month boundary", offset: 31, want: "2024-02-01"},
		{name: "crosses a leap day", offset: 59, want: "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(Resolve(anchor, tt.offset)))
		})
	}
}

func TestResolveSuccessor(t *testing.T) {
	// resolve(d, n+1) == resolve(d, n) + 1 day, across a DST-free UTC year
	anchor := time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)
	for n := 0; n < 100; n++ {
		next := Resolve(anchor, n+1)
		assert.Equal(t, Resolve(anchor, n).AddDate(0, 0, 1), next, "offset %d", n)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2024-12-25")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), d)

	_, err = Parse("25.12.2024")
	require.Error(t, err)
}

func TestFormatParseRoundTrip(t *testing.T) {
	d := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	parsed, err := Parse(Format(d))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(d))
}
