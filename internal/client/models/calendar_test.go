package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBoxAtGrowsSequence(t *testing.T) {
	cal := &Calendar{}
	box := DailyBox{ID: "1", Date: "2024-01-03", Content: Content{Text: "hi"}}

	cal.SetBoxAt(2, box)

	require.Len(t, cal.DailyBoxes, 3)
	assert.Equal(t, box, cal.DailyBoxes[2])
	assert.Empty(t, cal.DailyBoxes[0].ID)
	assert.Empty(t, cal.DailyBoxes[1].ID)
}

func TestSetBoxAtOverwritesOnlyThatOffset(t *testing.T) {
	cal := &Calendar{DailyBoxes: []DailyBox{
		{ID: "a", Content: Content{Text: "day0"}},
		{ID: "b", Content: Content{Text: "day1"}},
		{ID: "c", Content: Content{Text: "day2"}},
	}}

	cal.SetBoxAt(1, DailyBox{ID: "b2", Content: Content{Text: "rewritten"}})

	require.Len(t, cal.DailyBoxes, 3)
	assert.Equal(t, "a", cal.DailyBoxes[0].ID)
	assert.Equal(t, "b2", cal.DailyBoxes[1].ID)
	assert.Equal(t, "c", cal.DailyBoxes[2].ID)
}

func TestBoxAt(t *testing.T) {
	cal := &Calendar{}
	cal.SetBoxAt(3, DailyBox{ID: "x"})

	_, ok := cal.BoxAt(0)
	assert.False(t, ok, "sparse slot has no box")
	_, ok = cal.BoxAt(10)
	assert.False(t, ok, "out of range")
	box, ok := cal.BoxAt(3)
	assert.True(t, ok)
	assert.Equal(t, "x", box.ID)
}

func TestCalendarJSONKeepsUnknownFields(t *testing.T) {
	in := `{"title":"advent","startDate":"2024-01-01","theme":"winter","dailyBoxes":[]}`

	var cal Calendar
	require.NoError(t, json.Unmarshal([]byte(in), &cal))
	assert.Equal(t, "advent", cal.Title)
	assert.Equal(t, "2024-01-01", cal.StartDate)

	cal.SetBoxAt(0, DailyBox{ID: "1", Date: "2024-01-01"})

	out, err := json.Marshal(cal)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.JSONEq(t, `"winter"`, string(decoded["theme"]), "unknown aggregate field survives the round trip")
	assert.Contains(t, string(decoded["dailyBoxes"]), `"dailyBoxId":"1"`)
}
