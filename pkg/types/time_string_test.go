package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, ts.Minutes())
	assert.Equal(t, "09:30", ts.String())
	assert.False(t, ts.IsZero())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("9h")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	a, _ := NewTimeStringFromString("10:00")
	b, _ := NewTimeStringFromString("11:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeString_On(t *testing.T) {
	ts, _ := NewTimeStringFromString("14:10")
	date := time.Date(2025, 1, 10, 23, 59, 0, 0, time.UTC)

	got := ts.On(date)
	assert.True(t, got.Equal(time.Date(2025, 1, 10, 14, 10, 0, 0, time.UTC)))
}

func TestTimeString_JSON(t *testing.T) {
	var payload struct {
		At TimeString `json:"at"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":"08:05"}`), &payload))
	assert.Equal(t, 485, payload.At.Minutes())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"08:05"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"at":"8 o'clock"}`), &payload))

	require.NoError(t, json.Unmarshal([]byte(`{"at":""}`), &payload))
	assert.True(t, payload.At.IsZero())
	assert.ErrorIs(t, payload.At.Validate(), ErrInvalidTimeString)
}
