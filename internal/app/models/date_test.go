package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.March, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-15"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, d.Equal(back))
}

func TestDate_MarshalZeroAsNull(t *testing.T) {
	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDate_UnmarshalNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.IsZero())
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"15/03/2026"`), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2006-01-02")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", d.String())

	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDate_Ordering(t *testing.T) {
	earlier := NewDate(2026, time.March, 15)
	later := earlier.AddDays(1)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
}
