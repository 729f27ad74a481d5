package maintenance

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		0:                                 "0:00:00",
		3 * time.Hour:                     "3:00:00",
		90*time.Minute + 5*time.Second:    "1:30:05",
		27 * time.Hour:                    "27:00:00",
		time.Second + 400*time.Millisecond: "0:00:01",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDuration(in), "formato de %v", in)
	}
}

func TestParseDuration(t *testing.T) {
	cases := map[string]time.Duration{
		"1:00:00":           time.Hour,
		"02:30:00":          150 * time.Minute,
		"45:10":             45*time.Minute + 10*time.Second,
		"90":                90 * time.Second,
		"1 02:00:00":        26 * time.Hour,
		"2 days, 0:00:01":   48*time.Hour + time.Second,
		"0:00:01.500000":    1500 * time.Millisecond,
	}
	for in, want := range cases {
		got, err := ParseDuration(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "x:00:00", "1:2:3:4", "-5"} {
		_, err := ParseDuration(bad)
		assert.Error(t, err, bad)
	}
}

func TestDuration_JSON(t *testing.T) {
	var payload struct {
		LostTime Duration `json:"lost_time"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"lost_time":"2:15:00"}`), &payload))
	assert.Equal(t, 135*time.Minute, payload.LostTime.Std())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lost_time":"2:15:00"}`, string(out))
}

func TestUtilizationYMTBF(t *testing.T) {
	assert.InDelta(t, 1.0, Utilization(0), 1e-9)
	assert.InDelta(t, 0.5, Utilization(2100*time.Minute), 1e-9)
	assert.Less(t, Utilization(5000*time.Minute), 0.0, "no se acota a cero")

	assert.Equal(t, time.Duration(0), MTBF(0))
	assert.Equal(t, time.Duration(0), MTBF(1))
	assert.Equal(t, 2100*time.Minute, MTBF(2))
}
