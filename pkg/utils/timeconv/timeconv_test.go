package timeconv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertISTToEST(t *testing.T) {
	tests := []struct {
		ist string
		est string
	}{
		{"00:00", "13:30"}, // wraps to the previous day
		{"10:30", "00:00"},
		{"11:00", "00:30"},
		{"23:30", "13:00"},
		{"05:30", "19:00"},
	}

	for _, tt := range tests {
		got, err := ConvertISTToEST(tt.ist)
		require.NoError(t, err, "ist=%s", tt.ist)
		assert.Equal(t, tt.est, got, "ist=%s", tt.ist)
	}
}

func TestToTargetOffset_AllHalfHourSlots(t *testing.T) {
	// Total and deterministic over the 48 half-hour slots the UI offers.
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 30} {
			slot := fmt.Sprintf("%02d:%02d", hour, minute)

			first, err := ToTargetOffset(slot, ISTToESTOffsetMinutes)
			require.NoError(t, err, "slot=%s", slot)
			require.Len(t, first, 5, "slot=%s", slot)

			second, err := ToTargetOffset(slot, ISTToESTOffsetMinutes)
			require.NoError(t, err)
			assert.Equal(t, first, second, "conversion must be deterministic")
		}
	}
}

func TestToTargetOffset_ZeroOffset(t *testing.T) {
	got, err := ToTargetOffset("09:15", 0)
	require.NoError(t, err)
	assert.Equal(t, "09:15", got)
}

func TestToTargetOffset_MalformedInput(t *testing.T) {
	inputs := []string{"", "10", "10:30:00", "ab:cd", "24:00", "10:60", "-1:30", "10:-5"}
	for _, input := range inputs {
		_, err := ToTargetOffset(input, ISTToESTOffsetMinutes)
		assert.Error(t, err, "input=%q", input)
	}
}
