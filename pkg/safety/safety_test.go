package safety_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rog-community/rogfanctl/pkg/board"
	"github.com/rog-community/rogfanctl/pkg/curve"
	"github.com/rog-community/rogfanctl/pkg/safety"
)

func limitsFor(t *testing.T, f board.Fan) safety.Limits {
	t.Helper()
	limits, ok := board.GA401.FanLimits(f)
	require.True(t, ok)
	return limits
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		name   string
		config string
		fan    board.Fan
		want   *safety.Violation
	}{
		{
			name:   "safe cpu curve",
			config: "30c:1%,49c:2%,59c:3%,69c:4%,79c:31%,89c:49%,99c:56%,109c:58%",
			fan:    board.FanCpu,
		},
		{
			name:   "temperature above band",
			config: "41c:1%,49c:2%,59c:3%,69c:4%,79c:31%,89c:49%,99c:56%,109c:58%",
			fan:    board.FanCpu,
			want:   &safety.Violation{Kind: safety.TempOutOfRange, Index: 0},
		},
		{
			name:   "temperature below band",
			config: "30c:1%,49c:2%,59c:3%,69c:4%,79c:31%,89c:49%,99c:56%,29c:58%",
			fan:    board.FanCpu,
			want:   &safety.Violation{Kind: safety.TempOutOfRange, Index: 7},
		},
		{
			name:   "speed below cpu floor",
			config: "30c:1%,49c:2%,59c:3%,69c:4%,79c:30%,89c:49%,99c:56%,109c:58%",
			fan:    board.FanCpu,
			want:   &safety.Violation{Kind: safety.SpeedTooLow, Index: 4},
		},
		{
			name:   "gpu floors are stricter than cpu",
			config: "30c:1%,49c:2%,59c:3%,69c:4%,79c:31%,89c:51%,99c:61%,109c:61%",
			fan:    board.FanGpu,
			want:   &safety.Violation{Kind: safety.SpeedTooLow, Index: 4},
		},
		{
			name:   "safe gpu curve",
			config: "30c:1%,49c:2%,59c:3%,69c:4%,79c:34%,89c:51%,99c:61%,109c:61%",
			fan:    board.FanGpu,
		},
		{
			name:   "decreasing speed",
			config: "30c:5%,49c:4%,59c:5%,69c:6%,79c:31%,89c:49%,99c:56%,109c:58%",
			fan:    board.FanCpu,
			want:   &safety.Violation{Kind: safety.SpeedTooLow, Index: 1},
		},
		{
			name:   "first violation wins",
			config: "41c:1%,49c:2%,59c:3%,69c:4%,79c:30%,89c:49%,99c:56%,109c:58%",
			fan:    board.FanCpu,
			want:   &safety.Violation{Kind: safety.TempOutOfRange, Index: 0},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := curve.Parse(tc.config)
			require.NoError(t, err)

			got := safety.Check(c, limitsFor(t, tc.fan))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTempBand(t *testing.T) {
	t.Parallel()

	min, max := safety.TempBand(0)
	assert.Equal(t, uint8(30), min)
	assert.Equal(t, uint8(39), max)

	min, max = safety.TempBand(7)
	assert.Equal(t, uint8(100), min)
	assert.Equal(t, uint8(109), max)
}

func TestViolation_Error(t *testing.T) {
	t.Parallel()

	v := &safety.Violation{Kind: safety.TempOutOfRange, Index: 2}
	assert.Equal(t, "curve point 2: temperature out of range (band is 50-59)", v.Error())

	v = &safety.Violation{Kind: safety.SpeedTooLow, Index: 4}
	assert.Equal(t, "curve point 4: speed too low", v.Error())
}
