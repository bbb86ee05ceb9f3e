package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rog-community/rogfanctl/pkg/board"
)

func TestFromName(t *testing.T) {
	t.Parallel()

	b, ok := board.FromName("GA401IV")
	require.True(t, ok)
	assert.Equal(t, board.GA401, b)
	assert.Equal(t, "GA401IV", b.Name())

	for _, name := range []string{"", "GA401", "ga401iv", "GA502IV", "GA401IV "} {
		_, ok := board.FromName(name)
		assert.False(t, ok, "name %q must not match", name)
	}
}

func TestBoard_FanAddress(t *testing.T) {
	t.Parallel()

	addr, ok := board.GA401.FanAddress(board.FanCpu)
	require.True(t, ok)
	assert.Equal(t, uint32(0x40), addr)

	addr, ok = board.GA401.FanAddress(board.FanGpu)
	require.True(t, ok)
	assert.Equal(t, uint32(0x44), addr)
}

func TestBoard_EveryFanSupported(t *testing.T) {
	t.Parallel()

	for _, f := range board.Fans() {
		_, ok := board.GA401.FanAddress(f)
		assert.True(t, ok, "fan %s must have an address on GA401", f)

		limits, ok := board.GA401.FanLimits(f)
		assert.True(t, ok, "fan %s must have safety limits on GA401", f)
		assert.NotZero(t, limits.MinSpeed[7], "top of the envelope must have a floor")
	}
}

func TestBoard_MethodPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `\_SB.PCI0.SBRG.EC0.SUFC`, board.GA401.MethodPath())
}

func TestFanFromName(t *testing.T) {
	t.Parallel()

	f, ok := board.FanFromName("cpu")
	require.True(t, ok)
	assert.Equal(t, board.FanCpu, f)

	f, ok = board.FanFromName("gpu")
	require.True(t, ok)
	assert.Equal(t, board.FanGpu, f)

	_, ok = board.FanFromName("case")
	assert.False(t, ok)
}
