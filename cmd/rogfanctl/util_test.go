package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rog-community/rogfanctl/pkg/board"
	"github.com/rog-community/rogfanctl/pkg/safety"
	"github.com/rog-community/rogfanctl/pkg/util"
)

func TestSelectedFans(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []board.Fan{board.FanCpu, board.FanGpu}, selectedFans(false, false))
	assert.Equal(t, []board.Fan{board.FanCpu, board.FanGpu}, selectedFans(true, true))
	assert.Equal(t, []board.Fan{board.FanCpu}, selectedFans(true, false))
	assert.Equal(t, []board.Fan{board.FanGpu}, selectedFans(false, true))
}

func TestPointStyle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, util.OkStyle(), pointStyle(3, nil))

	violation := &safety.Violation{Kind: safety.SpeedTooLow, Index: 4}
	assert.Equal(t, util.OkStyle(), pointStyle(3, violation))
	assert.Equal(t, criticalStyle(), pointStyle(4, violation))
	assert.NotEqual(t, criticalStyle(), pointStyle(5, violation))
}
