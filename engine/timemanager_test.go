package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDeadline_Infinite(t *testing.T) {
	start := time.Unix(1000, 0)
	d, err := ComputeDeadline(SearchOptions{Infinite: true}, true, start)
	require.NoError(t, err)
	assert.False(t, d.HasStopAt)
	assert.False(t, d.Expired(start.Add(time.Hour)))
}

func TestComputeDeadline_MoveTimeSubtractsSlack(t *testing.T) {
	start := time.Unix(1000, 0)
	d, err := ComputeDeadline(SearchOptions{HasMoveTime: true, MoveTime: 100 * time.Millisecond}, true, start)
	require.NoError(t, err)
	assert.True(t, d.HasStopAt)
	assert.Equal(t, start.Add(80*time.Millisecond), d.StopAt)
}

func TestComputeDeadline_MovesToGoDividesRemainingTime(t *testing.T) {
	start := time.Unix(1000, 0)
	opts := SearchOptions{
		HasWTime: true, WTime: 10 * time.Second,
		HasMovesToGo: true, MovesToGo: 10,
	}
	d, err := ComputeDeadline(opts, true, start)
	require.NoError(t, err)
	assert.Equal(t, start.Add(1*time.Second-Slack), d.StopAt)
}

func TestComputeDeadline_IncrementBasedTiming(t *testing.T) {
	start := time.Unix(1000, 0)
	opts := SearchOptions{
		HasBTime: true, BTime: 20 * time.Second,
		HasBInc: true, BInc: 2 * time.Second,
	}
	d, err := ComputeDeadline(opts, false, start)
	require.NoError(t, err)
	want := 20*time.Second/20 + 2*time.Second/2
	assert.Equal(t, start.Add(want-Slack), d.StopAt)
}

func TestComputeDeadline_NoClockInfoIsUnimplemented(t *testing.T) {
	start := time.Unix(1000, 0)
	_, err := ComputeDeadline(SearchOptions{}, true, start)
	assert.ErrorIs(t, err, ErrUnimplemented)
}

func TestComputeDeadline_TimeWithoutIncOrMovesToGoIsUnimplemented(t *testing.T) {
	start := time.Unix(1000, 0)
	opts := SearchOptions{HasWTime: true, WTime: 5 * time.Second}
	_, err := ComputeDeadline(opts, true, start)
	assert.ErrorIs(t, err, ErrUnimplemented)
}

func TestComputeDeadline_DepthLimitPassesThrough(t *testing.T) {
	start := time.Unix(1000, 0)
	opts := SearchOptions{Infinite: true, HasDepth: true, Depth: 6}
	d, err := ComputeDeadline(opts, true, start)
	require.NoError(t, err)
	assert.True(t, d.HasDepthLimit)
	assert.Equal(t, uint8(6), d.DepthLimit)
}
