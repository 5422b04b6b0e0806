package phaseswap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceTime(t *testing.T) {
	start := time.Unix(100, 0)
	tm := &Time{Time: start}

	advanceTime(tm, start.Add(16*time.Millisecond))
	assert.Equal(t, 16*time.Millisecond, tm.Dt)
	assert.InDelta(t, 0.016, tm.DeltaSeconds(), 1e-6)
	assert.Equal(t, uint64(1), tm.Frame)

	advanceTime(tm, start)
	assert.Zero(t, tm.Dt, "a clock going backwards yields a zero step")
	assert.Equal(t, start, tm.Time)
	assert.Equal(t, uint64(2), tm.Frame)
}

func TestTimeModule_AdvancesInPrelude(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time {
		now = now.Add(50 * time.Millisecond)
		return now
	}

	app := NewApp().UseModules(TimeModule{Clock: clock})
	tm, ok := Resource[Time](app)
	require.True(t, ok)
	assert.Zero(t, tm.Dt)

	var seen time.Duration
	app.UseSystem(System(func(current *Time) { seen = current.Dt }))
	app.Step()

	assert.Equal(t, 50*time.Millisecond, seen)
	assert.Equal(t, uint64(1), tm.Frame)
}
