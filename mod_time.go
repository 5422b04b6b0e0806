package phaseswap

import (
	"time"
)

type Time struct {
	Time  time.Time
	Dt    time.Duration
	Frame uint64
}

// DeltaSeconds is Dt as float seconds, the unit every controller stage uses.
func (t *Time) DeltaSeconds() float32 {
	return float32(t.Dt.Seconds())
}

type TimeModule struct {
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	clock := mod.Clock
	if clock == nil {
		clock = time.Now
	}

	cmd.AddResources(&Time{
		Time: clock(),
		Dt:   0,
	})
	app.UseSystem(
		System(func(t *Time) {
			advanceTime(t, clock())
		}).
			InStage(Prelude).
			RunAlways(),
	)
}

func advanceTime(t *Time, now time.Time) {
	t.Dt = now.Sub(t.Time)
	if t.Dt < 0 {
		t.Dt = 0
	}
	t.Time = now
	t.Frame++
}
