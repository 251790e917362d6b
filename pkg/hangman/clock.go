package hangman

import "time"

// ElapsedPrecision is the resolution elapsed round time is reported in.
const ElapsedPrecision = 100 * time.Millisecond

// Clock measures the time a round takes. It only samples the time source
// when started, stopped or read; nothing ticks in the background.
type Clock struct {
	Started time.Time
	Stopped time.Time

	now func() time.Time
}

func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

func (cl *Clock) Start() {
	cl.Started = cl.now()
	cl.Stopped = time.Time{}
}

func (cl *Clock) Stop() {
	if cl.Stopped.IsZero() {
		cl.Stopped = cl.now()
	}
}

// Elapsed returns the time between Start and Stop, or until now while the
// clock is still running, rounded to ElapsedPrecision.
func (cl *Clock) Elapsed() time.Duration {
	if cl.Started.IsZero() {
		return 0
	}

	end := cl.Stopped
	if end.IsZero() {
		end = cl.now()
	}
	return end.Sub(cl.Started).Round(ElapsedPrecision)
}
