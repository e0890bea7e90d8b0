package deck

import "time"

// Clock supplies animation start times; tests pin it.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Completion is the event that ends an animation. Seq ties it to the
// animation that scheduled it so abandoned animations can be told apart.
type Completion struct {
	Seq uint64
}

// Scheduler delivers c back to the controller after d has elapsed, on the
// same event loop that delivers input.
type Scheduler interface {
	Schedule(d time.Duration, c Completion)
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, c Completion)

func (f SchedulerFunc) Schedule(d time.Duration, c Completion) { f(d, c) }

// Animation describes the offset tween currently playing. The controller's
// model value already holds To; renderers use At for intermediate frames.
type Animation struct {
	From     Point
	To       Point
	Start    time.Time
	Duration time.Duration
}

// Progress is the eased fraction of the animation elapsed at now, in [0,1].
func (a Animation) Progress(now time.Time) float64 {
	if a.Duration <= 0 {
		return 1
	}
	t := float64(now.Sub(a.Start)) / float64(a.Duration)
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	// ease-out cubic
	u := 1 - t
	return 1 - u*u*u
}

// At interpolates the offset at now.
func (a Animation) At(now time.Time) Point {
	p := a.Progress(now)
	return Point{
		X: a.From.X + (a.To.X-a.From.X)*p,
		Y: a.From.Y + (a.To.Y-a.From.Y)*p,
	}
}

// Done reports whether the tween has reached its end at now. Completion is
// still signalled only by the scheduled event.
func (a Animation) Done(now time.Time) bool {
	return !now.Before(a.Start.Add(a.Duration))
}
