package deck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testItem string

func (t testItem) ID() string { return string(t) }

func items(ids ...string) []Item {
	out := make([]Item, len(ids))
	for i, id := range ids {
		out[i] = testItem(id)
	}
	return out
}

type scheduled struct {
	after time.Duration
	done  Completion
}

type fakeScheduler struct {
	queue []scheduled
}

func (f *fakeScheduler) Schedule(d time.Duration, c Completion) {
	f.queue = append(f.queue, scheduled{after: d, done: c})
}

// next pops the oldest scheduled completion.
func (f *fakeScheduler) next(t *testing.T) scheduled {
	t.Helper()
	require.NotEmpty(t, f.queue, "nothing scheduled")
	s := f.queue[0]
	f.queue = f.queue[1:]
	return s
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type recorder struct {
	commits   []commitCall
	rollbacks []Direction
}

type commitCall struct {
	id      string
	outcome Action
}

func (r *recorder) OnCommit(item Item, outcome Action) {
	r.commits = append(r.commits, commitCall{id: item.ID(), outcome: outcome})
}

func (r *recorder) OnRollback(dir Direction) {
	r.rollbacks = append(r.rollbacks, dir)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SwipeThreshold = 50
	cfg.AnimationDuration = 200 * time.Millisecond
	return cfg
}

type harness struct {
	c     *Controller
	sched *fakeScheduler
	rec   *recorder
}

func newHarness(t *testing.T, ids ...string) *harness {
	t.Helper()
	h := &harness{sched: &fakeScheduler{}, rec: &recorder{}}
	c, err := NewController(testConfig(), items(ids...), h.sched,
		WithListener(h.rec),
		WithClock(fixedClock{now: epoch}),
		WithSurface(Size{Width: 400, Height: 800}),
	)
	require.NoError(t, err)
	h.c = c
	return h
}

// drain fires scheduled completions until the controller is idle.
func (h *harness) drain(t *testing.T) {
	t.Helper()
	for h.c.Busy() {
		h.c.Complete(h.sched.next(t).done)
	}
}
