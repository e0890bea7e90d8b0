package deck

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Phase is the controller's transition state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseCommitting
	PhaseRollingBack
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseCommitting:
		return "committing"
	case PhaseRollingBack:
		return "rolling_back"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// step is the animation currently awaiting completion.
type step int

const (
	stepNone step = iota
	stepSettle
	stepExit
	stepReturn
)

// Listener receives decisions. Calls happen synchronously on the
// controller's event loop.
type Listener interface {
	OnCommit(item Item, outcome Action)
	OnRollback(dir Direction)
}

// Listeners adapts plain functions to Listener. Nil fields are skipped.
type Listeners struct {
	Commit   func(item Item, outcome Action)
	Rollback func(dir Direction)
}

func (l Listeners) OnCommit(item Item, outcome Action) {
	if l.Commit != nil {
		l.Commit(item, outcome)
	}
}

func (l Listeners) OnRollback(dir Direction) {
	if l.Rollback != nil {
		l.Rollback(dir)
	}
}

// Option configures a Controller.
type Option func(*Controller)

func WithListener(l Listener) Option {
	return func(c *Controller) { c.listener = l }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = l }
}

func WithClock(clk Clock) Option {
	return func(c *Controller) { c.clock = clk }
}

func WithSurface(s Size) Option {
	return func(c *Controller) { c.surface = s }
}

// WithRemote attaches r once the controller is built.
func WithRemote(r *Remote) Option {
	return func(c *Controller) { c.remote = r }
}

// Controller sequences drags, triggers and rollbacks over a Store. At most
// one animation is in flight; input arriving meanwhile is dropped. It is not
// safe for concurrent use.
type Controller struct {
	cfg      Config
	store    *Store
	sched    Scheduler
	listener Listener
	log      logrus.FieldLogger
	clock    Clock
	surface  Size
	remote   *Remote

	phase   Phase
	step    step
	action  Action
	outcome Action
	visual  Visual
	anim    Animation
	seq     uint64
}

// NewController validates cfg and builds a controller over items.
func NewController(cfg Config, items []Item, sched Scheduler, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, fmt.Errorf("deck: scheduler is required")
	}
	store, err := NewStore(items)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:      cfg,
		store:    store,
		sched:    sched,
		listener: Listeners{},
		clock:    realClock{},
		surface:  Size{Width: 4 * cfg.SwipeThreshold, Height: 4 * cfg.SwipeThreshold},
		visual:   Neutral(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.listener == nil {
		c.listener = Listeners{}
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = l
	}
	if c.remote != nil {
		c.Attach(c.remote)
	}
	return c, nil
}

func (c *Controller) Config() Config { return c.cfg }

func (c *Controller) Phase() Phase { return c.phase }

func (c *Controller) Cursor() int { return c.store.Cursor() }

func (c *Controller) Len() int { return c.store.Len() }

func (c *Controller) Exhausted() bool { return c.store.Exhausted() }

// Busy reports whether an animation is in flight.
func (c *Controller) Busy() bool {
	return c.phase == PhaseCommitting || c.phase == PhaseRollingBack
}

// Action is the live label of the top card.
func (c *Controller) Action() Action { return c.action }

// Outcome is the frozen result of the commit in flight.
func (c *Controller) Outcome() Action { return c.outcome }

func (c *Controller) Visual() Visual { return c.visual }

// Animation returns the tween in flight, if any.
func (c *Controller) Animation() (Animation, bool) {
	return c.anim, c.Busy()
}

func (c *Controller) Surface() Size { return c.surface }

// SetSurface updates the bounding box used for exit trajectories.
func (c *Controller) SetSurface(width, height float64) {
	c.surface = Size{Width: width, Height: height}
}

// Top returns the interactive card.
func (c *Controller) Top() (Item, bool) { return c.store.Current() }

// Items returns a copy of the current collection.
func (c *Controller) Items() []Item { return c.store.Items() }

// Attach binds r to this controller's Trigger and Rollback.
func (c *Controller) Attach(r *Remote) {
	if r == nil {
		return
	}
	if c.remote != nil && c.remote != r {
		c.remote.detach(c)
	}
	c.remote = r
	r.attach(c)
}

// Detach unbinds the attached remote unless another controller has taken
// it over since; later calls on it no longer reach this controller.
func (c *Controller) Detach() {
	if c.remote != nil {
		c.remote.detach(c)
		c.remote = nil
	}
}

// DragSample feeds one translation sample of a drag on the top card.
func (c *Controller) DragSample(dx, dy float64) {
	switch {
	case c.Busy():
		c.reject("drag", ErrBusy)
		return
	case c.store.Exhausted():
		c.reject("drag", ErrExhausted)
		return
	}
	if c.phase == PhaseIdle {
		c.phase = PhaseDragging
		c.log.WithField("cursor", c.store.Cursor()).Debug("drag started")
	}
	g := Classify(c.cfg, Point{X: dx, Y: dy})
	c.action = g.Action
	c.visual = g.Visual
}

// DragRelease ends the drag. The action at this instant becomes the
// outcome and is reported right away, before the card leaves.
func (c *Controller) DragRelease() {
	if c.phase != PhaseDragging {
		c.reject("release", ErrNotDragging)
		return
	}
	item, _ := c.store.Current()
	c.outcome = c.action
	c.phase = PhaseCommitting
	c.log.WithFields(logrus.Fields{"item": item.ID(), "outcome": c.outcome}).Debug("drag released")
	c.listener.OnCommit(item, c.outcome)
	c.animateExit()
}

// Trigger commits the top card in dir as if it had been swiped. The card
// first eases to the threshold point; the commit is reported once it
// settles.
func (c *Controller) Trigger(dir Direction) {
	if !dir.Valid() {
		c.rejectDir("trigger", dir)
		return
	}
	switch {
	case c.phase != PhaseIdle:
		c.reject("trigger", ErrBusy)
		return
	case c.store.Exhausted():
		c.reject("trigger", ErrExhausted)
		return
	}
	c.phase = PhaseCommitting
	c.outcome = dir.Action()
	c.action = c.outcome
	settle := Point{X: dir.sign() * c.cfg.SwipeThreshold}
	c.visual = visualFor(c.cfg, settle)
	c.log.WithField("direction", dir).Debug("trigger")
	c.animate(stepSettle, Point{}, settle)
}

// Rollback restores the previous card, flying it in from the dir side.
// The rollback is reported and the cursor moves before the animation plays.
func (c *Controller) Rollback(dir Direction) {
	if !dir.Valid() {
		c.rejectDir("rollback", dir)
		return
	}
	switch {
	case c.phase != PhaseIdle:
		c.reject("rollback", ErrBusy)
		return
	case c.store.Cursor() == 0:
		c.reject("rollback", ErrAtStart)
		return
	}
	c.listener.OnRollback(dir)
	c.store.retreat()
	c.phase = PhaseRollingBack
	c.action = dir.Action()
	c.visual = Neutral()
	from := ExitTarget(Point{X: dir.sign() * c.cfg.SwipeThreshold}, c.action, c.surface)
	c.log.WithFields(logrus.Fields{"direction": dir, "cursor": c.store.Cursor()}).Debug("rollback")
	c.animate(stepReturn, from, Point{})
}

// Complete handles the end of the animation identified by done.
func (c *Controller) Complete(done Completion) {
	if !c.Busy() || done.Seq != c.seq {
		c.log.WithError(ErrStaleCompletion).WithField("seq", done.Seq).Debug("completion ignored")
		return
	}
	switch c.step {
	case stepSettle:
		item, _ := c.store.Current()
		c.listener.OnCommit(item, c.outcome)
		c.animateExit()
	case stepExit:
		if c.outcome != ActionNone {
			c.store.advance()
		}
		c.log.WithFields(logrus.Fields{"outcome": c.outcome, "cursor": c.store.Cursor()}).Debug("commit complete")
		c.settle()
	case stepReturn:
		c.log.WithField("cursor", c.store.Cursor()).Debug("rollback complete")
		c.settle()
	}
}

// Replace swaps the collection and rewinds to the first card. Any
// transition in flight is abandoned without a notification; its
// completion will be ignored.
func (c *Controller) Replace(items []Item) error {
	if err := c.store.Replace(items); err != nil {
		return err
	}
	if c.phase != PhaseIdle {
		c.log.WithField("phase", c.phase).Debug("transition abandoned by replace")
	}
	c.seq++
	c.settle()
	return nil
}

// Cards returns the visible cards bottom first. Only the top card carries
// the live action and visual.
func (c *Controller) Cards() []Card {
	items := Window(c.store)
	out := make([]Card, len(items))
	for i, it := range items {
		if i == len(items)-1 {
			out[i] = Card{Item: it, Top: true, Action: c.action, Visual: c.visual}
			continue
		}
		out[i] = Card{Item: it, Action: ActionNone, Visual: Neutral()}
	}
	return out
}

func (c *Controller) animateExit() {
	from := c.visual.Offset
	to := ExitTarget(from, c.outcome, c.surface)
	c.visual.Offset = to
	c.animate(stepExit, from, to)
}

func (c *Controller) animate(s step, from, to Point) {
	c.seq++
	c.step = s
	c.anim = Animation{From: from, To: to, Start: c.clock.Now(), Duration: c.cfg.AnimationDuration}
	c.sched.Schedule(c.cfg.AnimationDuration, Completion{Seq: c.seq})
}

func (c *Controller) settle() {
	c.phase = PhaseIdle
	c.step = stepNone
	c.action = ActionNone
	c.outcome = ActionNone
	c.visual = Neutral()
	c.anim = Animation{}
}

func (c *Controller) reject(op string, err error) {
	c.log.WithError(err).WithFields(logrus.Fields{"op": op, "phase": c.phase}).Debug("input ignored")
}

func (c *Controller) rejectDir(op string, dir Direction) {
	c.log.WithError(ErrInvalidDirection).WithFields(logrus.Fields{"op": op, "direction": dir}).Warn("input ignored")
}
