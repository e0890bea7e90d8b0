package deck

import "sync"

// Remote lets controls outside the card (buttons, key bindings) drive the
// same transitions as a drag. It is usually built before the controller
// exists; until a controller attaches, calls do nothing.
type Remote struct {
	mu       sync.RWMutex
	owner    *Controller
	trigger  func(Direction)
	rollback func(Direction)
}

func NewRemote() *Remote { return &Remote{} }

// Trigger commits the top card in dir.
func (r *Remote) Trigger(dir Direction) {
	if h := r.handlers(true); h != nil {
		h(dir)
	}
}

// Rollback restores the previous card from the dir side.
func (r *Remote) Rollback(dir Direction) {
	if h := r.handlers(false); h != nil {
		h(dir)
	}
}

// Attached reports whether a controller is bound.
func (r *Remote) Attached() bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.trigger != nil
}

func (r *Remote) handlers(trigger bool) func(Direction) {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if trigger {
		return r.trigger
	}
	return r.rollback
}

// attach binds r to c, replacing any previous owner.
func (r *Remote) attach(c *Controller) {
	r.mu.Lock()
	r.owner, r.trigger, r.rollback = c, c.Trigger, c.Rollback
	r.mu.Unlock()
}

// detach unbinds r only if c still owns it.
func (r *Remote) detach(c *Controller) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.owner != c {
		return
	}
	r.owner, r.trigger, r.rollback = nil, nil, nil
}
