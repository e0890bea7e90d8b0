// Package deck holds the swipe deck state machine: the item store and its
// cursor, two-card windowing, gesture classification, and the controller
// that sequences commits and rollbacks one transition at a time.
//
// The controller never sleeps or spawns goroutines. Every animation ends
// with a Completion handed to the host's Scheduler, and the host feeds it
// back through Controller.Complete on the same event loop as input.
package deck
