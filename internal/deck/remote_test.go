package deck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoteBeforeAttachIsNoop(t *testing.T) {
	r := NewRemote()
	require.False(t, r.Attached())
	require.NotPanics(t, func() {
		r.Trigger(DirectionTrailing)
		r.Rollback(DirectionLeading)
	})

	var nilRemote *Remote
	require.NotPanics(t, func() { nilRemote.Trigger(DirectionTrailing) })
	require.False(t, nilRemote.Attached())
}

func TestRemoteDrivesController(t *testing.T) {
	r := NewRemote()
	h := newHarness(t, "A", "B", "C")

	r.Trigger(DirectionTrailing)
	require.Equal(t, PhaseIdle, h.c.Phase(), "not attached yet")

	h.c.Attach(r)
	require.True(t, r.Attached())

	r.Trigger(DirectionTrailing)
	h.drain(t)
	r.Trigger(DirectionLeading)
	h.drain(t)
	require.Equal(t, 2, h.c.Cursor())
	require.Equal(t, []commitCall{{id: "A", outcome: ActionAccept}, {id: "B", outcome: ActionReject}}, h.rec.commits)

	r.Rollback(DirectionLeading)
	require.Equal(t, 1, h.c.Cursor())
	r.Trigger(DirectionTrailing)
	require.Equal(t, PhaseRollingBack, h.c.Phase(), "guard applies through the remote")
	h.drain(t)

	h.c.Detach()
	require.False(t, r.Attached())
	r.Rollback(DirectionLeading)
	require.Equal(t, 1, h.c.Cursor())
}

func TestRemoteDetachAfterTakeover(t *testing.T) {
	r := NewRemote()
	a := newHarness(t, "A1", "A2")
	b := newHarness(t, "B1", "B2")

	a.c.Attach(r)
	b.c.Attach(r)
	a.c.Detach()
	require.True(t, r.Attached(), "b still owns the remote")

	r.Trigger(DirectionTrailing)
	require.Equal(t, PhaseCommitting, b.c.Phase())
	require.Equal(t, PhaseIdle, a.c.Phase())
	b.drain(t)
	require.Equal(t, 1, b.c.Cursor())
	require.Zero(t, a.c.Cursor())

	b.c.Detach()
	require.False(t, r.Attached())
}

func TestRemoteReattachReleasesPrevious(t *testing.T) {
	r1, r2 := NewRemote(), NewRemote()
	h := newHarness(t, "A", "B")

	h.c.Attach(r1)
	h.c.Attach(r2)
	require.False(t, r1.Attached())
	require.True(t, r2.Attached())

	r1.Trigger(DirectionTrailing)
	require.Equal(t, PhaseIdle, h.c.Phase())
}
