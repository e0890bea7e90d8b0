package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/jask/swipedeck/internal/cards"
	"github.com/jask/swipedeck/internal/config"
	"github.com/jask/swipedeck/internal/database"
	"github.com/jask/swipedeck/internal/database/repository"
	"github.com/jask/swipedeck/internal/deck"
	"github.com/jask/swipedeck/internal/service"
)

func testConfig() config.Config {
	return config.Config{
		Deck: config.DeckConfig{
			RotationRatio:             0.6,
			SwipeThreshold:            14,
			AnimationDuration:         50 * time.Millisecond,
			MaxCardScale:              1.15,
			ScaleAdjustmentFactor:     0.006,
			ShadowRadiusScalingFactor: 0.12,
		},
		UI: config.UIConfig{
			FrameInterval: 10 * time.Millisecond,
			DragStep:      5,
			RowAspect:     2,
			CardWidth:     30,
			CardHeight:    9,
		},
	}
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// harness plays the part of the tea runtime: it runs returned commands in
// order and feeds their messages back into Update.
type harness struct {
	*App
	t     *testing.T
	queue []tea.Cmd
}

func newHarness(t *testing.T, journal *service.JournalService) *harness {
	t.Helper()
	a, err := New(context.Background(), testConfig(), cards.Sample(), journal, quietLogger())
	require.NoError(t, err)
	h := &harness{App: a, t: t}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	return h
}

func (h *harness) enqueue(cmd tea.Cmd) {
	if cmd != nil {
		h.queue = append(h.queue, cmd)
	}
}

func (h *harness) send(msg tea.Msg) {
	_, cmd := h.Update(msg)
	h.enqueue(cmd)
}

func (h *harness) press(s string) {
	switch s {
	case "enter":
		h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "right":
		h.send(tea.KeyMsg{Type: tea.KeyRight})
	case "left":
		h.send(tea.KeyMsg{Type: tea.KeyLeft})
	default:
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

// step runs the oldest queued command.
func (h *harness) step() {
	cmd := h.queue[0]
	h.queue = h.queue[1:]
	switch m := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range m {
			h.enqueue(c)
		}
	default:
		h.send(m)
	}
}

// finish runs commands until the controller is idle.
func (h *harness) finish() {
	h.t.Helper()
	for i := 0; h.ctrl.Busy(); i++ {
		require.Less(h.t, i, 200, "animation never settled")
		require.NotEmpty(h.t, h.queue, "no completion scheduled")
		h.step()
	}
}

// settle runs every outstanding command, journal writes included.
func (h *harness) settle() {
	h.t.Helper()
	h.finish()
	for i := 0; len(h.queue) > 0; i++ {
		require.Less(h.t, i, 200, "commands never drained")
		h.step()
	}
}

func TestWindowSizeSetsSurface(t *testing.T) {
	h := newHarness(t, nil)
	require.Equal(t, deck.Size{Width: 100, Height: 60}, h.ctrl.Surface())
}

func TestAcceptButtonCommitsTopCard(t *testing.T) {
	h := newHarness(t, nil)

	h.press("y")
	require.NotEmpty(t, h.queue, "completion and frame ticks are scheduled")
	require.Equal(t, deck.PhaseCommitting, h.ctrl.Phase())
	require.Contains(t, h.View(), "LIKE")

	h.finish()
	require.Equal(t, 1, h.ctrl.Cursor())
	require.Equal(t, []deck.Direction{deck.DirectionTrailing}, h.history)
	require.Contains(t, h.status, "accept: Coastal hike")
}

func TestUndoUsesLastDirection(t *testing.T) {
	h := newHarness(t, nil)
	h.press("n")
	h.finish()
	require.Equal(t, 1, h.ctrl.Cursor())

	h.press("u")
	require.Equal(t, 0, h.ctrl.Cursor())
	anim, ok := h.ctrl.Animation()
	require.True(t, ok)
	require.Less(t, anim.From.X, 0.0, "card returns from the side it left")
	h.finish()
	require.Empty(t, h.history)

	h.press("u")
	require.Equal(t, deck.PhaseIdle, h.ctrl.Phase(), "nothing left to undo")
}

func TestKeysIgnoredWhileAnimating(t *testing.T) {
	h := newHarness(t, nil)
	h.press("y")
	h.press("n")
	h.press("u")
	h.press("right")
	h.finish()
	require.Equal(t, 1, h.ctrl.Cursor())
	require.Len(t, h.history, 1)
}

func TestKeyboardDrag(t *testing.T) {
	h := newHarness(t, nil)
	h.press("right")
	h.press("right")
	require.Equal(t, deck.PhaseDragging, h.ctrl.Phase())
	require.Equal(t, deck.ActionNone, h.ctrl.Action(), "10 cells is under the threshold")
	h.press("right")
	require.Equal(t, deck.ActionAccept, h.ctrl.Action())

	h.press("enter")
	require.Equal(t, deck.PhaseCommitting, h.ctrl.Phase())
	h.finish()
	require.Equal(t, 1, h.ctrl.Cursor())

	h.press("left")
	h.press("enter")
	h.finish()
	require.Equal(t, 1, h.ctrl.Cursor(), "short drag springs back")
}

func TestMouseDrag(t *testing.T) {
	h := newHarness(t, nil)
	h.send(tea.MouseMsg{X: 50, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.send(tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

	require.Equal(t, deck.PhaseDragging, h.ctrl.Phase())
	require.Equal(t, deck.ActionReject, h.ctrl.Action())
	require.Equal(t, deck.Point{X: -20, Y: 4}, h.ctrl.Visual().Offset)
	require.Contains(t, h.View(), "NOPE")

	h.send(tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.Equal(t, deck.PhaseCommitting, h.ctrl.Phase())
	h.finish()
	require.Equal(t, []deck.Direction{deck.DirectionLeading}, h.history)
}

func TestShuffleReplacesDeck(t *testing.T) {
	h := newHarness(t, nil)
	h.press("y")
	h.finish()
	h.press("y")

	h.press("s")
	require.Equal(t, 0, h.ctrl.Cursor())
	require.Equal(t, deck.PhaseIdle, h.ctrl.Phase())
	require.Empty(t, h.history)
	require.Equal(t, 6, h.ctrl.Len())

	// the abandoned animation's completion is stale
	h.settle()
	require.Equal(t, 0, h.ctrl.Cursor())
}

func TestExhaustedView(t *testing.T) {
	h := newHarness(t, nil)
	for i := 0; i < 6; i++ {
		h.press("y")
		h.finish()
	}
	require.True(t, h.ctrl.Exhausted())
	require.Contains(t, h.View(), "No more cards")
}

func newJournal(t *testing.T) *service.JournalService {
	t.Helper()
	db, err := database.Setup(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &service.JournalService{
		Sessions:  repository.NewSessionRepo(db),
		Decisions: repository.NewDecisionRepo(db),
	}
}

func TestJournalRecordsDecisions(t *testing.T) {
	journal := newJournal(t)
	h := newHarness(t, journal)
	require.NotEmpty(t, h.session.ID, "session assigned before any command runs")

	h.enqueue(h.Init())
	h.settle()

	h.press("y")
	h.settle()
	require.Equal(t, service.Summary{Accepted: 1}, h.summary)

	h.press("u")
	h.settle()
	require.Equal(t, service.Summary{Undone: 1}, h.summary)

	h.press("n")
	h.settle()
	require.Equal(t, service.Summary{Rejected: 1, Undone: 1}, h.summary)
}

func TestReplaceStartsNewSession(t *testing.T) {
	ctx := context.Background()
	journal := newJournal(t)
	h := newHarness(t, journal)
	h.enqueue(h.Init())
	h.settle()
	first := h.session.ID

	h.press("y")
	h.settle()
	require.Equal(t, 1, h.summary.Accepted)

	h.press("s")
	require.NotEqual(t, first, h.session.ID)
	require.Equal(t, service.Summary{}, h.summary)
	h.settle()
	require.Equal(t, service.Summary{}, h.summary)

	sessions, err := journal.Sessions.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	old, err := journal.Summary(ctx, first)
	require.NoError(t, err)
	require.Equal(t, 1, old.Accepted, "earlier deck load keeps its tally")

	h.send(summaryMsg{session: first, sum: old})
	require.Equal(t, service.Summary{}, h.summary, "tallies for a replaced session are dropped")
}
