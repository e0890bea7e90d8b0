package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jask/swipedeck/internal/cards"
	"github.com/jask/swipedeck/internal/config"
	"github.com/jask/swipedeck/internal/database/repository"
	"github.com/jask/swipedeck/internal/deck"
	"github.com/jask/swipedeck/internal/service"
)

// App hosts one deck controller on the Bubble Tea loop.
type App struct {
	ctx     context.Context
	cfg     config.Config
	log     logrus.FieldLogger
	journal *service.JournalService

	deck   cards.Deck
	ctrl   *deck.Controller
	remote *deck.Remote
	sched  *scheduler

	keys keyMap
	help help.Model

	// directions of decisive commits, newest last; undo flies the card
	// back in from the side it left.
	history []deck.Direction
	// commands queued by controller callbacks during the current Update
	pending []tea.Cmd
	framing bool

	mouseDown   bool
	mouseOrigin [2]int
	keyDrag     deck.Point

	// session is the journal session of the current deck load. It is
	// assigned on the update loop before any command that uses it.
	session repository.Session
	summary service.Summary
	status  string
	width   int
	height  int
	rng     *rand.Rand
	now     func() time.Time
}

// New builds the app. journal may be nil, which disables recording.
func New(ctx context.Context, cfg config.Config, d cards.Deck, journal *service.JournalService, log logrus.FieldLogger) (*App, error) {
	a := &App{
		ctx:     ctx,
		cfg:     cfg,
		log:     log,
		journal: journal,
		deck:    d,
		remote:  deck.NewRemote(),
		sched:   &scheduler{},
		keys:    newKeyMap(),
		help:    help.New(),
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
		now:     time.Now,
	}
	ctrl, err := deck.NewController(cfg.Deck.Params(), d.Items(), a.sched,
		deck.WithListener(a),
		deck.WithLogger(log),
		deck.WithRemote(a.remote),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	a.ctrl = ctrl
	a.beginSession()
	return a, nil
}

func (a *App) Init() tea.Cmd {
	return a.startSessionCmd()
}

// OnCommit implements deck.Listener.
func (a *App) OnCommit(item deck.Item, outcome deck.Action) {
	if dir, ok := outcome.Direction(); ok {
		a.history = append(a.history, dir)
	}
	a.status = fmt.Sprintf("%s: %s", outcome, cardTitle(item))
	a.pending = append(a.pending, a.recordCommitCmd(item, outcome, a.ctrl.Cursor()))
}

// OnRollback implements deck.Listener. It runs before the cursor moves,
// so the restored card sits at Cursor()-1.
func (a *App) OnRollback(dir deck.Direction) {
	if n := len(a.history); n > 0 {
		a.history = a.history[:n-1]
	}
	a.status = "undo"
	a.pending = append(a.pending, a.recordRollbackCmd(dir, a.ctrl.Cursor()-1))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		a.ctrl.SetSurface(float64(m.Width), float64(m.Height)*a.cfg.UI.RowAspect)
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
		a.handleKey(m)
	case tea.MouseMsg:
		a.handleMouse(m)
	case animationDoneMsg:
		a.ctrl.Complete(deck.Completion(m))
	case frameMsg:
		a.framing = false
	case deckLoadedMsg:
		a.replace(cards.Deck(m))
	case summaryMsg:
		if m.session == a.session.ID {
			a.summary = m.sum
		}
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.log.WithError(m.error).Warn("command failed")
		a.status = "error: " + m.Error()
	}
	return a, a.flush()
}

func (a *App) handleKey(m tea.KeyMsg) {
	switch {
	case key.Matches(m, a.keys.Accept):
		a.remote.Trigger(deck.DirectionTrailing)
	case key.Matches(m, a.keys.Reject):
		a.remote.Trigger(deck.DirectionLeading)
	case key.Matches(m, a.keys.Undo):
		a.remote.Rollback(a.undoDirection())
	case key.Matches(m, a.keys.Left):
		a.nudge(-a.cfg.UI.DragStep, 0)
	case key.Matches(m, a.keys.Right):
		a.nudge(a.cfg.UI.DragStep, 0)
	case key.Matches(m, a.keys.Up):
		a.nudge(0, -a.cfg.UI.DragStep)
	case key.Matches(m, a.keys.Down):
		a.nudge(0, a.cfg.UI.DragStep)
	case key.Matches(m, a.keys.Release):
		a.keyDrag = deck.Point{}
		a.ctrl.DragRelease()
	case key.Matches(m, a.keys.Reload):
		if a.deck.Path == "" {
			a.status = "sample deck has no file to reload"
			return
		}
		a.status = "reloading..."
		a.pending = append(a.pending, a.loadDeckCmd(a.deck.Path))
	case key.Matches(m, a.keys.Shuffle):
		a.replace(a.deck.Shuffled(a.rng))
		a.status = "shuffled"
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
}

// nudge moves the keyboard drag by one step. The drag restarts from the
// origin once the controller is idle again.
func (a *App) nudge(dx, dy float64) {
	if a.ctrl.Phase() == deck.PhaseIdle {
		a.keyDrag = deck.Point{}
	}
	a.keyDrag.X += dx
	a.keyDrag.Y += dy
	a.ctrl.DragSample(a.keyDrag.X, a.keyDrag.Y)
}

func (a *App) handleMouse(m tea.MouseMsg) {
	switch m.Action {
	case tea.MouseActionPress:
		if m.Button != tea.MouseButtonLeft {
			return
		}
		a.mouseDown = true
		a.mouseOrigin = [2]int{m.X, m.Y}
	case tea.MouseActionMotion:
		if !a.mouseDown {
			return
		}
		dx := float64(m.X - a.mouseOrigin[0])
		dy := float64(m.Y-a.mouseOrigin[1]) * a.cfg.UI.RowAspect
		a.ctrl.DragSample(dx, dy)
	case tea.MouseActionRelease:
		if !a.mouseDown {
			return
		}
		a.mouseDown = false
		a.ctrl.DragRelease()
	}
}

func (a *App) undoDirection() deck.Direction {
	if n := len(a.history); n > 0 {
		return a.history[n-1]
	}
	return deck.DirectionTrailing
}

func (a *App) replace(d cards.Deck) {
	if err := a.ctrl.Replace(d.Items()); err != nil {
		a.log.WithError(err).Warn("replace deck")
		a.status = "error: " + err.Error()
		return
	}
	a.deck = d
	a.history = nil
	a.keyDrag = deck.Point{}
	a.mouseDown = false
	a.summary = service.Summary{}
	a.beginSession()
	a.pending = append(a.pending, a.startSessionCmd())
}

// flush collects the commands produced while handling one message and
// keeps the frame ticker alive while an animation plays.
func (a *App) flush() tea.Cmd {
	cmds := append(a.sched.drain(), a.pending...)
	a.pending = nil
	if a.ctrl.Busy() && !a.framing {
		a.framing = true
		cmds = append(cmds, tea.Tick(a.cfg.UI.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) }))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (a *App) View() string {
	return a.render()
}

// beginSession assigns a fresh journal session to the current deck.
func (a *App) beginSession() {
	if a.journal == nil {
		return
	}
	a.session = a.journal.Begin(a.deck.Title, a.deck.Path, len(a.deck.Cards))
}

// commands
func (a *App) startSessionCmd() tea.Cmd {
	if a.journal == nil {
		return nil
	}
	sess := a.session
	return func() tea.Msg {
		if err := a.journal.Start(a.ctx, sess); err != nil {
			return errMsg{err}
		}
		return a.summaryMsg(sess.ID)
	}
}

func (a *App) recordCommitCmd(item deck.Item, outcome deck.Action, position int) tea.Cmd {
	if a.journal == nil {
		return nil
	}
	session := a.session.ID
	return func() tea.Msg {
		if err := a.journal.RecordCommit(a.ctx, session, item, outcome, position); err != nil {
			return errMsg{err}
		}
		return a.summaryMsg(session)
	}
}

func (a *App) recordRollbackCmd(dir deck.Direction, position int) tea.Cmd {
	if a.journal == nil {
		return nil
	}
	session := a.session.ID
	return func() tea.Msg {
		if err := a.journal.RecordRollback(a.ctx, session, dir, position); err != nil {
			return errMsg{err}
		}
		return a.summaryMsg(session)
	}
}

func (a *App) loadDeckCmd(path string) tea.Cmd {
	return func() tea.Msg {
		d, err := cards.Load(path)
		if err != nil {
			return errMsg{err}
		}
		return deckLoadedMsg(d)
	}
}

func (a *App) summaryMsg(session string) tea.Msg {
	sum, err := a.journal.Summary(a.ctx, session)
	if err != nil {
		return errMsg{err}
	}
	return summaryMsg{session: session, sum: sum}
}

func cardTitle(item deck.Item) string {
	if c, ok := item.(cards.Card); ok {
		return c.Title
	}
	return item.ID()
}
