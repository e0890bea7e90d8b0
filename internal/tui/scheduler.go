package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/swipedeck/internal/deck"
)

// scheduler turns controller completions into tea.Tick commands. Update
// drains it after every message, so completions come back as ordinary
// messages on the program's loop.
type scheduler struct {
	pending []tea.Cmd
}

func (s *scheduler) Schedule(d time.Duration, c deck.Completion) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return animationDoneMsg(c)
	}))
}

func (s *scheduler) drain() []tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return cmds
}
