package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/jask/swipedeck/internal/cards"
	"github.com/jask/swipedeck/internal/config"
	"github.com/jask/swipedeck/internal/database"
	"github.com/jask/swipedeck/internal/database/repository"
	"github.com/jask/swipedeck/internal/logging"
	"github.com/jask/swipedeck/internal/service"
	"github.com/jask/swipedeck/internal/tui"
)

func main() {
	ctx := context.Background()

	flags := config.Flags()
	resetJournal := flags.Bool("reset-journal", false, "delete all recorded sessions and exit")
	listSessions := flags.Int("sessions", 0, "print the N most recent sessions and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("flags: %v", err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	var db *sql.DB
	if cfg.Database.Path != "" {
		db, err = database.Setup(cfg.Database.Path)
		if err != nil {
			log.Fatalf("journal: %v", err)
		}
		defer db.Close()
	}

	if *resetJournal {
		if db == nil {
			log.Fatalf("reset: no database configured")
		}
		if err := (&service.MaintenanceService{DB: db}).Reset(ctx); err != nil {
			log.Fatalf("reset: %v", err)
		}
		fmt.Println("journal cleared")
		return
	}

	if *listSessions > 0 {
		if db == nil {
			log.Fatalf("sessions: no database configured")
		}
		if err := printSessions(ctx, repository.NewSessionRepo(db), *listSessions); err != nil {
			log.Fatalf("sessions: %v", err)
		}
		return
	}

	d := cards.Sample()
	if cfg.DeckFile != "" {
		d, err = cards.Load(cfg.DeckFile)
		if err != nil {
			log.Fatalf("deck: %v", err)
		}
	}
	if f := flags.Lookup("deck"); f != nil && f.Changed {
		if err := config.SaveDeckFile(cfg); err != nil {
			logger.WithError(err).Warn("remember deck file")
		}
	}

	var journal *service.JournalService
	if db != nil {
		journal = &service.JournalService{
			Sessions:  repository.NewSessionRepo(db),
			Decisions: repository.NewDecisionRepo(db),
		}
	}

	app, err := tui.New(ctx, cfg, d, journal, logger)
	if err != nil {
		log.Fatalf("tui: %v", err)
	}

	logger.WithFields(logrus.Fields{"deck": d.Title, "cards": len(d.Cards)}).Info("starting")
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func printSessions(ctx context.Context, repo *repository.SessionRepo, limit int) error {
	sessions, err := repo.List(ctx, limit)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		fmt.Printf("%s  %s  %-24s %3d cards  %s\n",
			s.StartedAt.Format("2006-01-02 15:04"), s.ID, s.DeckTitle, s.CardCount, s.DeckFile)
	}
	return nil
}
