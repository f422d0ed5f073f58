package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avern/tabline/app"
	"github.com/avern/tabline/core"
	"github.com/avern/tabline/core/widgets"
	"github.com/avern/tabline/internal/config"
	"github.com/avern/tabline/internal/session"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.UI.Accent != "" {
		widgets.SetAccent(cfg.UI.Accent)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Session.Path), 0o755); err != nil {
		log.Fatalf("mkdir session dir: %v", err)
	}

	db, err := session.Open(cfg.Session.Path)
	if err != nil {
		log.Fatalf("open session db: %v", err)
	}
	defer db.Close()

	if err := session.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	store := session.NewStore(db)
	tabs, activeIndex := restoreSession(ctx, store)

	p := tea.NewProgram(
		app.New(cfg, tabs, activeIndex, store),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// restoreSession loads the persisted tab set, falling back to the
// default tabs on a fresh or unreadable session.
func restoreSession(ctx context.Context, store *session.Store) ([]core.Entry, int) {
	rows, err := store.Tabs(ctx)
	if err != nil || len(rows) == 0 {
		return app.DefaultTabs(), 0
	}
	tabs := app.EntriesFromSession(rows)

	activeIndex := 0
	activeID, err := store.Active(ctx)
	if err == nil && activeID != "" {
		for i, t := range tabs {
			if t.ID == activeID {
				activeIndex = i
				break
			}
		}
	}
	return tabs, activeIndex
}
