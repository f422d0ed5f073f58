package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Tab is one persisted tab entry.
type Tab struct {
	ID        string
	Title     string
	Position  int
	CreatedAt time.Time
}

// Store persists the open tab set and the active tab so a session
// survives restarts.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveTabs replaces the persisted tab set with the given one.
func (s *Store) SaveTabs(ctx context.Context, tabs []Tab) error {
	return WithTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tabs`); err != nil {
			return fmt.Errorf("clear tabs: %w", err)
		}
		for _, t := range tabs {
			created := t.CreatedAt
			if created.IsZero() {
				created = Now()
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO tabs (id, title, position, created_at)
				VALUES (?, ?, ?, ?)
			`, t.ID, t.Title, t.Position, created)
			if err != nil {
				return fmt.Errorf("insert tab %s: %w", t.ID, err)
			}
		}
		return nil
	})
}

// Tabs returns all persisted tabs in position order.
func (s *Store) Tabs(ctx context.Context) ([]Tab, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, position, created_at
		FROM tabs
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tabs []Tab
	for rows.Next() {
		var t Tab
		if err := rows.Scan(&t.ID, &t.Title, &t.Position, &t.CreatedAt); err != nil {
			return nil, err
		}
		tabs = append(tabs, t)
	}
	return tabs, rows.Err()
}

// SetActive records the active tab.
func (s *Store) SetActive(ctx context.Context, tabID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO active_tab (id, tab_id)
		VALUES (1, ?)
	`, tabID)
	return err
}

// Active returns the recorded active tab ID, or "" when none is set.
func (s *Store) Active(ctx context.Context) (string, error) {
	var tabID string
	err := s.db.QueryRowContext(ctx, `SELECT tab_id FROM active_tab WHERE id = 1`).Scan(&tabID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return tabID, err
}

// Clear removes the persisted session.
func (s *Store) Clear(ctx context.Context) error {
	return WithTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tabs`); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM active_tab`)
		return err
	})
}
