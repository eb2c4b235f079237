package store

import (
	"database/sql"
	"errors"

	dbutil "github.com/arambha/showroom/internal/db"
)

// NavigationState is the browser position restored on the next launch.
type NavigationState struct {
	ViewMode   string // "home", "furniture" or "interiors"
	CategoryID string
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT view_mode, category_id FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var categoryID sql.NullString

	err := row.Scan(&state.ViewMode, &categoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.CategoryID = dbutil.NullStringValue(categoryID)
	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, view_mode, category_id)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			view_mode = excluded.view_mode,
			category_id = excluded.category_id
	`, state.ViewMode, dbutil.NullString(state.CategoryID))
	return err
}
