package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "showroom"
	dbFileName   = "showroom.db"
	saveDebounce = 500 * time.Millisecond
)

// Store persists the catalog and the browser's navigation state.
type Store struct {
	db        *sql.DB
	now       func() time.Time
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *NavigationState
}

// OpenDefault opens the store in the XDG data directory.
func OpenDefault() (*Store, error) {
	path, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection keeps per-connection pragmas in effect, and every pooled
	// connection to ":memory:" would otherwise get its own empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close flushes pending navigation state and closes the database.
func (s *Store) Close() error {
	s.saveMu.Lock()
	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	pending := s.pending
	s.pending = nil
	s.saveMu.Unlock()

	if pending != nil {
		_ = saveNavigation(s.db, *pending)
	}

	return s.db.Close()
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) GetNavigation() (*NavigationState, error) {
	return getNavigation(s.db)
}

// SaveNavigation records state after a short quiet period, so rapid
// navigation only writes the last position.
func (s *Store) SaveNavigation(state NavigationState) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.pending = &state

	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}

	s.saveTimer = time.AfterFunc(saveDebounce, func() {
		s.saveMu.Lock()
		pending := s.pending
		s.pending = nil
		s.saveMu.Unlock()

		if pending != nil {
			_ = saveNavigation(s.db, *pending)
		}
	})
}

func (s *Store) timestamp() int64 {
	return s.now().Unix()
}
