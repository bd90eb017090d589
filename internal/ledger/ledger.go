// Package ledger records emitted commentary lines in a sqlite database so a
// session can be reviewed after the game. The taunt engine never reads the
// ledger; selection stays memoryless.
package ledger

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Ledger wraps the commentary history database.
type Ledger struct {
	db   *sql.DB
	path string
}

// Emission is one recorded commentary line.
type Emission struct {
	SessionID string
	At        time.Time
	Category  string
	Text      string
}

// Open creates or opens the ledger database at path.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}

	l := &Ledger{db: db, path: path}
	if err := l.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init ledger schema: %w", err)
	}
	return l, nil
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Path returns the database file path.
func (l *Ledger) Path() string {
	return l.path
}

func (l *Ledger) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS emissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		at DATETIME NOT NULL,
		category TEXT NOT NULL,
		text TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_emissions_session ON emissions(session_id);
	`
	_, err := l.db.Exec(schema)
	return err
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Record stores one emission.
func (l *Ledger) Record(e Emission) error {
	_, err := l.db.Exec(
		`INSERT INTO emissions (session_id, at, category, text) VALUES (?, ?, ?, ?)`,
		e.SessionID, e.At.UTC(), e.Category, e.Text,
	)
	if err != nil {
		return fmt.Errorf("record emission: %w", err)
	}
	return nil
}

// Session returns all emissions of a session in chronological order.
func (l *Ledger) Session(sessionID string) ([]Emission, error) {
	rows, err := l.db.Query(
		`SELECT session_id, at, category, text FROM emissions WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}
	defer rows.Close()

	var out []Emission
	for rows.Next() {
		var e Emission
		if err := rows.Scan(&e.SessionID, &e.At, &e.Category, &e.Text); err != nil {
			return nil, fmt.Errorf("scan emission: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the total number of recorded emissions.
func (l *Ledger) Count() (int, error) {
	var n int
	if err := l.db.QueryRow(`SELECT COUNT(*) FROM emissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count emissions: %w", err)
	}
	return n, nil
}
