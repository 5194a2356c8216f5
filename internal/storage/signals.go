package storage

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// SignalEntry is one recorded save signal.
type SignalEntry struct {
	ID        int64
	GameID    string
	Token     string
	Session   string // SSH user, or "local"
	CreatedAt time.Time
}

// RecordSignal appends a save signal to the journal.
func (s *Store) RecordSignal(gameID, token, session string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO save_signals (game_id, token, session) VALUES (?, ?, ?)",
		gameID, token, session,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record signal: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSignals returns the latest signals for a game, newest first.
// An empty gameID returns signals for all games.
func (s *Store) RecentSignals(gameID string, limit int) ([]SignalEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, token, session, created_at
		 FROM save_signals
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query signals: %w", err)
	}
	defer rows.Close()

	var entries []SignalEntry
	for rows.Next() {
		var e SignalEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Token, &e.Session, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CountSignals returns how many times token was recorded for a game.
func (s *Store) CountSignals(gameID, token string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM save_signals WHERE game_id = ? AND token = ?",
		gameID, token,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count signals: %w", err)
	}
	return n, nil
}

// Journal records game save signals in a Store. It satisfies
// core.SaveSignal. Failures are logged and never reach the game.
type Journal struct {
	store   *Store
	session string
	logger  *log.Logger
}

// NewJournal creates a journal for one player session. A nil store only
// logs; a nil logger uses the default logger.
func NewJournal(store *Store, session string, logger *log.Logger) *Journal {
	if logger == nil {
		logger = log.Default()
	}
	return &Journal{store: store, session: session, logger: logger}
}

// Signal records token for gameID.
func (j *Journal) Signal(gameID, token string) {
	if j.store == nil {
		j.logger.Debug("save signal", "game", gameID, "token", token, "session", j.session)
		return
	}
	if _, err := j.store.RecordSignal(gameID, token, j.session); err != nil {
		j.logger.Warn("save signal not recorded", "game", gameID, "token", token, "err", err)
		return
	}
	j.logger.Debug("save signal recorded", "game", gameID, "token", token, "session", j.session)
}
