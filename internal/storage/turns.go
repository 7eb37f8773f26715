package storage

import (
	"database/sql"
	"fmt"

	gocube "github.com/SeamusWaldron/gocube_viewer"
)

// Turn sources recorded in the journal.
const (
	SourceGesture  = "gesture"
	SourceKey      = "key"
	SourceScramble = "scramble"
	SourceUndo     = "undo"
)

// TurnRecord represents a committed quarter turn in the database.
type TurnRecord struct {
	TurnID    int64
	SessionID string
	TurnIndex int
	TsMs      int64
	Axis      string
	Layer     int
	Direction int
	Notation  string
	Source    string
}

// Move converts the record back into a quarter turn.
func (t TurnRecord) Move() (gocube.Move, error) {
	axis, ok := gocube.ParseAxis(t.Axis)
	if !ok {
		return gocube.Move{}, fmt.Errorf("turn %d: unknown axis %q", t.TurnID, t.Axis)
	}
	m := gocube.Move{Axis: axis, Layer: t.Layer, Direction: t.Direction}
	if !m.Valid() {
		return gocube.Move{}, fmt.Errorf("turn %d: %w", t.TurnID, gocube.ErrInvalidMove)
	}
	return m, nil
}

// TurnRepository provides CRUD operations for journal turns.
type TurnRepository struct {
	db *sql.DB
}

const insertTurn = `
	INSERT INTO turns (session_id, turn_index, ts_ms, axis, layer, direction, notation, source)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

// Create records a turn and returns its ID.
func (r *TurnRepository) Create(sessionID string, turnIndex int, tsMs int64, m gocube.Move, source string) (int64, error) {
	result, err := r.db.Exec(insertTurn,
		sessionID, turnIndex, tsMs, m.Axis.String(), m.Layer, m.Direction, m.Notation(), source)

	if err != nil {
		return 0, fmt.Errorf("failed to create turn: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get turn ID: %w", err)
	}

	return id, nil
}

// CreateBatch records several turns sharing one timestamp and source in a
// single transaction.
func (r *TurnRepository) CreateBatch(sessionID string, startIndex int, tsMs int64, moves []gocube.Move, source string) error {
	return inTx(r.db, func(tx *sql.Tx) error {
		for i, m := range moves {
			_, err := tx.Exec(insertTurn,
				sessionID, startIndex+i, tsMs, m.Axis.String(), m.Layer, m.Direction, m.Notation(), source)
			if err != nil {
				return fmt.Errorf("failed to create turn %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all turns for a session in order.
func (r *TurnRepository) GetBySession(sessionID string) ([]TurnRecord, error) {
	rows, err := r.db.Query(`
		SELECT turn_id, session_id, turn_index, ts_ms, axis, layer, direction, notation, source
		FROM turns
		WHERE session_id = ?
		ORDER BY turn_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get turns: %w", err)
	}
	defer rows.Close()

	var turns []TurnRecord
	for rows.Next() {
		var t TurnRecord
		err := rows.Scan(&t.TurnID, &t.SessionID, &t.TurnIndex, &t.TsMs,
			&t.Axis, &t.Layer, &t.Direction, &t.Notation, &t.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turns = append(turns, t)
	}

	return turns, rows.Err()
}

// Count returns the number of turns for a session.
func (r *TurnRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM turns WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count turns: %w", err)
	}
	return count, nil
}

// CountBySource returns the number of turns per source for a session.
func (r *TurnRepository) CountBySource(sessionID string) (map[string]int, error) {
	rows, err := r.db.Query(`
		SELECT source, COUNT(*) FROM turns
		WHERE session_id = ?
		GROUP BY source
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count turns by source: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var source string
		var n int
		if err := rows.Scan(&source, &n); err != nil {
			return nil, fmt.Errorf("failed to scan turn count: %w", err)
		}
		counts[source] = n
	}
	return counts, rows.Err()
}
