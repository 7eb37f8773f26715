package recorder

import (
	"errors"
	"fmt"
	"time"

	gocube "github.com/SeamusWaldron/gocube_viewer"
	"github.com/SeamusWaldron/gocube_viewer/internal/storage"
	"github.com/sirupsen/logrus"
)

// SessionState represents the current state of a journal session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

var (
	ErrAlreadyRecording = errors.New("recorder: session already in progress")
	ErrNotRecording     = errors.New("recorder: no session in progress")
)

// Session journals the committed turns of one play run. It is driven from
// the play loop's goroutine and is not safe for concurrent use.
type Session struct {
	stateFile *StateFile
	log       logrus.FieldLogger

	state     SessionState
	sessionID string
	startTime time.Time
	turnIndex int

	sessionRepo *storage.SessionRepository
	turnRepo    *storage.TurnRepository
}

// NewSession creates a new journal session manager. stateFile may be nil.
func NewSession(journal *storage.Journal, stateFile *StateFile, log logrus.FieldLogger) *Session {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Session{
		stateFile:   stateFile,
		log:         log,
		state:       StateIdle,
		sessionRepo: journal.Sessions,
		turnRepo:    journal.Turns,
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	return s.sessionID
}

// ElapsedMs returns the elapsed time since the session started in milliseconds.
func (s *Session) ElapsedMs() int64 {
	if s.state != StateRecording {
		return 0
	}
	return time.Since(s.startTime).Milliseconds()
}

// TurnCount returns the number of turns journaled so far.
func (s *Session) TurnCount() int {
	return s.turnIndex
}

// Start starts a new journal session.
func (s *Session) Start(appVersion string) (string, error) {
	if s.state == StateRecording {
		return "", ErrAlreadyRecording
	}

	sessionID, err := s.sessionRepo.Create("", appVersion)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.sessionID = sessionID
	s.startTime = time.Now()
	s.turnIndex = 0
	s.state = StateRecording

	if s.stateFile != nil {
		if err := s.stateFile.SetActiveSession(sessionID); err != nil {
			s.log.WithError(err).Warn("failed to update state file")
		}
	}

	s.log.WithField("session_id", sessionID).Info("journal session started")
	return sessionID, nil
}

// RecordScramble journals the moves applied to the cube before play starts.
func (s *Session) RecordScramble(moves []gocube.Move) error {
	if s.state != StateRecording {
		return ErrNotRecording
	}
	if len(moves) == 0 {
		return nil
	}

	tsMs := time.Since(s.startTime).Milliseconds()
	if err := s.turnRepo.CreateBatch(s.sessionID, s.turnIndex, tsMs, moves, storage.SourceScramble); err != nil {
		return fmt.Errorf("failed to store scramble: %w", err)
	}
	if err := s.sessionRepo.SetScramble(s.sessionID, gocube.FormatMoves(moves)); err != nil {
		return err
	}
	s.turnIndex += len(moves)

	s.log.WithFields(logrus.Fields{
		"session_id": s.sessionID,
		"scramble":   gocube.FormatMoves(moves),
	}).Info("scramble journaled")
	return nil
}

// RecordTurn journals one committed turn. Turns outside a session are ignored.
func (s *Session) RecordTurn(m gocube.Move, source string) error {
	if s.state != StateRecording {
		return nil
	}

	tsMs := time.Since(s.startTime).Milliseconds()
	if _, err := s.turnRepo.Create(s.sessionID, s.turnIndex, tsMs, m, source); err != nil {
		return fmt.Errorf("failed to store turn: %w", err)
	}
	s.turnIndex++

	s.log.WithFields(logrus.Fields{
		"session_id": s.sessionID,
		"index":      s.turnIndex - 1,
		"notation":   m.Notation(),
		"source":     source,
		"ts_ms":      tsMs,
	}).Debug("turn journaled")
	return nil
}

// End ends the current journal session.
func (s *Session) End(solved bool) error {
	if s.state != StateRecording {
		return ErrNotRecording
	}

	if err := s.sessionRepo.End(s.sessionID, solved); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.state = StateEnded

	if s.stateFile != nil {
		if err := s.stateFile.ClearActiveSession(); err != nil {
			s.log.WithError(err).Warn("failed to update state file")
		}
	}

	s.log.WithFields(logrus.Fields{
		"session_id": s.sessionID,
		"turns":      s.turnIndex,
		"solved":     solved,
	}).Info("journal session ended")
	return nil
}
