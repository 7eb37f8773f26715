// Package recorder journals play sessions and keeps the viewer's state file.
package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	gocube "github.com/SeamusWaldron/gocube_viewer"
)

// Prefs are the play defaults a user can persist. Zero fields fall back to
// the library defaults.
type Prefs struct {
	FPS           int     `json:"fps,omitempty"`
	TurnStep      float64 `json:"turn_step,omitempty"`
	Sensitivity   float64 `json:"sensitivity,omitempty"`
	ReferenceSize float64 `json:"reference_size,omitempty"`
	NoJournal     bool    `json:"no_journal,omitempty"`
}

// DefaultFPS is the frame rate of the terminal host.
const DefaultFPS = 30

// DefaultTerminalSensitivity is the orbit speed in degrees per terminal
// column dragged.
const DefaultTerminalSensitivity = 2.0

// DefaultTerminalReferenceSize suits a terminal where one cell is two
// virtual pixels tall.
const DefaultTerminalReferenceSize = 300.0

// WithDefaults returns p with every unset field filled in.
func (p Prefs) WithDefaults() Prefs {
	if p.FPS <= 0 {
		p.FPS = DefaultFPS
	}
	if p.TurnStep <= 0 {
		p.TurnStep = gocube.DefaultTurnStep
	}
	if p.Sensitivity <= 0 {
		p.Sensitivity = DefaultTerminalSensitivity
	}
	if p.ReferenceSize <= 0 {
		p.ReferenceSize = DefaultTerminalReferenceSize
	}
	return p
}

// AppState represents the persistent application state.
type AppState struct {
	DBPath          string `json:"db_path,omitempty"`
	ActiveSessionID string `json:"active_session_id,omitempty"`
	LastSessionID   string `json:"last_session_id,omitempty"`
	Prefs           Prefs  `json:"prefs"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns the default state file path.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".gocube_viewer")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile creates a new state file manager.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	// Try to load existing state
	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return sf, nil
}

// NewDefaultStateFile creates a state file manager with the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Path returns the state file path.
func (sf *StateFile) Path() string {
	return sf.path
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &sf.state); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", sf.path, err)
	}
	return nil
}

// Save saves the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// State returns the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// Prefs returns the stored preferences with defaults filled in.
func (sf *StateFile) Prefs() Prefs {
	return sf.state.Prefs.WithDefaults()
}

// SetPrefs stores new preferences.
func (sf *StateFile) SetPrefs(p Prefs) error {
	sf.state.Prefs = p
	return sf.Save()
}

// SetDBPath sets the database path.
func (sf *StateFile) SetDBPath(path string) error {
	sf.state.DBPath = path
	return sf.Save()
}

// DBPath returns the database path.
func (sf *StateFile) DBPath() string {
	return sf.state.DBPath
}

// SetActiveSession sets the active journal session ID.
func (sf *StateFile) SetActiveSession(sessionID string) error {
	sf.state.ActiveSessionID = sessionID
	return sf.Save()
}

// ClearActiveSession clears the active session and remembers it as the last one.
func (sf *StateFile) ClearActiveSession() error {
	if sf.state.ActiveSessionID != "" {
		sf.state.LastSessionID = sf.state.ActiveSessionID
	}
	sf.state.ActiveSessionID = ""
	return sf.Save()
}

// ActiveSessionID returns the active session ID.
func (sf *StateFile) ActiveSessionID() string {
	return sf.state.ActiveSessionID
}

// LastSessionID returns the most recently ended session ID.
func (sf *StateFile) LastSessionID() string {
	return sf.state.LastSessionID
}
