package recorder

import (
	"os"
	"path/filepath"
	"testing"

	gocube "github.com/SeamusWaldron/gocube_viewer"
	"github.com/SeamusWaldron/gocube_viewer/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsDefaults(t *testing.T) {
	p := Prefs{}.WithDefaults()
	assert.Equal(t, DefaultFPS, p.FPS)
	assert.Equal(t, gocube.DefaultTurnStep, p.TurnStep)
	assert.Equal(t, DefaultTerminalSensitivity, p.Sensitivity)
	assert.Equal(t, DefaultTerminalReferenceSize, p.ReferenceSize)

	custom := Prefs{FPS: 60, TurnStep: 9}.WithDefaults()
	assert.Equal(t, 60, custom.FPS)
	assert.Equal(t, 9.0, custom.TurnStep)
}

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	sf, err := NewStateFile(path)
	require.NoError(t, err, "a missing file is not an error")
	assert.Equal(t, DefaultFPS, sf.Prefs().FPS)

	require.NoError(t, sf.SetPrefs(Prefs{FPS: 20, Sensitivity: 0.25, NoJournal: true}))
	require.NoError(t, sf.SetDBPath("/tmp/x.db"))
	require.NoError(t, sf.SetActiveSession("abc"))
	require.NoError(t, sf.ClearActiveSession())

	reloaded, err := NewStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, 20, reloaded.Prefs().FPS)
	assert.Equal(t, 0.25, reloaded.Prefs().Sensitivity)
	assert.True(t, reloaded.Prefs().NoJournal)
	assert.Equal(t, gocube.DefaultTurnStep, reloaded.Prefs().TurnStep)
	assert.Equal(t, "/tmp/x.db", reloaded.DBPath())
	assert.Empty(t, reloaded.ActiveSessionID())
	assert.Equal(t, "abc", reloaded.LastSessionID())
}

func TestStateFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	sf, err := NewStateFile(path)
	require.NoError(t, err)
	require.NoError(t, sf.Save())

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err = NewStateFile(path)
	assert.Error(t, err)
}

func openJournal(t *testing.T) (*storage.Journal, *StateFile) {
	t.Helper()
	dir := t.TempDir()
	j, err := storage.OpenJournal(filepath.Join(dir, "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })

	sf, err := NewStateFile(filepath.Join(dir, "state.json"))
	require.NoError(t, err)
	return j, sf
}

func TestSessionJournalsCubeCommits(t *testing.T) {
	j, sf := openJournal(t)
	rec := NewSession(j, sf, nil)
	assert.Equal(t, StateIdle, rec.State())

	id, err := rec.Start("test")
	require.NoError(t, err)
	assert.Equal(t, id, sf.ActiveSessionID())

	_, err = rec.Start("test")
	assert.ErrorIs(t, err, ErrAlreadyRecording)

	cube := gocube.NewCube()
	scramble := []gocube.Move{gocube.R, gocube.U}
	require.NoError(t, cube.Apply(scramble...))
	require.NoError(t, rec.RecordScramble(scramble))

	source := storage.SourceKey
	cube.OnCommit(func(m gocube.Move) {
		require.NoError(t, rec.RecordTurn(m, source))
	})
	require.NoError(t, cube.Apply(gocube.F))
	source = storage.SourceUndo
	require.NoError(t, cube.Apply(gocube.FPrime))

	assert.Equal(t, 4, rec.TurnCount())
	require.NoError(t, rec.End(cube.IsSolved()))
	assert.Equal(t, StateEnded, rec.State())
	assert.Equal(t, id, sf.LastSessionID())

	// Turns after the session ends are not journaled.
	require.NoError(t, rec.RecordTurn(gocube.B, storage.SourceKey))
	assert.ErrorIs(t, rec.End(false), ErrNotRecording)

	turns, err := j.Turns.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, turns, 4)

	var seen []string
	for _, tr := range turns[2:] {
		seen = append(seen, tr.Source+":"+tr.Notation)
	}
	assert.Equal(t, []string{"key:F", "undo:F'"}, seen)

	// Replaying the journal reproduces the cube.
	replay := gocube.NewCube()
	for _, tr := range turns {
		m, err := tr.Move()
		require.NoError(t, err)
		require.NoError(t, replay.Apply(m))
	}
	assert.True(t, replay.Equal(cube))

	s, err := j.Sessions.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s.ScrambleText)
	assert.Equal(t, "R U", *s.ScrambleText)
	require.NotNil(t, s.SolvedAtEnd)
	assert.False(t, *s.SolvedAtEnd)
}

func TestRecordScrambleNeedsSession(t *testing.T) {
	j, _ := openJournal(t)
	rec := NewSession(j, nil, nil)
	assert.ErrorIs(t, rec.RecordScramble([]gocube.Move{gocube.R}), ErrNotRecording)
}
