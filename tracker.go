package gocube

// Tracker follows a cube's solve progress as turns commit.
type Tracker struct {
	cube          *Cube
	lastPhase     Phase
	highestPhase  Phase // Monotonic until Reset
	phaseCallback func(phase Phase)
}

// NewTracker creates a tracker registered on c's commit hooks. Progress is
// measured from c's current state.
func NewTracker(c *Cube) *Tracker {
	t := &Tracker{cube: c}
	t.Reset()
	c.OnCommit(func(Move) {
		t.checkPhaseTransition()
	})
	return t
}

// SetPhaseCallback sets a callback that fires when a new highest phase is
// reached.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase)) {
	t.phaseCallback = cb
}

// Reset restarts progress tracking from the cube's current state, e.g.
// after a scramble.
func (t *Tracker) Reset() {
	t.lastPhase = t.cube.Phase()
	t.highestPhase = t.lastPhase
}

// checkPhaseTransition checks if we've completed a new phase.
func (t *Tracker) checkPhaseTransition() {
	currentPhase := t.cube.Phase()
	t.lastPhase = currentPhase

	// Only a new high fires; progress lost and regained is not reported again.
	if currentPhase > t.highestPhase {
		t.highestPhase = currentPhase
		if t.phaseCallback != nil {
			t.phaseCallback(currentPhase)
		}
	}
}

// CurrentPhase returns the phase of the last committed state. It may go
// backwards during solving.
func (t *Tracker) CurrentPhase() Phase {
	return t.lastPhase
}

// HighestPhase returns the highest phase reached since the last Reset.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// GetProgress returns the detailed progress.
func (t *Tracker) GetProgress() Progress {
	return t.cube.GetProgress()
}
