package cli

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_viewer"
	"github.com/SeamusWaldron/gocube_viewer/internal/recorder"
	"github.com/SeamusWaldron/gocube_viewer/internal/storage"
)

var (
	playFPS         int
	playTurnStep    float64
	playSensitivity float64
	playScaleRef    float64
	playScramble    string
	playRandom      int
	playNoJournal   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the cube interactively in the terminal",
	Long: `Open an interactive cube in the terminal.

Mouse:
  press a face and drag   - turn that face's layer
  drag outside the cube   - orbit the camera
  [?] in the corner       - toggle the help panel

Keyboard shortcuts:
  r l u d f b  - turn a face clockwise (shift for counter-clockwise)
  z/backspace  - undo the last turn
  s            - random scramble (clears undo history)
  n            - new solved cube (starts a new journal session)
  c            - reset the camera
  ?            - toggle help
  q/Esc        - Quit

Every committed turn is journaled unless --no-journal is given.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playFPS, "fps", recorder.DefaultFPS, "Frames per second")
	playCmd.Flags().Float64Var(&playTurnStep, "turn-step", gocube.DefaultTurnStep, "Degrees a turn advances per frame")
	playCmd.Flags().Float64Var(&playSensitivity, "sensitivity", recorder.DefaultTerminalSensitivity, "Orbit degrees per column dragged")
	playCmd.Flags().Float64Var(&playScaleRef, "scale-ref", recorder.DefaultTerminalReferenceSize, "Viewport size at which the cube is drawn at scale 1 (smaller is bigger)")
	playCmd.Flags().StringVar(&playScramble, "scramble", "", "Scramble to apply before play, e.g. \"R U R' U'\"")
	playCmd.Flags().IntVar(&playRandom, "random", 0, "Apply a random scramble of this many turns before play")
	playCmd.Flags().BoolVar(&playNoJournal, "no-journal", false, "Do not record turns to the database")
}

// Layout: one header row, the canvas, one footer row.
const (
	headerRows = 1
	footerRows = 1
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("39"))
)

var helpLines = []string{
	"drag a face      turn its layer",
	"drag elsewhere   orbit the camera",
	"r l u d f b      turn clockwise",
	"R L U D F B      turn counter-clockwise",
	"z                undo",
	"s                scramble, clears undo",
	"n                new cube",
	"c                reset camera",
	"q                quit",
}

// frameMsg drives the animation loop.
type frameMsg time.Time

// helpButton is the [?] button in the canvas' top-right corner. While the
// help panel is open any press closes it.
type helpButton struct {
	width int // canvas width in columns
	open  bool
}

func (b *helpButton) HandlePress(x, y float64) bool {
	col, row := int(math.Floor(x)), int(math.Floor(y/2))
	if row == 0 && col >= b.width-3 && col < b.width {
		b.open = !b.open
		return true
	}
	if b.open {
		b.open = false
		return true
	}
	return false
}

// cellToPixel maps a terminal cell to the centre of its virtual pixels in
// canvas space.
func cellToPixel(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(y-headerRows)*2 + 1
}

type playModel struct {
	session *gocube.Session
	journal *recorder.Session // nil when journaling is off
	logger  *PlayLogger
	rng     *rand.Rand

	fps       int
	lastFrame time.Time

	source  string // journal source of the turn in flight
	history []gocube.Move
	tracker *gocube.Tracker
	help    *helpButton
	styles  cellStyles

	width, height int
	status        string
	err           error
	quitting      bool
}

func newPlayModel(session *gocube.Session, journal *recorder.Session, logger *PlayLogger, fps int, rng *rand.Rand) *playModel {
	m := &playModel{
		session: session,
		journal: journal,
		logger:  logger,
		rng:     rng,
		fps:     fps,
		help:    &helpButton{},
		styles:  make(cellStyles),
	}
	session.AddOverlay(m.help)
	session.Cube().OnCommit(m.onCommit)
	m.tracker = gocube.NewTracker(session.Cube())
	m.tracker.SetPhaseCallback(m.onPhase)
	return m
}

// onPhase reports a new highest solve phase. Solved is reported by onCommit.
func (m *playModel) onPhase(p gocube.Phase) {
	if m.source == storage.SourceScramble || p == gocube.PhaseSolved {
		return
	}
	m.logger.Logger().WithField("phase", p.String()).Info("phase reached")
	m.status = p.DisplayName() + " complete"
}

// onCommit tracks undo history and journals each committed turn. Scramble
// turns are journaled but never enter the undo history.
func (m *playModel) onCommit(mv gocube.Move) {
	source := m.source
	if source == "" {
		source = storage.SourceGesture
	}
	switch {
	case source == storage.SourceScramble:
		// New baseline; scramble() clears the history.
	case source == storage.SourceUndo && len(m.history) > 0:
		m.history = m.history[:len(m.history)-1]
	default:
		m.history = append(m.history, mv)
	}
	if source != storage.SourceScramble {
		m.source = ""
	}

	if m.journal != nil {
		if err := m.journal.RecordTurn(mv, source); err != nil {
			m.err = err
			m.logger.LogError(err, "failed to journal turn")
		}
	}

	if m.session.Cube().IsSolved() && source != storage.SourceScramble && source != storage.SourceUndo {
		m.status = "Solved!"
	}
}

func (m *playModel) frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *playModel) Init() tea.Cmd {
	m.lastFrame = time.Now()
	return m.frameCmd()
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.logger.LogKeyPress(msg.String())
		return m, m.handleKey(msg.String())

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case frameMsg:
		now := time.Time(msg)
		m.session.AdvanceFrame(now.Sub(m.lastFrame))
		m.lastFrame = now
		return m, m.frameCmd()
	}

	return m, nil
}

func (m *playModel) resize(width, height int) {
	m.width = width
	m.height = height
	rows := max(0, height-headerRows-footerRows)
	m.session.Resize(float64(width), float64(rows*2))
	m.help.width = width
}

func (m *playModel) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return tea.Quit

	case "?":
		m.help.open = !m.help.open

	case "c":
		m.session.ResetView()

	case "z", "backspace":
		m.undo()

	case "s":
		m.scramble()

	case "n":
		m.newCube()

	default:
		if len(key) != 1 {
			return nil
		}
		face, ok := faceForKey(key)
		if !ok {
			return nil
		}
		clockwise := strings.ToLower(key) == key
		mv := gocube.MoveFor(face, clockwise)
		if m.session.StartTurn(mv.Axis, mv.Layer, mv.Direction) {
			m.source = storage.SourceKey
			m.status = ""
		}
	}
	return nil
}

func faceForKey(key string) (gocube.Face, bool) {
	switch strings.ToLower(key) {
	case "r":
		return gocube.FaceR, true
	case "l":
		return gocube.FaceL, true
	case "u":
		return gocube.FaceU, true
	case "d":
		return gocube.FaceD, true
	case "f":
		return gocube.FaceF, true
	case "b":
		return gocube.FaceB, true
	}
	return 0, false
}

func (m *playModel) undo() {
	if len(m.history) == 0 || m.session.IsTurning() {
		return
	}
	inv := m.history[len(m.history)-1].Inverse()
	if m.session.StartTurn(inv.Axis, inv.Layer, inv.Direction) {
		m.source = storage.SourceUndo
		m.status = ""
	}
}

// scramble applies a random scramble as the new starting point: like a
// --scramble given at startup, it cannot be undone.
func (m *playModel) scramble() {
	if m.session.IsTurning() {
		return
	}
	moves := randomScramble(m.rng, defaultScrambleLength)
	m.source = storage.SourceScramble
	err := m.session.Cube().Apply(moves...)
	m.source = ""
	m.history = nil
	m.tracker.Reset()
	if err != nil {
		m.err = err
		return
	}
	m.status = "Scrambled: " + gocube.FormatMoves(moves)
}

// newCube resets to a solved cube and rolls the journal over to a new session.
func (m *playModel) newCube() {
	cube := m.session.Cube()
	if m.journal != nil {
		if err := m.journal.End(cube.IsSolved()); err != nil {
			m.logger.LogError(err, "failed to end journal session")
		}
		if _, err := m.journal.Start(version); err != nil {
			m.err = err
			m.logger.LogError(err, "failed to start journal session")
		}
	}
	cube.Reset()
	m.tracker.Reset()
	m.history = nil
	m.source = ""
	m.status = "New cube"
}

func (m *playModel) handleMouse(msg tea.MouseMsg) {
	x, y := cellToPixel(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.logger.LogMouse("press", x, y)
		m.session.PointerDown(x, y)

	case tea.MouseActionMotion:
		if m.session.DragMode() == gocube.DragNone {
			return
		}
		m.session.PointerDrag(x, y)

	case tea.MouseActionRelease:
		m.logger.LogMouse("release", x, y)
		if _, ok := m.session.PointerUp(x, y); ok {
			m.source = storage.SourceGesture
			m.status = ""
		}
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.width == 0 || m.height == 0 {
		return "Loading...\n"
	}

	var b strings.Builder

	// Header
	header := titleStyle.Render("cubeview") + "  " +
		statusStyle.Render(fmt.Sprintf("turns: %d", len(m.history))) + "  " +
		statusStyle.Render(m.tracker.CurrentPhase().DisplayName())
	if m.journal != nil && m.journal.SessionID() != "" {
		header += "  " + statusStyle.Render("session "+m.journal.SessionID()[:8])
	}
	switch {
	case m.err != nil:
		header += "  " + errorStyle.Render(m.err.Error())
	case m.status == "Solved!":
		header += "  " + solvedStyle.Render(m.status)
	case m.status != "":
		header += "  " + statusStyle.Render(m.status)
	}
	b.WriteString(header)
	b.WriteString("\n")

	// Canvas
	rows := max(0, m.height-headerRows-footerRows)
	c := newCanvas(m.width, rows*2)
	drawCube(c, m.session.Projector(), m.session.Geometry(), m.session.DrawState())
	cells := c.cells(m.styles)
	if m.help.open {
		overlayText(cells, helpLines)
	}
	if len(cells) > 0 && m.width >= 3 {
		for i, r := range "[?]" {
			cells[0][m.width-3+i] = buttonStyle.Render(string(r))
		}
	}
	b.WriteString(joinCells(cells))
	b.WriteString("\n")

	// Footer
	v := m.session.View()
	footer := fmt.Sprintf("pitch %.0f  yaw %.0f  |  ?=help q=quit", v.Pitch, v.Yaw)
	b.WriteString(helpStyle.Render(footer))

	return b.String()
}

// overlayText writes lines over the top-left of the cell grid.
func overlayText(cells [][]string, lines []string) {
	for i, line := range lines {
		if i+1 >= len(cells) {
			return
		}
		row := cells[i+1]
		for j, r := range " " + line + " " {
			if j >= len(row)-1 {
				break
			}
			row[j] = helpStyle.Render(string(r))
		}
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Load state
	stateFile, err := recorder.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}
	prefs := applyPlayFlags(cmd, stateFile.Prefs())

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	scramble, err := scrambleFromFlags(playScramble, playRandom, rng)
	if err != nil {
		return err
	}

	logger := NewPlayLogger()
	if logDir, err := DefaultLogDir(); err == nil {
		if err := logger.Start(logDir, verbose); err != nil {
			fmt.Printf("Warning: could not start logging: %v\n", err)
		}
	}
	defer logger.Close()

	session := gocube.NewSession(
		gocube.WithTurnStep(prefs.TurnStep),
		gocube.WithOrbitSensitivity(prefs.Sensitivity),
		gocube.WithReferenceSize(prefs.ReferenceSize),
		gocube.WithLogger(logger.Logger()),
	)
	if err := session.Cube().Apply(scramble...); err != nil {
		return err
	}

	var journal *recorder.Session
	if !prefs.NoJournal {
		j, err := openJournal()
		if err != nil {
			return err
		}
		defer j.Close()

		journal = recorder.NewSession(j, stateFile, logger.Logger())
		if _, err := journal.Start(version); err != nil {
			return err
		}
		if err := journal.RecordScramble(scramble); err != nil {
			return err
		}
	}

	model := newPlayModel(session, journal, logger, prefs.FPS, rng)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	solved := session.Cube().IsSolved()
	if journal != nil {
		elapsed := time.Duration(journal.ElapsedMs()) * time.Millisecond
		if err := journal.End(solved); err != nil {
			return err
		}
		fmt.Printf("Session %s: %d turns journaled in %s\n", journal.SessionID(), journal.TurnCount(), formatDuration(elapsed))
	}
	if solved {
		fmt.Println("Cube left solved.")
	}
	if path := logger.FilePath(); path != "" {
		fmt.Printf("Log saved to: %s\n", path)
	}
	return nil
}

// applyPlayFlags overrides stored preferences with flags given explicitly.
func applyPlayFlags(cmd *cobra.Command, p recorder.Prefs) recorder.Prefs {
	flags := cmd.Flags()
	if flags.Changed("fps") {
		p.FPS = playFPS
	}
	if flags.Changed("turn-step") {
		p.TurnStep = playTurnStep
	}
	if flags.Changed("sensitivity") {
		p.Sensitivity = playSensitivity
	}
	if flags.Changed("scale-ref") {
		p.ReferenceSize = playScaleRef
	}
	if flags.Changed("no-journal") {
		p.NoJournal = playNoJournal
	}
	return p.WithDefaults()
}
