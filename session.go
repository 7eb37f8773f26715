package gocube

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Overlay is anything drawn over the cube that can consume a press, such as
// a button or a clickable decoration. Coordinates are viewport pixels.
type Overlay interface {
	// HandlePress reacts to a press and reports whether it was consumed.
	HandlePress(x, y float64) bool
}

// DragMode tells what the current pointer drag controls.
type DragMode int

const (
	DragNone  DragMode = iota // no pointer pressed
	DragFace                  // press landed on a face; release turns it
	DragOrbit                 // press missed the cube; drag orbits the camera
)

func (m DragMode) String() string {
	switch m {
	case DragNone:
		return "none"
	case DragFace:
		return "face"
	case DragOrbit:
		return "orbit"
	default:
		return "?"
	}
}

// Session is one interactive cube: its state machine, the orbit camera and
// the pointer session. It is driven from a single goroutine by the host's
// frame loop and input events.
type Session struct {
	cube        *Cube
	view        View
	initialView View
	viewport    Viewport
	geometry    Geometry
	sensitivity float64
	overlays    []Overlay
	log         logrus.FieldLogger

	// pointer session
	mode      DragMode
	dragStart Point
	dragNow   Point
	prev      Point
	pick      FacePick

	bounds  Rect
	elapsed time.Duration
	frames  int
}

// NewSession creates a session around a solved cube.
func NewSession(opts ...Option) *Session {
	cfg := newConfig(opts)
	s := &Session{
		cube:        NewCube(opts...),
		view:        cfg.initialView,
		initialView: cfg.initialView,
		viewport: Viewport{
			Width:         cfg.width,
			Height:        cfg.height,
			ReferenceSize: cfg.referenceSize,
		},
		geometry:    cfg.geometry,
		sensitivity: cfg.orbitSensitivity,
		log:         cfg.logger,
	}
	s.cube.OnCommit(func(m Move) {
		s.log.WithFields(moveFields(m)).Debug("turn committed")
	})
	s.updateBounds()
	return s
}

func moveFields(m Move) logrus.Fields {
	return logrus.Fields{
		"axis":      m.Axis.String(),
		"layer":     m.Layer,
		"direction": m.Direction,
		"notation":  m.Notation(),
	}
}

// Cube returns the session's cube.
func (s *Session) Cube() *Cube {
	return s.cube
}

// View returns the current camera angles.
func (s *Session) View() View {
	return s.view
}

// SetView replaces the camera angles.
func (s *Session) SetView(v View) {
	s.view = v
}

// ResetView restores the camera angles the session started with.
func (s *Session) ResetView() {
	s.view = s.initialView
}

// Geometry returns the cube proportions.
func (s *Session) Geometry() Geometry {
	return s.geometry
}

// Viewport returns the current viewport.
func (s *Session) Viewport() Viewport {
	return s.viewport
}

// Resize changes the viewport size in pixels.
func (s *Session) Resize(width, height float64) {
	s.viewport.Width = width
	s.viewport.Height = height
	s.updateBounds()
}

// Projector returns the projector for the current view and viewport.
func (s *Session) Projector() Projector {
	return NewProjector(s.viewport, s.view)
}

// AddOverlay registers an overlay. Overlays see presses before the cube, in
// registration order.
func (s *Session) AddOverlay(o Overlay) {
	s.overlays = append(s.overlays, o)
}

// Elapsed returns the sum of all frame durations passed to AdvanceFrame.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Frames returns how many frames have been advanced.
func (s *Session) Frames() int {
	return s.frames
}

// AdvanceFrame runs one frame: it steps any turn in flight and recomputes
// the projected bounding box.
func (s *Session) AdvanceFrame(dt time.Duration) {
	s.elapsed += dt
	s.frames++
	s.cube.Tick()
	s.updateBounds()
}

func (s *Session) updateBounds() {
	s.bounds = ProjectBounds(s.Projector(), s.geometry)
}

// ProjectedBounds returns the cube's screen bounding box as of the last frame.
func (s *Session) ProjectedBounds() Rect {
	return s.bounds
}

// DrawState returns per-cubie draw data for this frame.
func (s *Session) DrawState() []CubieDraw {
	return s.cube.DrawState()
}

// IsTurning reports whether a turn is in flight.
func (s *Session) IsTurning() bool {
	return s.cube.IsTurning()
}

// StartTurn starts a quarter turn if the cube is idle.
func (s *Session) StartTurn(axis Axis, layer, dir int) bool {
	m := Move{Axis: axis, Layer: layer, Direction: dir}
	if !s.cube.StartTurn(axis, layer, dir) {
		s.log.WithFields(moveFields(m)).Debug("turn rejected")
		return false
	}
	s.log.WithFields(moveFields(m)).Debug("turn started")
	return true
}

// DragMode returns what the current drag controls.
func (s *Session) DragMode() DragMode {
	return s.mode
}

// PickedFace returns the face picked by the current press, if any.
func (s *Session) PickedFace() (FacePick, bool) {
	if s.mode != DragFace {
		return FacePick{}, false
	}
	return s.pick, true
}

// PointerDown starts a pointer session. A press consumed by an overlay
// starts nothing. A press inside the cube's bounding box that lands near a
// face anchor starts a face gesture; any other press starts an orbit.
func (s *Session) PointerDown(x, y float64) {
	for _, o := range s.overlays {
		if o.HandlePress(x, y) {
			s.mode = DragNone
			s.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("press consumed by overlay")
			return
		}
	}

	p := Point{X: x, Y: y}
	s.dragStart, s.dragNow, s.prev = p, p, p
	s.mode = DragOrbit

	if !s.bounds.Contains(x, y) {
		return
	}
	pick, ok := PickFace(s.Projector(), s.geometry, s.viewport.Scale(), x, y)
	if !ok {
		s.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("no face under pointer")
		return
	}
	s.pick = pick
	s.mode = DragFace
	s.log.WithFields(logrus.Fields{
		"face": pick.Face().String(),
		"x":    x,
		"y":    y,
	}).Debug("face picked")
}

// PointerDrag records pointer motion. During an orbit drag the camera turns
// with the motion, unless a turn is in flight.
func (s *Session) PointerDrag(x, y float64) {
	s.dragNow = Point{X: x, Y: y}
	if s.mode == DragOrbit && !s.cube.IsTurning() {
		s.view.Orbit(x-s.prev.X, y-s.prev.Y, s.sensitivity)
	}
	s.prev = s.dragNow
}

// PointerUp ends the pointer session. A face gesture resolves into a turn if
// the cube is idle; the started move is returned.
func (s *Session) PointerUp(x, y float64) (Move, bool) {
	mode := s.mode
	s.mode = DragNone
	if mode != DragFace {
		return Move{}, false
	}

	s.dragNow = Point{X: x, Y: y}
	if s.cube.IsTurning() {
		s.log.Debug("gesture dropped, turn in flight")
		return Move{}, false
	}

	d := s.dragNow.Sub(s.dragStart)
	dir := ResolveGesture(s.pick, d.X, d.Y)
	if dir == 0 {
		return Move{}, false
	}
	if !s.StartTurn(s.pick.Axis, s.pick.Layer, dir) {
		return Move{}, false
	}
	return Move{Axis: s.pick.Axis, Layer: s.pick.Layer, Direction: dir}, true
}
