package gocube

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Cube or Session.
type Option func(*config)

type config struct {
	geometry         Geometry
	turnStep         float64
	width            float64
	height           float64
	referenceSize    float64
	orbitSensitivity float64
	initialView      View
	logger           logrus.FieldLogger
}

// Defaults taken from the classic sketch proportions.
const (
	DefaultEdge             = 60.0
	DefaultGap              = 2.0
	DefaultTurnStep         = 6.0
	DefaultReferenceSize    = 720.0
	DefaultOrbitSensitivity = 0.5
	DefaultPitch            = 25.0
	DefaultYaw              = -35.0
)

func defaultConfig() *config {
	return &config{
		geometry:         Geometry{Edge: DefaultEdge, Gap: DefaultGap},
		turnStep:         DefaultTurnStep,
		width:            800,
		height:           600,
		referenceSize:    DefaultReferenceSize,
		orbitSensitivity: DefaultOrbitSensitivity,
		initialView:      View{Pitch: DefaultPitch, Yaw: DefaultYaw},
		logger:           discardLogger(),
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithGeometry sets the cubie edge length and the gap between cubies.
// Non-positive edges are ignored.
func WithGeometry(edge, gap float64) Option {
	return func(c *config) {
		if edge > 0 && gap >= 0 {
			c.geometry = Geometry{Edge: edge, Gap: gap}
		}
	}
}

// WithTurnStep sets how many degrees a turn advances per animation tick.
// A step of 90 or more commits a turn on its first tick.
func WithTurnStep(deg float64) Option {
	return func(c *config) {
		if deg > 0 {
			c.turnStep = deg
		}
	}
}

// WithViewport sets the initial viewport size in pixels.
func WithViewport(width, height float64) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithReferenceSize sets the viewport size at which the cube is drawn at
// scale 1. Smaller values draw a larger cube.
func WithReferenceSize(size float64) Option {
	return func(c *config) {
		if size > 0 {
			c.referenceSize = size
		}
	}
}

// WithOrbitSensitivity sets the degrees of orbit per pixel of drag.
func WithOrbitSensitivity(degPerPixel float64) Option {
	return func(c *config) {
		c.orbitSensitivity = degPerPixel
	}
}

// WithInitialView sets the starting camera pitch and yaw in degrees.
func WithInitialView(pitch, yaw float64) Option {
	return func(c *config) {
		c.initialView = View{Pitch: pitch, Yaw: yaw}
	}
}

// WithLogger sets the logger used for debug events. The default discards
// everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
