package gocube

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testViewport() Viewport {
	return Viewport{Width: 800, Height: 600, ReferenceSize: DefaultReferenceSize}
}

func TestViewportScale(t *testing.T) {
	assert.InDelta(t, 600.0/720.0, testViewport().Scale(), 1e-12)
	assert.InDelta(t, 1.0, Viewport{Width: 720, Height: 1000, ReferenceSize: 720}.Scale(), 1e-12)
	assert.InDelta(t, 2.0, Viewport{Width: 600, Height: 600, ReferenceSize: 300}.Scale(), 1e-12)
}

func TestOriginProjectsToCentre(t *testing.T) {
	for _, v := range []View{{}, {Pitch: 25, Yaw: -35}, {Pitch: 170, Yaw: 400}} {
		p := NewProjector(testViewport(), v)
		c := p.Project(mgl64.Vec3{})
		assert.InDelta(t, 400, c.X, 1e-9)
		assert.InDelta(t, 300, c.Y, 1e-9)
	}
}

func TestOneUnitIsOnePixelAtOrigin(t *testing.T) {
	vp := testViewport()
	p := NewProjector(vp, View{})
	s := vp.Scale()

	right := p.Project(mgl64.Vec3{100, 0, 0})
	assert.InDelta(t, 400+100*s, right.X, 1e-6)
	assert.InDelta(t, 300, right.Y, 1e-6)

	down := p.Project(mgl64.Vec3{0, 100, 0})
	assert.InDelta(t, 400, down.X, 1e-6)
	assert.InDelta(t, 300+100*s, down.Y, 1e-6, "world +Y is screen down")
}

func TestDepthGrowsAwayFromCamera(t *testing.T) {
	p := NewProjector(testViewport(), View{})
	origin := p.Depth(mgl64.Vec3{})
	assert.InDelta(t, 300/math.Tan(mgl64.DegToRad(30)), origin, 1e-6)
	assert.Less(t, p.Depth(mgl64.Vec3{0, 0, 50}), origin)
	assert.Greater(t, p.Depth(mgl64.Vec3{0, 0, -50}), origin)
}

func TestToScreen(t *testing.T) {
	pt := ToScreen(mgl64.Vec4{1, 1, 0, 2}, 200, 100)
	assert.InDelta(t, 150, pt.X, 1e-12)
	assert.InDelta(t, 25, pt.Y, 1e-12)

	// w == 0 skips the divide instead of producing Inf.
	pt = ToScreen(mgl64.Vec4{0.5, -0.5, 0, 0}, 200, 100)
	require.False(t, math.IsInf(pt.X, 0) || math.IsNaN(pt.X))
	assert.InDelta(t, 150, pt.X, 1e-12)
	assert.InDelta(t, 75, pt.Y, 1e-12)
}

func TestRotateVec(t *testing.T) {
	v := RotateVec(mgl64.Vec3{1, 0, 0}, 90, AxisZ)
	assert.InDelta(t, 0, v.X(), 1e-12)
	assert.InDelta(t, 1, v.Y(), 1e-12)

	v = RotateVec(mgl64.Vec3{0, 1, 0}, 90, AxisX)
	assert.InDelta(t, 1, v.Z(), 1e-12)

	v = RotateVec(mgl64.Vec3{0, 0, 1}, 90, AxisY)
	assert.InDelta(t, 1, v.X(), 1e-12)

	v = RotateVec(mgl64.Vec3{3, 4, 5}, 0, AxisY)
	assert.InDelta(t, 3, v.X(), 1e-12)
	assert.InDelta(t, 4, v.Y(), 1e-12)
	assert.InDelta(t, 5, v.Z(), 1e-12)
}

func TestViewOrbit(t *testing.T) {
	v := View{Pitch: 25, Yaw: -35}
	v.Orbit(10, -4, 0.5)
	assert.Equal(t, View{Pitch: 23, Yaw: -30}, v)

	// Angles accumulate without clamping.
	for i := 0; i < 100; i++ {
		v.Orbit(0, 10, 1)
	}
	assert.Equal(t, 1023.0, v.Pitch)
}

func TestProjectBoundsContainsAllCubies(t *testing.T) {
	g := Geometry{Edge: DefaultEdge, Gap: DefaultGap}
	p := NewProjector(testViewport(), View{Pitch: 25, Yaw: -35})
	r := ProjectBounds(p, g)

	require.Greater(t, r.Width(), 0.0)
	require.Greater(t, r.Height(), 0.0)
	for _, d := range NewCube().DrawState() {
		c := p.ProjectModel(d.Model(g), mgl64.Vec3{})
		assert.True(t, r.Contains(c.X, c.Y), "cubie %v at %v outside %+v", d.Pos, c, r)
	}
}
