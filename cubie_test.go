package gocube

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func faceWithNormal(t *testing.T, n GridPos) Face {
	t.Helper()
	for _, f := range Faces {
		if f.Normal() == n {
			return f
		}
	}
	t.Fatalf("no face has normal %v", n)
	return 0
}

func TestStickersFollowRotatedNormals(t *testing.T) {
	for _, axis := range Axes {
		for _, dir := range []int{1, -1} {
			c := newCubie(GridPos{1, 1, 1})
			before := c.Faces
			c.Rotate(axis, dir)

			for _, f := range Faces {
				to := faceWithNormal(t, f.Normal().Rotate(axis, dir))
				if c.Faces[to] != before[f] {
					t.Errorf("axis %v dir %d: sticker from %v should face %v, got %v there",
						axis, dir, f, to, c.Faces[to])
				}
			}
		}
	}
}

func TestGridRotationMatchesFloatRotation(t *testing.T) {
	for _, axis := range Axes {
		for _, dir := range []int{1, -1} {
			for x := -1; x <= 1; x++ {
				for y := -1; y <= 1; y++ {
					for z := -1; z <= 1; z++ {
						p := GridPos{x, y, z}
						want := p.Rotate(axis, dir)
						got := RotateVec(mgl64.Vec3{float64(x), float64(y), float64(z)}, 90*float64(dir), axis)
						for i := 0; i < 3; i++ {
							assert.InDelta(t, float64(want[i]), got[i], 1e-9, "axis %v dir %d pos %v", axis, dir, p)
						}
					}
				}
			}
		}
	}
}

func TestModelAtQuarterTurnLandsOnCommittedSlot(t *testing.T) {
	g := Geometry{Edge: DefaultEdge, Gap: DefaultGap}
	for _, axis := range Axes {
		for _, dir := range []int{1, -1} {
			p := GridPos{1, -1, 1}
			d := CubieDraw{Pos: p, Turning: true, Axis: axis, Angle: 90 * float64(dir)}
			got := d.Model(g).Mul4x1(mgl64.Vec4{0, 0, 0, 1})
			want := p.Rotate(axis, dir)
			for i := 0; i < 3; i++ {
				assert.InDelta(t, float64(want[i])*g.Spacing(), got[i], 1e-9)
			}
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, axis := range Axes {
		c := newCubie(GridPos{1, 0, -1})
		c.Faces[FaceU] = Red
		c.Faces[FaceR] = Yellow
		start := *c
		for i := 0; i < 4; i++ {
			c.Rotate(axis, 1)
		}
		assert.Equal(t, start, *c, "axis %v", axis)
	}
}

func TestVisible(t *testing.T) {
	corner := newCubie(GridPos{1, 1, 1})
	for _, f := range []Face{FaceU, FaceF, FaceR} {
		assert.True(t, corner.Visible(f), "corner should show %v", f)
	}
	for _, f := range []Face{FaceD, FaceB, FaceL} {
		assert.False(t, corner.Visible(f), "corner should hide %v", f)
	}

	core := newCubie(GridPos{0, 0, 0})
	for _, f := range Faces {
		assert.False(t, core.Visible(f))
	}
}
