package gocube

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FacePick identifies an outer layer by the face a press landed on.
type FacePick struct {
	Axis  Axis
	Layer int
}

// Face returns the picked face.
func (fp FacePick) Face() Face {
	return FaceOf(fp.Axis, fp.Layer)
}

// Anchor returns the world position used to pick the face: the centre of
// the face's middle cubie.
func (fp FacePick) Anchor(g Geometry) mgl64.Vec3 {
	var v mgl64.Vec3
	v[fp.Axis] = float64(fp.Layer) * g.Spacing()
	return v
}

// pickCandidates is the order faces are tested in.
var pickCandidates = [6]FacePick{
	{AxisX, 1}, {AxisX, -1},
	{AxisY, 1}, {AxisY, -1},
	{AxisZ, 1}, {AxisZ, -1},
}

// tieEpsilon is the squared pixel distance under which two anchors count as
// equally close.
const tieEpsilon = 0.5

// ProjectBounds returns the screen bounding box of the cube's eight outer
// corners.
func ProjectBounds(p Projector, g Geometry) Rect {
	e := g.Extent()
	r := emptyRect()
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				r = r.extend(p.Project(mgl64.Vec3{sx * e, sy * e, sz * e}))
			}
		}
	}
	return r
}

// PickFace returns the face whose anchor projects nearest to (x, y).
// Anchors within tieEpsilon of the best distance are broken in favour of the
// one nearer the camera. ok is false when even the nearest anchor is farther
// than the pick radius.
func PickFace(p Projector, g Geometry, scale, x, y float64) (fp FacePick, ok bool) {
	mouse := Point{X: x, Y: y}
	bestD, bestZ := math.Inf(1), math.Inf(1)

	for _, cand := range pickCandidates {
		a := cand.Anchor(g)
		d2 := p.Project(a).Dist2(mouse)
		z := p.Depth(a)
		if d2 < bestD || (math.Abs(d2-bestD) < tieEpsilon && z < bestZ) {
			fp, bestD, bestZ = cand, d2, z
		}
	}

	if math.Sqrt(bestD) < g.PickRadius(scale) {
		return fp, true
	}
	return FacePick{}, false
}
