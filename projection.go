package gocube

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// fieldOfView is the vertical field of view in degrees.
const fieldOfView = 60.0

// Viewport is the drawing surface the cube is projected onto.
type Viewport struct {
	Width, Height float64

	// ReferenceSize is the smaller viewport dimension at which the cube is
	// drawn at scale 1.
	ReferenceSize float64
}

// Scale returns the uniform scale applied to the cube for this viewport.
func (vp Viewport) Scale() float64 {
	ref := vp.ReferenceSize
	if ref <= 0 {
		ref = DefaultReferenceSize
	}
	return math.Min(vp.Width, vp.Height) / ref
}

// eyeDistance places the camera so one world unit at the origin spans one
// pixel vertically.
func (vp Viewport) eyeDistance() float64 {
	return (vp.Height / 2) / math.Tan(mgl64.DegToRad(fieldOfView/2))
}

// Projection returns the perspective projection matrix.
func (vp Viewport) Projection() mgl64.Mat4 {
	eye := vp.eyeDistance()
	aspect := 1.0
	if vp.Height != 0 {
		aspect = vp.Width / vp.Height
	}
	return mgl64.Perspective(mgl64.DegToRad(fieldOfView), aspect, eye/10, eye*10)
}

// Camera returns the camera (view) matrix looking at the origin down -Z.
func (vp Viewport) Camera() mgl64.Mat4 {
	return mgl64.LookAtV(
		mgl64.Vec3{0, 0, vp.eyeDistance()},
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{0, 1, 0},
	)
}

// axisRotation returns the homogeneous rotation by deg degrees about axis.
func axisRotation(a Axis, deg float64) mgl64.Mat4 {
	rad := mgl64.DegToRad(deg)
	switch a {
	case AxisX:
		return mgl64.HomogRotate3DX(rad)
	case AxisY:
		return mgl64.HomogRotate3DY(rad)
	default:
		return mgl64.HomogRotate3DZ(rad)
	}
}

// RotateVec rotates v by deg degrees about a principal axis.
func RotateVec(v mgl64.Vec3, deg float64, a Axis) mgl64.Vec3 {
	rad := mgl64.DegToRad(deg)
	switch a {
	case AxisX:
		return mgl64.Rotate3DX(rad).Mul3x1(v)
	case AxisY:
		return mgl64.Rotate3DY(rad).Mul3x1(v)
	default:
		return mgl64.Rotate3DZ(rad).Mul3x1(v)
	}
}

// Projector maps world points to screen points for one frame.
type Projector struct {
	modelView  mgl64.Mat4
	projection mgl64.Mat4
	width      float64
	height     float64
}

// NewProjector builds the projector for a viewport seen through view. World
// +Y is drawn down the screen, as on a canvas, so the scale mirrors Y.
func NewProjector(vp Viewport, v View) Projector {
	s := vp.Scale()
	mv := vp.Camera().Mul4(mgl64.Scale3D(s, -s, s)).Mul4(v.Rotation())
	return Projector{
		modelView:  mv,
		projection: vp.Projection(),
		width:      vp.Width,
		height:     vp.Height,
	}
}

// ModelView returns the model-view matrix.
func (p Projector) ModelView() mgl64.Mat4 {
	return p.modelView
}

// Projection returns the projection matrix.
func (p Projector) Projection() mgl64.Mat4 {
	return p.projection
}

// Project maps a world point to screen pixels.
func (p Projector) Project(pt mgl64.Vec3) Point {
	return p.ProjectModel(mgl64.Ident4(), pt)
}

// ProjectModel maps a point in a model's local space to screen pixels.
func (p Projector) ProjectModel(model mgl64.Mat4, pt mgl64.Vec3) Point {
	eye := p.modelView.Mul4(model).Mul4x1(pt.Vec4(1))
	return ToScreen(p.projection.Mul4x1(eye), p.width, p.height)
}

// Depth returns how far in front of the camera a world point lies.
func (p Projector) Depth(pt mgl64.Vec3) float64 {
	return p.DepthModel(mgl64.Ident4(), pt)
}

// DepthModel is Depth for a point in a model's local space.
func (p Projector) DepthModel(model mgl64.Mat4, pt mgl64.Vec3) float64 {
	eye := p.modelView.Mul4(model).Mul4x1(pt.Vec4(1))
	return -eye.Z()
}

// ToScreen performs the perspective divide on a clip-space point and maps
// normalized device coordinates to pixels with Y pointing down. A zero w
// skips the divide and the point is treated as already normalized.
func ToScreen(clip mgl64.Vec4, width, height float64) Point {
	x, y := clip.X(), clip.Y()
	if w := clip.W(); w != 0 {
		x /= w
		y /= w
	}
	return Point{
		X: (x + 1) * width / 2,
		Y: (1 - y) * height / 2,
	}
}
