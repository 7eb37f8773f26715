package gocube

import "github.com/go-gl/mathgl/mgl64"

// View is the free-orbit camera: two accumulated angles in degrees.
// Neither angle is clamped.
type View struct {
	Pitch float64 // rotation about X
	Yaw   float64 // rotation about Y
}

// Orbit applies a drag delta in pixels. Vertical motion pitches, horizontal
// motion yaws.
func (v *View) Orbit(dx, dy, sensitivity float64) {
	v.Yaw += dx * sensitivity
	v.Pitch += dy * sensitivity
}

// Rotation returns the world rotation for the view, pitch applied last.
func (v View) Rotation() mgl64.Mat4 {
	return axisRotation(AxisX, v.Pitch).Mul4(axisRotation(AxisY, v.Yaw))
}
