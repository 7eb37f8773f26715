// Package gocube models an interactive 3x3x3 twisty cube: the combinatorial
// state of its 27 cubies, animated quarter turns of an outer layer, and the
// projection math that turns pointer input into face turns and camera orbits.
//
// # Features
//
//   - Cubie lattice with fully stickered cubies and exact 90 degree rotations
//   - Turn state machine with per-frame animation and atomic commit
//   - Perspective projection, projected bounding box and face picking
//   - Drag gesture resolution into turn direction
//   - Free-orbit camera driven by pointer drags
//   - Standard move notation (R, U', F2, ...)
//   - Layer-by-layer phase detection and progress tracking
//
// # Quick Start
//
// A host application owns a Session and feeds it frames and pointer events:
//
//	s := gocube.NewSession(gocube.WithViewport(800, 600))
//
//	// pointer events, in pixels with the origin at the top-left
//	s.PointerDown(x, y)
//	s.PointerDrag(x, y)
//	s.PointerUp(x, y)
//
//	// once per display refresh
//	s.AdvanceFrame(dt)
//	for _, d := range s.DrawState() {
//	    model := d.Model(s.Geometry())
//	    // draw the cubie with model, d.Faces ...
//	}
//
// # Headless Use
//
// The Cube type works without a session:
//
//	cube := gocube.NewCube()
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
//	fmt.Println(cube)
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Coordinates
//
// The lattice is right handed. The view draws +X to the right, +Y down the
// screen and +Z towards the viewer, the same way a canvas does, so the U face
// (+Y) appears below D. Layer 1 on an axis is the outer slice on the positive
// side, layer -1 the slice on the negative side. Direction 1 is a positive
// (counter-clockwise, looking down the axis) rotation.
package gocube
