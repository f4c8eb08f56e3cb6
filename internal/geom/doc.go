// Package geom provides the sphere-space primitives shared by the Bloch
// sphere visuals.
//
//   - [Vector3]: 3-D coordinate with the usual vector algebra
//   - [Rotate]: Rodrigues rotation about a horizontal-plane axis
//   - [Viewport.Project]: the fixed oblique 3-D to 2-D view
//
// Rotation axes are confined to the x-z plane, so the poles of every
// rotation family sit on the y axis. All functions are pure; nothing in
// this package holds state.
package geom
