// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit camera constants shared by every frame.
const (
	cameraFov  float32 = 45.0
	cameraNear float32 = 0.01
	cameraFar  float32 = 100.0
	orthoDepth float32 = 100.0
)

// Camera sits on an orbit around the origin: a point on a circle of the
// given radius in the XY plane, offset along Z, looking at the origin with
// +Z up. The radius is intentionally unclamped; a negative radius flips the
// camera through the origin.
type Camera struct {
	Angle  float32
	Radius float32
	Height float32

	AspectRatio float32
	Perspective bool
	OrthoExtent float32 // half-height of the orthographic box
}

// Position derives the world-space eye position from the orbit parameters.
func (c *Camera) Position() mgl32.Vec3 {
	return mgl32.Vec3{
		c.Radius * float32(math.Cos(float64(c.Angle))),
		c.Radius * float32(math.Sin(float64(c.Angle))),
		c.Height,
	}
}

// ViewMatrix looks from the orbit position at the origin.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
}

// ProjectionMatrix returns either a fixed field-of-view perspective or an
// orthographic box sized from the mesh bounding radius and the current
// aspect ratio.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	if c.Perspective {
		return mgl32.Perspective(mgl32.DegToRad(cameraFov), c.AspectRatio, cameraNear, cameraFar)
	}
	s := c.OrthoExtent
	return mgl32.Ortho(-s*c.AspectRatio, s*c.AspectRatio, -s, s, -orthoDepth, orthoDepth)
}
