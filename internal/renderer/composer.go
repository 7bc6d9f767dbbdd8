package renderer

import (
	"math"

	"MeshView3D/internal/controls"
	"MeshView3D/internal/lighting"
	"MeshView3D/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// headlampOffset is how far the camera-tethered light sits in front of the
// eye, plus its fixed lift along Z.
const headlampOffset float32 = 0.1

// Frame carries everything the draw call needs for one frame, derived purely
// from the control state and the mesh framing scalars. Composing a frame
// touches no GL state, so it is unit-testable headless.
type Frame struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
	Lights     [2]lighting.Light
	Material   lighting.Material
	Shading    controls.ShadingMode
	Normals    scene.NormalMode
}

// Composer derives per-frame quantities from the control state. The light
// templates keep their intensities; only positions are recomputed each frame.
type Composer struct {
	Centroid mgl32.Vec3
	Radius   float32
	Lights   [2]lighting.Light
	Palette  []lighting.Material
}

// NewComposer builds a composer for a prepared mesh.
func NewComposer(centroid mgl32.Vec3, radius float32, palette []lighting.Material) *Composer {
	return &Composer{
		Centroid: centroid,
		Radius:   radius,
		Lights:   lighting.DefaultLights(),
		Palette:  palette,
	}
}

// Compose derives the camera, projection, light placement and active
// material for the current state.
func (c *Composer) Compose(state *controls.State, aspect float32) Frame {
	camera := Camera{
		Angle:       state.CamAngle,
		Radius:      state.CamRadius,
		Height:      state.CamHeight,
		AspectRatio: aspect,
		Perspective: state.Perspective,
		OrthoExtent: c.Radius * 2.0,
	}
	eye := camera.Position()

	frame := Frame{
		// Center the model at the origin; the orbit math assumes it.
		Model:      mgl32.Translate3D(-c.Centroid.X(), -c.Centroid.Y(), -c.Centroid.Z()),
		View:       camera.ViewMatrix(),
		Projection: camera.ProjectionMatrix(),
		Eye:        eye,
		Lights:     c.Lights,
		Material:   c.Palette[state.MaterialIndex],
		Shading:    state.Shading,
		Normals:    state.Normals,
	}

	frame.Lights[0].Position = orbitPosition(state.LightAngle, state.LightRadius, state.LightHeight)
	frame.Lights[1].Position = headlampPosition(eye)

	return frame
}

// orbitPosition places a point on a circle of the given radius in the XY
// plane, offset along Z. Shared by the camera and the orbiting light.
func orbitPosition(angle, radius, height float32) mgl32.Vec3 {
	return mgl32.Vec3{
		radius * float32(math.Cos(float64(angle))),
		radius * float32(math.Sin(float64(angle))),
		height,
	}
}

// headlampPosition tethers the camera-relative light a fixed small offset
// from the eye toward the origin, lifted slightly along Z.
func headlampPosition(eye mgl32.Vec3) mgl32.Vec3 {
	toOrigin := mgl32.Vec3{}.Sub(eye)
	if toOrigin.LenSqr() > 0 {
		toOrigin = toOrigin.Normalize()
	}
	return eye.Add(toOrigin.Mul(headlampOffset)).Add(mgl32.Vec3{0, 0, headlampOffset})
}
