// Package lighting holds the material/light data model and the Phong
// reflection evaluation shared by both shading strategies.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Material describes surface reflectance: ambient/diffuse/specular
// coefficients (alpha fixed at 1.0) plus a shininess exponent.
type Material struct {
	Name      string
	Ambient   mgl32.Vec4
	Diffuse   mgl32.Vec4
	Specular  mgl32.Vec4
	Shininess float32
}

// Light describes emissive intensity plus a world position. CameraRelative
// marks the light that is re-tethered near the eye every frame.
type Light struct {
	Ambient        mgl32.Vec4
	Diffuse        mgl32.Vec4
	Specular       mgl32.Vec4
	Position       mgl32.Vec3
	CameraRelative bool
}

// Palette returns the fixed set of selectable materials. The active material
// is an index into this slice, cycled at runtime.
func Palette() []Material {
	return []Material{
		{
			Name:      "clay",
			Ambient:   mgl32.Vec4{0.2, 0.2, 0.2, 1.0},
			Diffuse:   mgl32.Vec4{0.8, 0.2, 0.2, 1.0},
			Specular:  mgl32.Vec4{0.5, 0.5, 0.5, 1.0},
			Shininess: 32.0,
		},
		{
			Name:      "ruby",
			Ambient:   mgl32.Vec4{0.6, 0.2, 0.2, 1.0},
			Diffuse:   mgl32.Vec4{0.9, 0.1, 0.1, 1.0},
			Specular:  mgl32.Vec4{0.8, 0.8, 0.8, 1.0},
			Shininess: 80.0,
		},
		{
			Name:      "lapis",
			Ambient:   mgl32.Vec4{0.1, 0.1, 0.3, 1.0},
			Diffuse:   mgl32.Vec4{0.1, 0.2, 0.8, 1.0},
			Specular:  mgl32.Vec4{0.2, 0.2, 0.9, 1.0},
			Shininess: 16.0,
		},
	}
}

// DefaultLights returns the two lights the viewer runs with: one orbiting the
// object in world space, one tethered near the camera. Positions are filled
// in every frame by the frame composer.
func DefaultLights() [2]Light {
	return [2]Light{
		{
			Ambient:  mgl32.Vec4{0.2, 0.2, 0.2, 0.2},
			Diffuse:  mgl32.Vec4{0.6, 0.6, 0.6, 0.6},
			Specular: mgl32.Vec4{1.0, 1.0, 1.0, 1.0},
		},
		{
			Ambient:        mgl32.Vec4{0.1, 0.1, 0.1, 0.1},
			Diffuse:        mgl32.Vec4{0.6, 0.6, 0.6, 0.6},
			Specular:       mgl32.Vec4{1.0, 1.0, 1.0, 1.0},
			CameraRelative: true,
		},
	}
}

// Evaluate computes the contribution of a single light to the shaded color at
// a surface point:
//
//	ambient  = light.ambient * material.ambient
//	diffuse  = light.diffuse * material.diffuse * max(dot(N, L), 0)
//	specular = light.specular * material.specular * pow(max(dot(R, V), 0), shininess)
//
// with the specular term suppressed for back-facing geometry. The GLSL shade
// function in the renderer mirrors this exactly; only the invocation site
// (per vertex or per fragment) differs between shading modes. No upper clamp
// is applied; channels above 1.0 saturate at display time.
func Evaluate(light Light, mat Material, point, normal, eye mgl32.Vec3) mgl32.Vec3 {
	color := mulRGB(light.Ambient, mat.Ambient)

	lightDir := light.Position.Sub(point)
	if lightDir.LenSqr() > 0 {
		lightDir = lightDir.Normalize()
	}
	diff := normal.Dot(lightDir)
	if diff < 0 {
		diff = 0
	}
	color = color.Add(mulRGB(light.Diffuse, mat.Diffuse).Mul(diff))

	if diff > 0 {
		viewDir := eye.Sub(point)
		if viewDir.LenSqr() > 0 {
			viewDir = viewDir.Normalize()
		}
		reflectDir := reflect(lightDir.Mul(-1), normal)
		spec := reflectDir.Dot(viewDir)
		if spec < 0 {
			spec = 0
		}
		spec = float32(math.Pow(float64(spec), float64(mat.Shininess)))
		color = color.Add(mulRGB(light.Specular, mat.Specular).Mul(spec))
	}

	return color
}

// EvaluateAll sums Evaluate over every light.
func EvaluateAll(lights []Light, mat Material, point, normal, eye mgl32.Vec3) mgl32.Vec3 {
	var color mgl32.Vec3
	for _, light := range lights {
		color = color.Add(Evaluate(light, mat, point, normal, eye))
	}
	return color
}

// reflect mirrors the GLSL built-in: I - 2*dot(N,I)*N.
func reflect(incident, normal mgl32.Vec3) mgl32.Vec3 {
	return incident.Sub(normal.Mul(2 * normal.Dot(incident)))
}

func mulRGB(a, b mgl32.Vec4) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}
