// Package controls holds the viewer's live state and the transition table
// mapping discrete input events onto it.
package controls

import "MeshView3D/internal/scene"

// ShadingMode selects how lighting is evaluated each frame.
type ShadingMode int

const (
	// Gouraud evaluates lighting once per vertex.
	Gouraud ShadingMode = iota
	// Phong evaluates lighting once per fragment.
	Phong
	// NormalColor skips lighting and paints abs(normal).
	NormalColor
)

func (m ShadingMode) String() string {
	switch m {
	case Gouraud:
		return "gouraud"
	case Phong:
		return "phong"
	default:
		return "normals"
	}
}

// Event is a discrete input event.
type Event int

const (
	NoEvent Event = iota
	CameraOrbitLeft
	CameraOrbitRight
	CameraCloser
	CameraFarther
	CameraUp
	CameraDown
	LightOrbitLeft
	LightOrbitRight
	LightCloser
	LightFarther
	LightUp
	LightDown
	ToggleProjection
	SelectGouraud
	SelectPhong
	SelectNormalColor
	ToggleNormalMode
	CycleMaterial
)

// DefaultStep is the per-press delta applied to orbit parameters.
const DefaultStep float32 = 0.05

// State holds every user-controllable parameter. Mutated only by Apply,
// read every frame by the frame composer. None of the fields are clamped:
// a radius may go to or past zero, flipping the camera or light through the
// origin.
type State struct {
	CamAngle  float32 // radians, wraps implicitly through trig
	CamRadius float32
	CamHeight float32

	LightAngle  float32
	LightRadius float32
	LightHeight float32

	Perspective   bool
	Shading       ShadingMode
	Normals       scene.NormalMode
	MaterialIndex int
	PaletteSize   int

	Step float32
}

// NewState seeds the state from the mesh bounding radius so the object is
// framed regardless of input scale.
func NewState(boundingRadius float32, paletteSize int) *State {
	return &State{
		CamRadius:   boundingRadius * 2.5,
		LightRadius: boundingRadius * 2.5,
		Perspective: true,
		Shading:     Gouraud,
		Normals:     scene.SmoothNormalMode,
		PaletteSize: paletteSize,
		Step:        DefaultStep,
	}
}

// Apply performs one state transition. repeat reports whether the event came
// from a held key; edge-triggered transitions (material cycle, normal-mode
// toggle) ignore repeats.
func (s *State) Apply(ev Event, repeat bool) {
	step := s.Step
	if step == 0 {
		step = DefaultStep
	}

	switch ev {
	case CameraOrbitLeft:
		s.CamAngle -= step
	case CameraOrbitRight:
		s.CamAngle += step
	case CameraCloser:
		s.CamRadius -= step
	case CameraFarther:
		s.CamRadius += step
	case CameraUp:
		s.CamHeight += step
	case CameraDown:
		s.CamHeight -= step
	case LightOrbitLeft:
		s.LightAngle -= step
	case LightOrbitRight:
		s.LightAngle += step
	case LightCloser:
		s.LightRadius -= step
	case LightFarther:
		s.LightRadius += step
	case LightUp:
		s.LightHeight += step
	case LightDown:
		s.LightHeight -= step
	case ToggleProjection:
		s.Perspective = !s.Perspective
	case SelectGouraud:
		s.Shading = Gouraud
	case SelectPhong:
		s.Shading = Phong
	case SelectNormalColor:
		s.Shading = NormalColor
	case ToggleNormalMode:
		if repeat {
			return
		}
		if s.Normals == scene.FaceNormalMode {
			s.Normals = scene.SmoothNormalMode
		} else {
			s.Normals = scene.FaceNormalMode
		}
	case CycleMaterial:
		if repeat {
			return
		}
		if s.PaletteSize > 0 {
			s.MaterialIndex = (s.MaterialIndex + 1) % s.PaletteSize
		}
	}
}
