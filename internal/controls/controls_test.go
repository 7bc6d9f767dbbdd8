package controls

import (
	"math"
	"testing"

	"MeshView3D/internal/scene"
)

func newTestState() *State {
	return NewState(1.0, 3)
}

func TestNewStateFramesMesh(t *testing.T) {
	s := NewState(4.0, 3)

	if s.CamRadius != 10.0 {
		t.Errorf("camera radius should be 2.5x the bounding radius, got %f", s.CamRadius)
	}
	if !s.Perspective {
		t.Error("viewer starts in perspective projection")
	}
	if s.MaterialIndex != 0 {
		t.Errorf("material index should start at 0, got %d", s.MaterialIndex)
	}
}

func TestOrbitTransitions(t *testing.T) {
	cases := []struct {
		name  string
		event Event
		field func(*State) float32
		delta float32
	}{
		{"camera angle left", CameraOrbitLeft, func(s *State) float32 { return s.CamAngle }, -DefaultStep},
		{"camera angle right", CameraOrbitRight, func(s *State) float32 { return s.CamAngle }, DefaultStep},
		{"camera closer", CameraCloser, func(s *State) float32 { return s.CamRadius }, -DefaultStep},
		{"camera farther", CameraFarther, func(s *State) float32 { return s.CamRadius }, DefaultStep},
		{"camera up", CameraUp, func(s *State) float32 { return s.CamHeight }, DefaultStep},
		{"camera down", CameraDown, func(s *State) float32 { return s.CamHeight }, -DefaultStep},
		{"light angle left", LightOrbitLeft, func(s *State) float32 { return s.LightAngle }, -DefaultStep},
		{"light angle right", LightOrbitRight, func(s *State) float32 { return s.LightAngle }, DefaultStep},
		{"light closer", LightCloser, func(s *State) float32 { return s.LightRadius }, -DefaultStep},
		{"light farther", LightFarther, func(s *State) float32 { return s.LightRadius }, DefaultStep},
		{"light up", LightUp, func(s *State) float32 { return s.LightHeight }, DefaultStep},
		{"light down", LightDown, func(s *State) float32 { return s.LightHeight }, -DefaultStep},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState()
			before := tc.field(s)
			s.Apply(tc.event, false)
			got := tc.field(s) - before
			if math.Abs(float64(got-tc.delta)) > 1e-7 {
				t.Errorf("expected delta %f, got %f", tc.delta, got)
			}
		})
	}
}

func TestRepeatsDriveContinuousParameters(t *testing.T) {
	s := newTestState()
	before := s.CamAngle

	s.Apply(CameraOrbitRight, true)
	s.Apply(CameraOrbitRight, true)

	want := before + 2*DefaultStep
	if math.Abs(float64(s.CamAngle-want)) > 1e-7 {
		t.Errorf("held keys keep stepping, expected %f got %f", want, s.CamAngle)
	}
}

func TestRadiusUnclamped(t *testing.T) {
	s := NewState(0.02, 3)

	for i := 0; i < 10; i++ {
		s.Apply(CameraCloser, true)
	}

	if s.CamRadius >= 0 {
		t.Errorf("radius is intentionally unclamped and may go negative, got %f", s.CamRadius)
	}
}

func TestToggleProjectionTwice(t *testing.T) {
	s := newTestState()
	original := s.Perspective

	s.Apply(ToggleProjection, false)
	if s.Perspective == original {
		t.Error("first toggle should flip the projection")
	}
	s.Apply(ToggleProjection, false)
	if s.Perspective != original {
		t.Error("second toggle should restore the original projection")
	}
}

func TestSelectShadingMode(t *testing.T) {
	s := newTestState()

	s.Apply(SelectPhong, false)
	if s.Shading != Phong {
		t.Errorf("expected phong, got %v", s.Shading)
	}
	s.Apply(SelectNormalColor, false)
	if s.Shading != NormalColor {
		t.Errorf("expected normal color, got %v", s.Shading)
	}
	s.Apply(SelectGouraud, false)
	if s.Shading != Gouraud {
		t.Errorf("expected gouraud, got %v", s.Shading)
	}
}

func TestCycleMaterialWrapsAround(t *testing.T) {
	s := newTestState()

	for i := 0; i < 3; i++ {
		s.Apply(CycleMaterial, false)
	}

	if s.MaterialIndex != 0 {
		t.Errorf("cycling palette-size times should return to index 0, got %d", s.MaterialIndex)
	}
}

func TestCycleMaterialIgnoresRepeats(t *testing.T) {
	s := newTestState()

	s.Apply(CycleMaterial, true)
	s.Apply(CycleMaterial, true)

	if s.MaterialIndex != 0 {
		t.Errorf("held-key repeats must not advance the material, got %d", s.MaterialIndex)
	}
}

func TestToggleNormalModeEdgeTriggered(t *testing.T) {
	s := newTestState()
	original := s.Normals

	s.Apply(ToggleNormalMode, true)
	if s.Normals != original {
		t.Error("repeat events must not toggle the normal mode")
	}

	s.Apply(ToggleNormalMode, false)
	if s.Normals == original {
		t.Error("press should toggle the normal mode")
	}
	s.Apply(ToggleNormalMode, false)
	if s.Normals != original {
		t.Error("second press should restore the original normal mode")
	}
}

func TestNormalModeToggleCoversBothModes(t *testing.T) {
	s := newTestState()
	s.Normals = scene.FaceNormalMode

	s.Apply(ToggleNormalMode, false)
	if s.Normals != scene.SmoothNormalMode {
		t.Errorf("expected smooth mode, got %v", s.Normals)
	}
}

func TestCustomStep(t *testing.T) {
	s := newTestState()
	s.Step = 0.2

	s.Apply(CameraFarther, false)

	want := NewState(1.0, 3).CamRadius + 0.2
	if math.Abs(float64(s.CamRadius-want)) > 1e-6 {
		t.Errorf("configured step should be used, expected %f got %f", want, s.CamRadius)
	}
}
