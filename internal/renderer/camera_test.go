package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraPositionOnOrbit(t *testing.T) {
	cam := Camera{Angle: 0, Radius: 2, Height: 0.5}

	got := cam.Position()
	want := mgl32.Vec3{2, 0, 0.5}
	if !closeVec(got, want, 1e-6) {
		t.Errorf("expected %v, got %v", want, got)
	}

	cam.Angle = float32(math.Pi / 2)
	got = cam.Position()
	want = mgl32.Vec3{0, 2, 0.5}
	if !closeVec(got, want, 1e-6) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCameraNegativeRadiusFlipsThroughOrigin(t *testing.T) {
	cam := Camera{Angle: 0, Radius: -2}

	got := cam.Position()
	if !closeVec(got, mgl32.Vec3{-2, 0, 0}, 1e-6) {
		t.Errorf("negative radius places the camera past the origin, got %v", got)
	}
}

func TestCameraViewMatrix(t *testing.T) {
	cam := Camera{Angle: 0, Radius: 5}

	view := cam.ViewMatrix()
	if view.At(3, 3) != 1.0 {
		t.Error("view matrix should be affine (w component = 1)")
	}

	// the orbit position must map to the view-space origin depth -radius
	eye := cam.Position().Vec4(1)
	transformed := view.Mul4x1(eye)
	if math.Abs(float64(transformed.X())) > 1e-5 || math.Abs(float64(transformed.Y())) > 1e-5 {
		t.Errorf("eye position should map onto the view axis, got %v", transformed)
	}
}

func TestCameraPerspectiveProjection(t *testing.T) {
	cam := Camera{Radius: 5, AspectRatio: 4.0 / 3.0, Perspective: true}

	proj := cam.ProjectionMatrix()
	if proj.At(3, 3) != 0.0 {
		t.Error("perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraOrthographicProjection(t *testing.T) {
	cam := Camera{Radius: 5, AspectRatio: 2.0, Perspective: false, OrthoExtent: 4.0}

	proj := cam.ProjectionMatrix()
	if proj.At(3, 3) != 1.0 {
		t.Error("orthographic projection should have w=1 at (3,3)")
	}

	// scale term = 1/(extent*aspect) horizontally, 1/extent vertically
	if got := proj.At(0, 0); math.Abs(float64(got)-1.0/8.0) > 1e-6 {
		t.Errorf("expected horizontal scale 1/8, got %f", got)
	}
	if got := proj.At(1, 1); math.Abs(float64(got)-1.0/4.0) > 1e-6 {
		t.Errorf("expected vertical scale 1/4, got %f", got)
	}
}

func TestProjectionToggleRoundTrip(t *testing.T) {
	cam := Camera{Radius: 5, AspectRatio: 1.5, Perspective: true, OrthoExtent: 4.0}
	original := cam.ProjectionMatrix()

	cam.Perspective = false
	ortho := cam.ProjectionMatrix()
	cam.Perspective = true

	if ortho == original {
		t.Error("projection matrices should differ between modes")
	}
	if cam.ProjectionMatrix() != original {
		t.Error("toggling projection twice should reproduce the original matrix")
	}
}

func closeVec(a, b mgl32.Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}
