package scene

import (
	"math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCentroidAndBoundingRadius(t *testing.T) {
	m := &Mesh{
		Positions: []mgl32.Vec3{
			{1, 0, 0}, {-1, 0, 0}, {0, 2, 0}, {0, -2, 0},
		},
	}

	if c := m.Centroid(); c != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("expected centroid at origin, got %v", c)
	}
	if r := m.BoundingRadius(); math.Abs(float64(r)-2.0) > 1e-6 {
		t.Errorf("expected bounding radius 2, got %f", r)
	}
}

func TestCentroidEmptyMesh(t *testing.T) {
	m := &Mesh{}

	if c := m.Centroid(); c != (mgl32.Vec3{}) {
		t.Errorf("empty mesh centroid should be zero, got %v", c)
	}
	if r := m.BoundingRadius(); r != 0 {
		t.Errorf("empty mesh radius should be zero, got %f", r)
	}
}

func TestBuildExpandsPerTriangle(t *testing.T) {
	geom := Build(flatQuad(), FaceNormalMode)

	if geom.VertexCount != 6 {
		t.Errorf("expected 6 output vertices for 2 triangles, got %d", geom.VertexCount)
	}
	if len(geom.Stream) != geom.VertexCount*FloatsPerVertex {
		t.Errorf("expected %d floats, got %d", geom.VertexCount*FloatsPerVertex, len(geom.Stream))
	}
}

func TestBuildFaceModeDuplicatesFaceNormal(t *testing.T) {
	geom := Build(flatQuad(), FaceNormalMode)

	for v := 0; v < geom.VertexCount; v++ {
		base := v * FloatsPerVertex
		normal := mgl32.Vec3{geom.Stream[base+3], geom.Stream[base+4], geom.Stream[base+5]}
		if normal != (mgl32.Vec3{0, 0, 1}) {
			t.Errorf("vertex %d: every corner should carry the face normal, got %v", v, normal)
		}
	}
}

func TestBuildColorIsAbsNormal(t *testing.T) {
	// reversed winding: face normal points down, color must still be positive
	m := &Mesh{
		Positions: []mgl32.Vec3{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}},
		Triangles: []Triangle{{0, 1, 2}},
	}
	geom := Build(m, FaceNormalMode)

	normal := mgl32.Vec3{geom.Stream[3], geom.Stream[4], geom.Stream[5]}
	color := mgl32.Vec3{geom.Stream[6], geom.Stream[7], geom.Stream[8]}

	if normal != (mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("expected downward normal, got %v", normal)
	}
	if color != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("color should be abs(normal), got %v", color)
	}
}

func TestBuildDeterministic(t *testing.T) {
	m := flatQuad()

	for _, mode := range []NormalMode{FaceNormalMode, SmoothNormalMode} {
		first := Build(m, mode)
		second := Build(m, mode)
		if !reflect.DeepEqual(first.Stream, second.Stream) {
			t.Errorf("mode %v: rebuilt stream should be bit-identical", mode)
		}
	}
}

func TestBuildModesDifferOnCurvedMesh(t *testing.T) {
	// two faces at a right angle: face and smooth streams must disagree at
	// the shared edge
	m := &Mesh{
		Positions: []mgl32.Vec3{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 0, 1},
		},
		Triangles: []Triangle{
			{0, 1, 2},
			{0, 3, 1},
		},
	}

	face := Build(m, FaceNormalMode)
	smooth := Build(m, SmoothNormalMode)

	if reflect.DeepEqual(face.Stream, smooth.Stream) {
		t.Error("face and smooth streams should differ for non-planar meshes")
	}
}

func TestBuildCarriesFramingScalars(t *testing.T) {
	m := flatQuad()
	geom := Build(m, SmoothNormalMode)

	if geom.Centroid != m.Centroid() {
		t.Errorf("geometry centroid %v should match mesh centroid %v", geom.Centroid, m.Centroid())
	}
	if geom.Radius != m.BoundingRadius() {
		t.Errorf("geometry radius %f should match mesh radius %f", geom.Radius, m.BoundingRadius())
	}
}
