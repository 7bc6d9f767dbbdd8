package renderer

import (
	"fmt"
	"strconv"

	"MeshView3D/internal/controls"
	"MeshView3D/internal/logger"
	"MeshView3D/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// meshBuffer is one uploaded vertex stream: a VAO/VBO pair plus its vertex
// count. Uploaded once, drawn every frame, deleted exactly once at shutdown.
type meshBuffer struct {
	vao   uint32
	vbo   uint32
	count int32
}

// OpenGLRenderer owns the GPU side of the viewer: the three shader programs
// (Gouraud, Phong, normal color) and one static buffer per normal mode. It
// issues a single triangle-list draw per frame.
type OpenGLRenderer struct {
	gouraud     Shader
	phong       Shader
	normalColor Shader
	buffers     [2]meshBuffer // indexed by scene.NormalMode
}

// Init sets persistent GL state and builds every shader program. Any compile
// or link failure aborts initialization.
func (rend *OpenGLRenderer) Init(width, height int32) error {
	gl.Viewport(0, 0, width, height)
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.08, 0.08, 0.10, 1.0)

	rend.gouraud = InitGouraudShader()
	rend.phong = InitPhongShader()
	rend.normalColor = InitNormalColorShader()

	for _, shader := range []*Shader{&rend.gouraud, &rend.phong, &rend.normalColor} {
		if err := shader.Compile(); err != nil {
			rend.Cleanup()
			return fmt.Errorf("building shaders: %w", err)
		}
	}

	logger.Log.Info("OpenGL renderer initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))
	return nil
}

// Upload creates the static vertex buffer for one normal mode. The stream is
// interleaved position/normal/color, three vertices per triangle.
func (rend *OpenGLRenderer) Upload(mode scene.NormalMode, geom *scene.Geometry) {
	buf := &rend.buffers[mode]

	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(geom.Stream)*4, gl.Ptr(geom.Stream), gl.STATIC_DRAW)

	stride := int32(scene.FloatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	buf.count = int32(geom.VertexCount)

	logger.Log.Info("Geometry uploaded",
		zap.String("normals", mode.String()),
		zap.Int("vertices", geom.VertexCount))
}

// Render draws one frame: clears, selects the program and buffer the frame
// asks for, sets uniforms and issues the draw call.
func (rend *OpenGLRenderer) Render(frame Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	shader := rend.activeShader(frame.Shading)
	shader.Use()
	rend.setFrameUniforms(shader, frame)

	buf := rend.buffers[frame.Normals]
	gl.BindVertexArray(buf.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, buf.count)
	gl.BindVertexArray(0)
}

func (rend *OpenGLRenderer) activeShader(mode controls.ShadingMode) *Shader {
	switch mode {
	case controls.Phong:
		return &rend.phong
	case controls.NormalColor:
		return &rend.normalColor
	default:
		return &rend.gouraud
	}
}

func (rend *OpenGLRenderer) setFrameUniforms(shader *Shader, frame Frame) {
	uc := shader.uniforms

	uc.SetMat4("uModel", frame.Model)
	uc.SetMat4("uView", frame.View)
	uc.SetMat4("uProj", frame.Projection)
	uc.SetVec3("eyePos", frame.Eye)

	uc.SetVec4("material.ambient", frame.Material.Ambient)
	uc.SetVec4("material.diffuse", frame.Material.Diffuse)
	uc.SetVec4("material.specular", frame.Material.Specular)
	uc.SetFloat("material.shininess", frame.Material.Shininess)

	for i, light := range frame.Lights {
		prefix := "lights[" + strconv.Itoa(i) + "]."
		uc.SetVec4(prefix+"ambient", light.Ambient)
		uc.SetVec4(prefix+"diffuse", light.Diffuse)
		uc.SetVec4(prefix+"specular", light.Specular)
		uc.SetVec3(prefix+"position", light.Position)
	}
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

// Cleanup releases every GPU resource. Safe to call on a partially
// initialized renderer.
func (rend *OpenGLRenderer) Cleanup() {
	for i := range rend.buffers {
		if rend.buffers[i].vao != 0 {
			gl.DeleteVertexArrays(1, &rend.buffers[i].vao)
			gl.DeleteBuffers(1, &rend.buffers[i].vbo)
			rend.buffers[i] = meshBuffer{}
		}
	}
	rend.gouraud.Delete()
	rend.phong.Delete()
	rend.normalColor.Delete()
}
