// Package engine owns the window, the GL context and the frame loop. It is
// the boundary between the viewer core and the platform: everything here is
// GLFW plumbing around the composer and renderer.
package engine

import (
	"fmt"
	"runtime"

	"MeshView3D/internal/config"
	"MeshView3D/internal/controls"
	"MeshView3D/internal/lighting"
	"MeshView3D/internal/logger"
	"MeshView3D/internal/renderer"
	"MeshView3D/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Viewer wires the control state, the frame composer and the GL renderer
// into one single-threaded frame loop.
type Viewer struct {
	width  int32
	height int32
	vsync  bool

	window   *glfw.Window
	renderer *renderer.OpenGLRenderer
	composer *renderer.Composer
	state    *controls.State

	faceGeometry   *scene.Geometry
	smoothGeometry *scene.Geometry
}

// New builds a viewer for a prepared mesh. Both geometry streams are built
// by the caller; the live normal-mode toggle only switches buffers.
func New(cfg *config.Config, state *controls.State, face, smooth *scene.Geometry) *Viewer {
	return &Viewer{
		width:          int32(cfg.Graphics.Width),
		height:         int32(cfg.Graphics.Height),
		vsync:          cfg.Graphics.VSync,
		renderer:       &renderer.OpenGLRenderer{},
		composer:       renderer.NewComposer(smooth.Centroid, smooth.Radius, lighting.Palette()),
		state:          state,
		faceGeometry:   face,
		smoothGeometry: smooth,
	}
}

// Run creates the window and drives the frame loop until an exit request.
// GPU resources are released on every exit path, including initialization
// failures after the context exists.
func (v *Viewer) Run() error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(int(v.width), int(v.height), "MeshView3D", nil, nil)
	if err != nil {
		return fmt.Errorf("could not create glfw window: %w", err)
	}
	v.window = window
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("could not initialize OpenGL: %w", err)
	}
	if v.vsync {
		glfw.SwapInterval(1)
	}

	if err := v.renderer.Init(v.width, v.height); err != nil {
		return err
	}
	defer v.renderer.Cleanup()

	v.renderer.Upload(scene.FaceNormalMode, v.faceGeometry)
	v.renderer.Upload(scene.SmoothNormalMode, v.smoothGeometry)

	window.SetKeyCallback(v.onKey)
	printControls()

	logger.Log.Info("Viewer running",
		zap.Int32("width", v.width),
		zap.Int32("height", v.height),
		zap.Float32("camRadius", v.state.CamRadius))

	v.renderLoop()
	return nil
}

func (v *Viewer) renderLoop() {
	var lastWidth, lastHeight int32 = v.width, v.height

	for !v.window.ShouldClose() {
		glfw.PollEvents()

		fbWidth, fbHeight := v.window.GetFramebufferSize()
		if int32(fbWidth) != lastWidth || int32(fbHeight) != lastHeight {
			v.renderer.UpdateViewport(int32(fbWidth), int32(fbHeight))
			lastWidth, lastHeight = int32(fbWidth), int32(fbHeight)
		}
		aspect := float32(1.0)
		if fbHeight > 0 {
			aspect = float32(fbWidth) / float32(fbHeight)
		}

		frame := v.composer.Compose(v.state, aspect)
		v.renderer.Render(frame)

		v.window.SwapBuffers()
	}
}

// onKey maps the fixed keymap onto control events. Repeats keep driving the
// continuous parameters; edge-triggered transitions ignore them inside
// State.Apply.
func (v *Viewer) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	if key == glfw.KeyEscape {
		w.SetShouldClose(true)
		return
	}
	ev := keyEvent(key)
	if ev == controls.NoEvent {
		return
	}
	v.state.Apply(ev, action == glfw.Repeat)
}

func keyEvent(key glfw.Key) controls.Event {
	switch key {
	case glfw.KeyA:
		return controls.CameraOrbitLeft
	case glfw.KeyD:
		return controls.CameraOrbitRight
	case glfw.KeyW:
		return controls.CameraCloser
	case glfw.KeyS:
		return controls.CameraFarther
	case glfw.KeyQ:
		return controls.CameraUp
	case glfw.KeyE:
		return controls.CameraDown
	case glfw.KeyJ:
		return controls.LightOrbitLeft
	case glfw.KeyL:
		return controls.LightOrbitRight
	case glfw.KeyI:
		return controls.LightCloser
	case glfw.KeyK:
		return controls.LightFarther
	case glfw.KeyU:
		return controls.LightUp
	case glfw.KeyO:
		return controls.LightDown
	case glfw.KeyP:
		return controls.ToggleProjection
	case glfw.Key1:
		return controls.SelectGouraud
	case glfw.Key2:
		return controls.SelectPhong
	case glfw.Key3:
		return controls.SelectNormalColor
	case glfw.KeyN:
		return controls.ToggleNormalMode
	case glfw.KeyM:
		return controls.CycleMaterial
	}
	return controls.NoEvent
}

func printControls() {
	fmt.Println("Controls:")
	fmt.Println("A/D: camera angle  W/S: radius  Q/E: height")
	fmt.Println("J/L: light angle  I/K: light radius  U/O: light height")
	fmt.Println("1: Gouraud  2: Phong  3: normal colors  N: face/smooth normals")
	fmt.Println("M: change material  P: toggle projection")
	fmt.Println("Esc: exit")
}
