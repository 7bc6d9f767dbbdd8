package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"MeshView3D/internal/config"
	"MeshView3D/internal/controls"
	"MeshView3D/internal/engine"
	"MeshView3D/internal/lighting"
	"MeshView3D/internal/loader"
	"MeshView3D/internal/logger"
	"MeshView3D/internal/scene"

	"go.uber.org/zap"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "meshview:", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <mesh.smf>\n", os.Args[0])
		os.Exit(2)
	}
	meshPath := flag.Arg(0)

	// Fatal before any window exists: an unreadable mesh never opens a context.
	mesh, err := loader.LoadSMF(meshPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "meshview:", err)
		os.Exit(1)
	}

	faceGeometry := scene.Build(mesh, scene.FaceNormalMode)
	smoothGeometry := scene.Build(mesh, scene.SmoothNormalMode)

	palette := lighting.Palette()
	state := controls.NewState(smoothGeometry.Radius, len(palette))
	state.Step = cfg.Input.OrbitStep
	applyViewerConfig(state, cfg.Viewer, palette)

	viewer := engine.New(cfg, state, faceGeometry, smoothGeometry)
	if err := viewer.Run(); err != nil {
		logger.Log.Error("Viewer terminated", zap.Error(err))
		fmt.Fprintln(os.Stderr, "meshview:", err)
		os.Exit(1)
	}
}

// applyViewerConfig seeds the control state from the viewer config section.
func applyViewerConfig(state *controls.State, cfg config.ViewerConfig, palette []lighting.Material) {
	switch strings.ToLower(cfg.Shading) {
	case "phong":
		state.Shading = controls.Phong
	case "normals":
		state.Shading = controls.NormalColor
	default:
		state.Shading = controls.Gouraud
	}

	if strings.ToLower(cfg.Projection) == "orthographic" {
		state.Perspective = false
	}

	if strings.ToLower(cfg.NormalMode) == "face" {
		state.Normals = scene.FaceNormalMode
	}

	for i, mat := range palette {
		if strings.EqualFold(mat.Name, cfg.MaterialName) {
			state.MaterialIndex = i
			break
		}
	}
}
