// Package viewer runs the terrain render loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terrainview/internal/config"
	"github.com/Faultbox/terrainview/internal/engine/camera"
	"github.com/Faultbox/terrainview/internal/engine/input"
	"github.com/Faultbox/terrainview/internal/engine/renderer"
	"github.com/Faultbox/terrainview/internal/engine/screenshot"
	"github.com/Faultbox/terrainview/internal/engine/terrain"
	"github.com/Faultbox/terrainview/internal/engine/window"
	"github.com/Faultbox/terrainview/internal/logger"
)

// Viewer owns the window, renderer and camera for one terrain mesh.
type Viewer struct {
	config   *config.Config
	log      *zap.Logger
	running  bool
	window   window.Window
	renderer *renderer.Renderer
	input    input.Poller
	camera   *camera.Turntable
	controls *controls
	capture  *screenshot.Capture

	pendingShot bool
}

// New opens a window and uploads the mesh. On failure everything created
// so far is released.
func New(cfg *config.Config, mesh *terrain.Mesh) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
	}

	v.log.Info("initializing viewer",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("backend", cfg.Graphics.Backend),
	)

	var err error
	v.capture, err = screenshot.New(cfg.Graphics.ScreenshotDir, "terrain", cfg.Graphics.ScreenshotFormat)
	if err != nil {
		return nil, err
	}

	v.window, err = window.New(WindowConfig(cfg.Graphics))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context, so it comes after the window
	width, height := v.window.Size()
	v.renderer, err = renderer.New(renderer.Config{
		Width:     width,
		Height:    height,
		SlopeTint: cfg.Graphics.SlopeTint,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := v.renderer.UploadMesh(mesh); err != nil {
		v.renderer.Close()
		v.window.Close()
		return nil, fmt.Errorf("failed to upload mesh: %w", err)
	}

	v.input = v.window.Input()
	v.camera = camera.NewTurntable(CameraSettings(cfg.Camera))
	v.controls = newControls(v.camera)

	v.log.Info("viewer initialized")
	return v, nil
}

// WindowConfig converts graphics settings to a window configuration.
func WindowConfig(g config.GraphicsConfig) window.Config {
	return window.Config{
		Title:      g.Title,
		Width:      g.Width,
		Height:     g.Height,
		Fullscreen: g.Fullscreen,
		VSync:      g.VSync,
		Backend:    g.Backend,
	}
}

// CameraSettings converts camera settings to turntable settings.
func CameraSettings(c config.CameraConfig) camera.Settings {
	return camera.Settings{
		FOVDeg:            c.FOVDeg,
		Near:              c.Near,
		Far:               c.Far,
		Offset:            mgl32.Vec3(c.Offset),
		PitchDeg:          c.PitchDeg,
		YawStepDeg:        c.YawStepDeg,
		PanSensitivity:    c.PanSensitivity,
		RotateSensitivity: c.RotateSensitivity,
		ZoomStep:          c.ZoomStep,
	}
}

// Run starts the render loop and returns when the user quits.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting render loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		for _, event := range v.input.Events() {
			if event.Type == input.EventWindowResize {
				v.renderer.Resize(event.Width, event.Height)
				continue
			}
			switch v.controls.handle(event) {
			case actionQuit:
				v.running = false
			case actionScreenshot:
				v.pendingShot = true
			}
		}
		if !v.running {
			break
		}

		// 2. Spin the turntable
		v.camera.Advance()

		// 3. Render
		v.renderer.Begin()
		v.renderer.DrawTerrain(v.camera.MVP(v.renderer.Aspect()))
		v.renderer.End()

		// Read back before the swap leaves the back buffer undefined
		if v.pendingShot {
			v.screenshot()
			v.pendingShot = false
		}

		// 4. Present
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			v.window.SetTitle(fmt.Sprintf("%s - %d FPS", v.config.Graphics.Title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	v.log.Info("render loop stopped")
	return nil
}

// screenshot saves the last rendered frame.
func (v *Viewer) screenshot() {
	pixels, width, height := v.renderer.ReadPixels()
	path, err := v.capture.SavePixels(pixels, width, height)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the renderer, then the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
