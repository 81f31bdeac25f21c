// Package renderer draws the terrain mesh with OpenGL 4.1 core.
package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terrainview/internal/engine/renderer/shaders"
	"github.com/Faultbox/terrainview/internal/engine/shader"
	"github.com/Faultbox/terrainview/internal/engine/terrain"
	"github.com/Faultbox/terrainview/internal/logger"
)

// Attribute locations shared with terrain.vert.
const (
	attribPosition = 0
	attribNormal   = 1
	attribColor    = 2
)

var (
	// ErrEmptyMesh is returned by UploadMesh for a mesh with nothing to draw.
	ErrEmptyMesh = errors.New("empty mesh")
	// ErrMeshUploaded is returned by UploadMesh when a mesh is already on the GPU.
	ErrMeshUploaded = errors.New("mesh already uploaded")
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	SlopeTint float32 // How much steep faces are darkened, 0..1
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program      uint32
	locMVP       int32
	locSlopeTint int32

	vao        uint32
	vboPos     uint32
	vboNormal  uint32
	vboColor   uint32
	ebo        uint32
	indexCount int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	if r.locMVP, err = shader.Uniform(r.program, "uMVP"); err != nil {
		r.Close()
		return nil, err
	}
	if r.locSlopeTint, err = shader.Uniform(r.program, "uSlopeTint"); err != nil {
		r.Close()
		return nil, err
	}

	r.log.Debug("terrain program created", zap.Uint32("program", r.program))
	return r, nil
}

// validateMesh checks that a mesh has consistent, drawable buffers.
func validateMesh(m *terrain.Mesh) error {
	if m == nil || len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return ErrEmptyMesh
	}
	if len(m.Vertices)%3 != 0 || len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh buffers are not triples: %d vertex floats, %d indices", len(m.Vertices), len(m.Indices))
	}
	if len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("mesh has %d normal floats for %d vertex floats", len(m.Normals), len(m.Vertices))
	}
	return nil
}

// UploadMesh copies the mesh into GPU buffers. The mesh is uploaded once
// and never touched again; call it a single time per renderer.
func (r *Renderer) UploadMesh(m *terrain.Mesh) error {
	if r.vao != 0 {
		return ErrMeshUploaded
	}
	if err := validateMesh(m); err != nil {
		return err
	}

	colors := HeightColors(m)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	r.vboPos = uploadAttribute(attribPosition, m.Vertices)
	r.vboNormal = uploadAttribute(attribNormal, m.Normals)
	r.vboColor = uploadAttribute(attribColor, colors)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	r.indexCount = int32(len(m.Indices))

	r.log.Info("terrain mesh uploaded",
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
		zap.Uint32("vao", r.vao),
	)
	return nil
}

// uploadAttribute creates a VBO holding vec3 data bound to the given location.
// The VAO must be bound.
func uploadAttribute(location uint32, data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(location, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(location)
	return vbo
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawTerrain draws the uploaded mesh with a single indexed draw call.
func (r *Renderer) DrawTerrain(mvp mgl32.Mat4) {
	if r.indexCount == 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locMVP, 1, false, &mvp[0])
	gl.Uniform1f(r.locSlopeTint, r.config.SlopeTint)

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// End finishes the current frame.
func (r *Renderer) End() {
	// Nothing to do for now - batched draws would be flushed here
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	width, height := r.config.Width, r.config.Height
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	return aspect(r.config.Width, r.config.Height)
}

func aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	for _, buf := range []*uint32{&r.vboPos, &r.vboNormal, &r.vboColor, &r.ebo} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	r.indexCount = 0
}
