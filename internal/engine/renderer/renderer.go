// Package renderer draws the terrain strip with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/heightview/internal/engine/shader"
	"github.com/Faultbox/heightview/internal/engine/terrain"
	"github.com/Faultbox/heightview/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
}

// Renderer owns the terrain program and the GPU copy of the mesh.
type Renderer struct {
	config Config

	program       uint32
	matrixUniform int32
	posAttr       uint32

	vao       uint32
	vbo       uint32
	drawCount int32

	// Outline drawn as GL_LINES while wireframe is on.
	overlayVAO   uint32
	overlayVBO   uint32
	overlayCount int32

	wireframe bool
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(shader.TerrainVertexShader, shader.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create terrain program: %w", err)
	}

	if r.matrixUniform, err = shader.Uniform(r.program, shader.MatrixUniform); err != nil {
		r.Close()
		return nil, err
	}
	if r.posAttr, err = shader.Attrib(r.program, shader.PositionAttrib); err != nil {
		r.Close()
		return nil, err
	}

	logger.Debug("terrain program created", zap.Uint32("program", r.program))
	return r, nil
}

// Upload copies the mesh into a static vertex buffer. Only the first
// mesh.DrawCount() vertices are drawn.
func (r *Renderer) Upload(mesh *terrain.Mesh) error {
	if len(mesh.Vertices) < mesh.DrawCount() {
		return fmt.Errorf("mesh has %d vertices, draw needs %d", len(mesh.Vertices), mesh.DrawCount())
	}
	r.releaseMesh()

	floats := mesh.Floats()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(floats)*4, gl.Ptr(floats), gl.STATIC_DRAW)

	gl.VertexAttribPointer(r.posAttr, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(r.posAttr)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.drawCount = int32(mesh.DrawCount())

	logger.Debug("terrain uploaded",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int32("drawn", r.drawCount),
	)
	return nil
}

// SetOverlay replaces the line overlay shown in wireframe mode.
// lines holds [x, y, z] pairs of segment endpoints.
func (r *Renderer) SetOverlay(lines []float32) {
	r.releaseOverlay()
	if len(lines) == 0 {
		return
	}

	gl.GenVertexArrays(1, &r.overlayVAO)
	gl.BindVertexArray(r.overlayVAO)

	gl.GenBuffers(1, &r.overlayVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(lines)*4, gl.Ptr(lines), gl.STATIC_DRAW)

	gl.VertexAttribPointer(r.posAttr, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(r.posAttr)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.overlayCount = int32(len(lines) / 3)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// SetWireframe toggles line rasterisation.
func (r *Renderer) SetWireframe(on bool) {
	r.wireframe = on
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Wireframe reports whether line rasterisation is on.
func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// Draw clears the frame and draws the terrain strip with the given transform.
func (r *Renderer) Draw(matrix mgl32.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.vao == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.matrixUniform, 1, false, &matrix[0])

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, r.drawCount)

	if r.wireframe && r.overlayCount > 0 {
		gl.BindVertexArray(r.overlayVAO)
		gl.DrawArrays(gl.LINES, 0, r.overlayCount)
	}
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) releaseMesh() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	r.drawCount = 0
}

func (r *Renderer) releaseOverlay() {
	if r.overlayVAO != 0 {
		gl.DeleteVertexArrays(1, &r.overlayVAO)
		r.overlayVAO = 0
	}
	if r.overlayVBO != 0 {
		gl.DeleteBuffers(1, &r.overlayVBO)
		r.overlayVBO = 0
	}
	r.overlayCount = 0
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.releaseMesh()
	r.releaseOverlay()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
