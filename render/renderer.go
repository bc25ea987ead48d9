package render

import "image"

// Renderer issues the per-frame clear and draw calls.
type Renderer struct {
	dev *Device
}

// NewRenderer returns a Renderer drawing through dev.
func NewRenderer(dev *Device) *Renderer {
	return &Renderer{dev: dev}
}

// SetClearColor sets the color Clear fills the framebuffer with.
func (r *Renderer) SetClearColor(red, green, blue, alpha float32) {
	r.dev.call("ClearColor", func() { r.dev.gl.ClearColor(red, green, blue, alpha) })
}

// Clear clears the color buffer.
func (r *Renderer) Clear() {
	r.dev.call("Clear", func() { r.dev.gl.Clear(COLOR_BUFFER_BIT) })
}

// Viewport sets the framebuffer region drawn into.
func (r *Renderer) Viewport(x, y, width, height int) {
	r.dev.call("Viewport", func() { r.dev.gl.Viewport(int32(x), int32(y), int32(width), int32(height)) })
}

// Draw binds shader, va and ib, in that order, and draws the indices of
// ib as a triangle list.
func (r *Renderer) Draw(va *VertexArray, ib *IndexBuffer, shader *Shader) {
	shader.Bind()
	va.Bind()
	ib.Bind()

	count := int32(ib.Count())
	r.dev.call("DrawElements", func() { r.dev.gl.DrawElements(TRIANGLES, count, UNSIGNED_INT, 0) })
}

// Capture reads back the width x height framebuffer region at the origin,
// top row first.
func (r *Renderer) Capture(width, height int) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return rgba
	}
	r.dev.call("ReadPixels", func() { r.dev.gl.ReadPixels(0, 0, int32(width), int32(height), rgba.Pix) })
	flipRows(rgba)
	return rgba
}
