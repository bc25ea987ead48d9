package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gmlewis/glquad/config"
	"github.com/gmlewis/glquad/render"
)

var quadVertices = []float32{
	//  X, Y, U, V
	-0.5, -0.5, 0.0, 0.0, // ll
	-0.5, 0.5, 0.0, 1.0, // ul
	0.5, -0.5, 1.0, 0.0, // lr
	0.5, 0.5, 1.0, 1.0, // ur
}

var quadIndices = []uint32{
	0, 1, 2,
	1, 2, 3,
}

const textureSlot = 0

// quad owns every GPU resource the demo draws with.
type quad struct {
	vb      *render.VertexBuffer
	ib      *render.IndexBuffer
	va      *render.VertexArray
	shader  *render.Shader
	texture *render.Texture

	tint pulse
}

func newQuad(dev *render.Device, scene config.Scene) (*quad, error) {
	q := &quad{tint: pulse{value: 0, step: 0.05}}
	ok := false
	defer func() {
		if !ok {
			q.Delete()
		}
	}()

	var err error
	if q.va, err = render.NewVertexArray(dev); err != nil {
		return nil, err
	}
	if q.vb, err = render.NewVertexBufferFloat32(dev, quadVertices); err != nil {
		return nil, err
	}
	var layout render.Layout
	layout.PushFloat(2) // position
	layout.PushFloat(2) // texture coordinate
	q.va.AddBuffer(q.vb, &layout)

	if q.ib, err = render.NewIndexBuffer(dev, quadIndices); err != nil {
		return nil, err
	}

	if q.shader, err = render.LoadShader(dev, scene.Shader); err != nil {
		return nil, err
	}

	if scene.Texture != "" {
		q.texture, err = render.LoadTexture(dev, scene.Texture)
	} else {
		q.texture, err = render.NewTexture(dev, checkerboard(64, 8))
	}
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	q.texture.Bind(textureSlot)

	q.shader.Bind()
	if err := q.shader.SetUniform1i("u_Texture", textureSlot); err != nil {
		return nil, err
	}

	q.va.Unbind()
	q.vb.Unbind()
	q.ib.Unbind()
	q.shader.Unbind()
	ok = true
	return q, nil
}

// Update advances the tint animation and sets the per-frame uniforms for
// a width x height framebuffer.
func (q *quad) Update(width, height int) {
	q.shader.Bind()
	// Missing uniforms are logged once by the shader; the quad still draws.
	_ = q.shader.SetUniform4f("u_Color", q.tint.next(), 0.3, 0.8, 1.0)
	_ = q.shader.SetUniformMat4("u_MVP", projection(width, height))
}

// Delete releases whatever was created, in reverse order.
func (q *quad) Delete() {
	if q.texture != nil {
		q.texture.Delete()
	}
	if q.shader != nil {
		q.shader.Delete()
	}
	if q.ib != nil {
		q.ib.Delete()
	}
	if q.vb != nil {
		q.vb.Delete()
	}
	if q.va != nil {
		q.va.Delete()
	}
}

// projection keeps the quad square on a width x height framebuffer.
func projection(width, height int) mgl32.Mat4 {
	if width <= 0 || height <= 0 {
		return mgl32.Ident4()
	}
	aspect := float32(width) / float32(height)
	if aspect >= 1 {
		return mgl32.Ortho(-aspect, aspect, -1, 1, -1, 1)
	}
	return mgl32.Ortho(-1, 1, -1/aspect, 1/aspect, -1, 1)
}

// pulse bounces a value between 0 and 1 by a fixed step per frame.
type pulse struct {
	value float32
	step  float32
}

func (p *pulse) next() float32 {
	v := p.value
	if p.value > 1 {
		p.step = -abs(p.step)
	} else if p.value < 0 {
		p.step = abs(p.step)
	}
	p.value += p.step
	return v
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// checkerboard returns a size x size image of cells x cells squares.
func checkerboard(size, cells int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell == 0 {
		cell = 1
	}
	light := color.RGBA{230, 230, 230, 255}
	dark := color.RGBA{40, 40, 40, 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}
