package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// VertexBuffer owns one GPU array buffer holding raw vertex records.
type VertexBuffer struct {
	dev  *Device
	id   uint32
	size int
}

// NewVertexBuffer allocates a vertex buffer and uploads data to it once,
// for static (upload-once, draw-many) use.
func NewVertexBuffer(dev *Device, data []byte) (*VertexBuffer, error) {
	id, err := dev.newBuffer(ARRAY_BUFFER, data)
	if err != nil {
		return nil, fmt.Errorf("NewVertexBuffer: %w", err)
	}
	return &VertexBuffer{dev: dev, id: id, size: len(data)}, nil
}

// NewVertexBufferFloat32 is NewVertexBuffer for tightly packed float32 data.
func NewVertexBufferFloat32(dev *Device, vertices []float32) (*VertexBuffer, error) {
	return NewVertexBuffer(dev, wgpu.ToBytes(vertices))
}

// ID returns the GPU handle, or 0 once the buffer has been deleted.
func (b *VertexBuffer) ID() uint32 { return b.id }

// Size returns the uploaded size in bytes.
func (b *VertexBuffer) Size() int { return b.size }

// Bind makes b the current array buffer.
func (b *VertexBuffer) Bind() {
	b.dev.call("BindBuffer(ARRAY_BUFFER)", func() { b.dev.gl.BindBuffer(ARRAY_BUFFER, b.id) })
}

// Unbind clears the current array buffer.
func (b *VertexBuffer) Unbind() {
	b.dev.call("BindBuffer(ARRAY_BUFFER, 0)", func() { b.dev.gl.BindBuffer(ARRAY_BUFFER, 0) })
}

// Delete releases the GPU buffer. Calling it again is a no-op.
func (b *VertexBuffer) Delete() {
	if b.id == 0 {
		return
	}
	id := b.id
	b.id = 0
	b.dev.call("DeleteBuffers", func() { b.dev.gl.DeleteBuffer(id) })
}

// IndexBuffer owns one GPU element buffer of uint32 indices.
type IndexBuffer struct {
	dev   *Device
	id    uint32
	count int
}

// NewIndexBuffer allocates an index buffer and uploads indices to it once.
func NewIndexBuffer(dev *Device, indices []uint32) (*IndexBuffer, error) {
	id, err := dev.newBuffer(ELEMENT_ARRAY_BUFFER, wgpu.ToBytes(indices))
	if err != nil {
		return nil, fmt.Errorf("NewIndexBuffer: %w", err)
	}
	return &IndexBuffer{dev: dev, id: id, count: len(indices)}, nil
}

// ID returns the GPU handle, or 0 once the buffer has been deleted.
func (b *IndexBuffer) ID() uint32 { return b.id }

// Count returns the number of indices.
func (b *IndexBuffer) Count() int { return b.count }

func (b *IndexBuffer) Bind() {
	b.dev.call("BindBuffer(ELEMENT_ARRAY_BUFFER)", func() { b.dev.gl.BindBuffer(ELEMENT_ARRAY_BUFFER, b.id) })
}

func (b *IndexBuffer) Unbind() {
	b.dev.call("BindBuffer(ELEMENT_ARRAY_BUFFER, 0)", func() { b.dev.gl.BindBuffer(ELEMENT_ARRAY_BUFFER, 0) })
}

// Delete releases the GPU buffer. Calling it again is a no-op.
func (b *IndexBuffer) Delete() {
	if b.id == 0 {
		return
	}
	id := b.id
	b.id = 0
	b.dev.call("DeleteBuffers", func() { b.dev.gl.DeleteBuffer(id) })
}

// newBuffer allocates a buffer on target and fills it with data.
// On failure nothing is left allocated.
func (dev *Device) newBuffer(target uint32, data []byte) (uint32, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}

	var id uint32
	ok := dev.call("GenBuffers", func() { id = dev.gl.GenBuffer() })
	if !ok || id == 0 {
		if id != 0 {
			dev.gl.DeleteBuffer(id)
		}
		return 0, fmt.Errorf("%w: GenBuffers", ErrResourceCreate)
	}

	// Released on any failure, including a Debug mode panic.
	uploaded := false
	defer func() {
		if !uploaded {
			dev.gl.DeleteBuffer(id)
		}
	}()

	if !dev.call("BindBuffer", func() { dev.gl.BindBuffer(target, id) }) ||
		!dev.call("BufferData", func() { dev.gl.BufferData(target, data, STATIC_DRAW) }) {
		return 0, fmt.Errorf("%w: uploading %v bytes", ErrResourceCreate, len(data))
	}

	uploaded = true
	return id, nil
}
