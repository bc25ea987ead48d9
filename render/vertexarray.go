package render

import "fmt"

// VertexArray owns one GPU vertex array object. It keeps no reference to
// the buffers added to it: the caller must keep them alive for as long as
// the array is drawn.
type VertexArray struct {
	dev *Device
	id  uint32
}

// NewVertexArray allocates a vertex array.
func NewVertexArray(dev *Device) (*VertexArray, error) {
	var id uint32
	ok := dev.call("GenVertexArrays", func() { id = dev.gl.GenVertexArray() })
	if !ok || id == 0 {
		if id != 0 {
			dev.gl.DeleteVertexArray(id)
		}
		return nil, fmt.Errorf("NewVertexArray: %w", ErrResourceCreate)
	}
	return &VertexArray{dev: dev, id: id}, nil
}

// ID returns the GPU handle, or 0 once the array has been deleted.
func (va *VertexArray) ID() uint32 { return va.id }

// AddBuffer binds vb to the array and registers attribute slot i for
// the i-th element of layout.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout *Layout) {
	va.Bind()
	vb.Bind()

	gl := va.dev.gl
	stride := int32(layout.Stride())
	offsets := layout.Offsets()
	for i, e := range layout.elements {
		index, offset := uint32(i), uintptr(offsets[i])
		va.dev.call("EnableVertexAttribArray", func() { gl.EnableVertexAttribArray(index) })
		va.dev.call("VertexAttribPointer", func() {
			gl.VertexAttribPointer(index, int32(e.Count), e.Type.GL(), e.Normalized, stride, offset)
		})
	}
}

func (va *VertexArray) Bind() {
	va.dev.call("BindVertexArray", func() { va.dev.gl.BindVertexArray(va.id) })
}

func (va *VertexArray) Unbind() {
	va.dev.call("BindVertexArray(0)", func() { va.dev.gl.BindVertexArray(0) })
}

// Delete releases the vertex array. Calling it again is a no-op.
func (va *VertexArray) Delete() {
	if va.id == 0 {
		return
	}
	id := va.id
	va.id = 0
	va.dev.call("DeleteVertexArrays", func() { va.dev.gl.DeleteVertexArray(id) })
}
