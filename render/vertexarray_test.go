package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexArrayAddBuffer(t *testing.T) {
	dev, f, _ := newTestDevice(t)
	va, err := NewVertexArray(dev)
	require.NoError(t, err)
	vb, err := NewVertexBuffer(dev, make([]byte, 3*24))
	require.NoError(t, err)

	var l Layout
	l.PushFloat(3)
	l.PushFloat(2)
	l.PushUByte(4)

	f.reset()
	va.AddBuffer(vb, &l)

	assert.Equal(t, []any{va.ID()}, f.args("BindVertexArray")[0])
	assert.Equal(t, []any{uint32(ARRAY_BUFFER), vb.ID()}, f.args("BindBuffer")[0])
	assert.Equal(t, [][]any{{uint32(0)}, {uint32(1)}, {uint32(2)}}, f.args("EnableVertexAttribArray"))
	assert.Equal(t, [][]any{
		{uint32(0), int32(3), uint32(FLOAT), false, int32(24), uintptr(0)},
		{uint32(1), int32(2), uint32(FLOAT), false, int32(24), uintptr(12)},
		{uint32(2), int32(4), uint32(UNSIGNED_BYTE), true, int32(24), uintptr(20)},
	}, f.args("VertexAttribPointer"))

	names := f.names()
	assert.Equal(t, "BindVertexArray", names[0], "array bound before the buffer")
	assert.Equal(t, "BindBuffer", names[1])
}

func TestVertexArrayDelete(t *testing.T) {
	dev, f, _ := newTestDevice(t)
	va, err := NewVertexArray(dev)
	require.NoError(t, err)

	va.Bind()
	va.Unbind()
	va.Delete()
	va.Delete()

	assert.Equal(t, [][]any{{uint32(1)}, {uint32(0)}}, f.args("BindVertexArray"))
	assert.Equal(t, [][]any{{uint32(1)}}, f.args("DeleteVertexArray"))
}

func TestVertexArrayZeroHandle(t *testing.T) {
	dev, f, _ := newTestDevice(t)
	f.zeroHandles = true

	_, err := NewVertexArray(dev)
	assert.ErrorIs(t, err, ErrResourceCreate)
}

func TestVertexArrayUsesLayoutOffsets(t *testing.T) {
	layouts := map[string]func(l *Layout){
		"single": func(l *Layout) { l.PushFloat(4) },
		"mixed": func(l *Layout) {
			l.PushUByte(4)
			l.PushFloat(3)
			l.PushUInt(1)
			l.PushUByte(2)
		},
	}

	for name, push := range layouts {
		t.Run(name, func(t *testing.T) {
			dev, f, _ := newTestDevice(t)
			va, err := NewVertexArray(dev)
			require.NoError(t, err)
			vb, err := NewVertexBuffer(dev, make([]byte, 64))
			require.NoError(t, err)

			var l Layout
			push(&l)
			va.AddBuffer(vb, &l)

			calls := f.args("VertexAttribPointer")
			require.Len(t, calls, len(l.Elements()))
			for i, offset := range l.Offsets() {
				assert.Equal(t, uintptr(offset), calls[i][5], "attribute %v", i)
				assert.Equal(t, int32(l.Stride()), calls[i][4], "attribute %v", i)
			}
		})
	}
}
