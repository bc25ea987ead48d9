package render

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementTypeSize(t *testing.T) {
	assert.Equal(t, 4, Float.Size())
	assert.Equal(t, 4, UInt.Size())
	assert.Equal(t, 1, UByte.Size())

	assert.Equal(t, uint32(FLOAT), Float.GL())
	assert.Equal(t, uint32(UNSIGNED_INT), UInt.GL())
	assert.Equal(t, uint32(UNSIGNED_BYTE), UByte.GL())

	assert.Equal(t, "UByte", UByte.String())
	assert.Equal(t, "ElementType(7)", ElementType(7).String())
}

func TestLayoutPush(t *testing.T) {
	var l Layout
	l.PushFloat(3)
	l.PushFloat(2)
	l.PushUByte(4)
	l.PushUInt(1)

	assert.Equal(t, []Element{
		{Type: Float, Count: 3},
		{Type: Float, Count: 2},
		{Type: UByte, Count: 4, Normalized: true},
		{Type: UInt, Count: 1},
	}, l.Elements())
	assert.Equal(t, 12+8+4+4, l.Stride())
	assert.Equal(t, []int{0, 12, 20, 24}, l.Offsets())
}

func TestEmptyLayout(t *testing.T) {
	var l Layout
	assert.Empty(t, l.Elements())
	assert.Zero(t, l.Stride())
	assert.Empty(t, l.Offsets())
}

func TestLayoutElementsIsACopy(t *testing.T) {
	var l Layout
	l.PushFloat(2)
	elems := l.Elements()
	elems[0].Count = 99
	assert.Equal(t, 2, l.Elements()[0].Count)
}

func TestLayoutStrideMatchesElements(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	types := []ElementType{Float, UInt, UByte}

	for n := 0; n < 100; n++ {
		var l Layout
		var want []int
		sum := 0
		numElems := rng.Intn(8)
		for i := 0; i < numElems; i++ {
			typ := types[rng.Intn(len(types))]
			count := 1 + rng.Intn(4)
			l.Push(typ, count)
			want = append(want, sum)
			sum += count * typ.Size()
		}

		require.Equal(t, sum, l.Stride())
		got := l.Offsets()
		require.Len(t, got, len(want))
		for i := range want {
			require.Equal(t, want[i], got[i])
		}
		if len(got) > 0 {
			require.Zero(t, got[0])
		}
	}
}

func TestLayoutPushRejectsBadInput(t *testing.T) {
	var l Layout
	assert.Panics(t, func() { l.Push(ElementType(3), 1) })
	assert.Panics(t, func() { l.Push(ElementType(-1), 1) })
	assert.Panics(t, func() { l.PushFloat(0) })
	assert.Panics(t, func() { l.PushUInt(-2) })
	assert.Empty(t, l.Elements())
	assert.Zero(t, l.Stride())
}
