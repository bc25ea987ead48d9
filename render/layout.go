package render

import "fmt"

// ElementType is the scalar type of one vertex attribute component.
type ElementType int

const (
	Float ElementType = iota
	UInt
	UByte
)

var elementTypes = [...]struct {
	name string
	gl   uint32
	size int
}{
	Float: {"Float", FLOAT, 4},
	UInt:  {"UInt", UNSIGNED_INT, 4},
	UByte: {"UByte", UNSIGNED_BYTE, 1},
}

func (t ElementType) valid() bool { return t >= 0 && int(t) < len(elementTypes) }

func (t ElementType) mustValid() {
	if !t.valid() {
		panic(fmt.Sprintf("render: unsupported element type %d", int(t)))
	}
}

// Size returns the size in bytes of one component of type t.
// It panics if t is not a supported type.
func (t ElementType) Size() int {
	t.mustValid()
	return elementTypes[t].size
}

// GL returns the OpenGL enum for t.
func (t ElementType) GL() uint32 {
	t.mustValid()
	return elementTypes[t].gl
}

func (t ElementType) String() string {
	if !t.valid() {
		return fmt.Sprintf("ElementType(%d)", int(t))
	}
	return elementTypes[t].name
}

// Element describes one attribute slot of a vertex record.
type Element struct {
	Type       ElementType
	Count      int
	Normalized bool
}

// Size returns the number of bytes the element occupies in a vertex record.
func (e Element) Size() int { return e.Count * e.Type.Size() }

// Layout is an append-only description of how the bytes of one vertex
// record map onto attribute slots, in declaration order.
type Layout struct {
	elements []Element
	stride   int
}

// Push appends an attribute of count components of type t.
// UByte attributes are normalized to [0,1]; the others are not.
// It panics on an unsupported type or a non-positive count.
func (l *Layout) Push(t ElementType, count int) {
	t.mustValid()
	if count <= 0 {
		panic(fmt.Sprintf("render: invalid component count %d for %v attribute", count, t))
	}
	e := Element{Type: t, Count: count, Normalized: t == UByte}
	l.elements = append(l.elements, e)
	l.stride += e.Size()
}

func (l *Layout) PushFloat(count int) { l.Push(Float, count) }
func (l *Layout) PushUInt(count int) { l.Push(UInt, count) }
func (l *Layout) PushUByte(count int) { l.Push(UByte, count) }

// Elements returns the attributes in push order.
func (l *Layout) Elements() []Element {
	return append([]Element(nil), l.elements...)
}

// Stride returns the byte distance between consecutive vertex records.
func (l *Layout) Stride() int { return l.stride }

// Offsets returns the byte offset of each attribute within a vertex record.
func (l *Layout) Offsets() []int {
	offsets := make([]int, len(l.elements))
	offset := 0
	for i, e := range l.elements {
		offsets[i] = offset
		offset += e.Size()
	}
	return offsets
}
