// Package render wraps the lifetimes of OpenGL resources (buffers, vertex
// arrays, shader programs and textures) in small owning types, and binds
// vertex layout metadata to raw vertex memory.
//
// All wrappers are created against a Device, which carries the Driver that
// talks to the graphics API and the ErrorReporter that attributes driver
// errors to the call that raised them. Everything here must run on the
// thread that owns the GL context.
package render

// Driver is the graphics API surface used by this package.
// GL implements it on top of go-gl; tests substitute a fake.
type Driver interface {
	GetError() uint32

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []byte, usage uint32)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderi(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgrami(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location, v int32)
	Uniform1f(location int32, v float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	UniformMatrix4fv(location int32, m *[16]float32)

	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target, texture uint32)
	TexParameteri(target, pname uint32, param int32)
	TexImage2D(target uint32, width, height int32, pixels []byte)
	DeleteTexture(texture uint32)

	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
	ReadPixels(x, y, width, height int32, pixels []byte)
}

// OpenGL enum values used by the wrappers.
const (
	NO_ERROR = 0x0

	FALSE = 0
	TRUE  = 1

	TRIANGLES = 0x4

	UNSIGNED_BYTE = 0x1401
	UNSIGNED_INT  = 0x1405
	FLOAT         = 0x1406

	COLOR_BUFFER_BIT = 0x4000
	DEPTH_BUFFER_BIT = 0x100

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STATIC_DRAW          = 0x88e4

	FRAGMENT_SHADER = 0x8b30
	VERTEX_SHADER   = 0x8b31
	COMPILE_STATUS  = 0x8b81
	LINK_STATUS     = 0x8b82
	VALIDATE_STATUS = 0x8b83
	INFO_LOG_LENGTH = 0x8b84

	TEXTURE_2D         = 0xde1
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	LINEAR             = 0x2601
	CLAMP_TO_EDGE      = 0x812f
)
