package render

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GL is the Driver backed by the current OpenGL 4.1 core context.
// gl.Init must have been called on the context's thread before use.
type GL struct{}

var _ Driver = GL{}

// NewGL returns the OpenGL driver.
func NewGL() GL { return GL{} }

func (GL) GetError() uint32 { return gl.GetError() }

func (GL) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (GL) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (GL) BufferData(target uint32, data []byte, usage uint32) {
	gl.BufferData(target, len(data), gl.Ptr(data), usage)
}

func (GL) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (GL) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (GL) BindVertexArray(array uint32) { gl.BindVertexArray(array) }
func (GL) DeleteVertexArray(array uint32) { gl.DeleteVertexArrays(1, &array) }
func (GL) EnableVertexAttribArray(i uint32) { gl.EnableVertexAttribArray(i) }

func (GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (GL) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (GL) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (GL) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (GL) GetShaderi(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (GL) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (GL) DeleteShader(shader uint32) { gl.DeleteShader(shader) }
func (GL) CreateProgram() uint32 { return gl.CreateProgram() }
func (GL) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (GL) LinkProgram(program uint32) { gl.LinkProgram(program) }
func (GL) ValidateProgram(program uint32) { gl.ValidateProgram(program) }

func (GL) GetProgrami(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (GL) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (GL) UseProgram(program uint32) { gl.UseProgram(program) }
func (GL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (GL) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (GL) Uniform1i(location, v int32) { gl.Uniform1i(location, v) }
func (GL) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (GL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (GL) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (GL) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (GL) ActiveTexture(unit uint32) { gl.ActiveTexture(gl.TEXTURE0 + unit) }
func (GL) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }
func (GL) TexParameteri(target, pname uint32, param int32) { gl.TexParameteri(target, pname, param) }

func (GL) TexImage2D(target uint32, width, height int32, pixels []byte) {
	gl.TexImage2D(target, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (GL) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

func (GL) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (GL) Clear(mask uint32) { gl.Clear(mask) }
func (GL) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (GL) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(int(offset)))
}

func (GL) ReadPixels(x, y, width, height int32, pixels []byte) {
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
}
