package render

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

type fakeCall struct {
	name string
	args []any
}

// fakeDriver records every driver call and hands out sequential handles.
type fakeDriver struct {
	calls   []fakeCall
	pending []uint32
	next    uint32

	// raise queues an error code right after the named call runs.
	raise map[string]uint32
	// zeroHandles makes every allocation return 0.
	zeroHandles bool

	shaderTypes  map[uint32]uint32
	failCompile  map[uint32]string // by shader type: info log
	failLink     string
	failValidate bool
	uniforms     map[string]int32
	pixels       []byte
}

var _ Driver = &fakeDriver{}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		raise:       map[string]uint32{},
		shaderTypes: map[uint32]uint32{},
		failCompile: map[uint32]string{},
		uniforms:    map[string]int32{},
	}
}

func newTestDevice(t *testing.T) (*Device, *fakeDriver, *test.Hook) {
	t.Helper()
	f := newFakeDriver()
	logger, hook := test.NewNullLogger()
	return NewDevice(f, logger), f, hook
}

func (f *fakeDriver) record(name string, args ...any) {
	f.calls = append(f.calls, fakeCall{name: name, args: args})
	if code, ok := f.raise[name]; ok {
		f.pending = append(f.pending, code)
		delete(f.raise, name)
	}
}

func (f *fakeDriver) alloc() uint32 {
	if f.zeroHandles {
		return 0
	}
	f.next++
	return f.next
}

// names returns the recorded call names, in order.
func (f *fakeDriver) names() []string {
	var names []string
	for _, c := range f.calls {
		names = append(names, c.name)
	}
	return names
}

// args returns the arguments of every call to name, in order.
func (f *fakeDriver) args(name string) [][]any {
	var out [][]any
	for _, c := range f.calls {
		if c.name == name {
			out = append(out, c.args)
		}
	}
	return out
}

func (f *fakeDriver) count(name string) int { return len(f.args(name)) }

func (f *fakeDriver) reset() { f.calls = nil }

func (f *fakeDriver) GetError() uint32 {
	if len(f.pending) == 0 {
		return NO_ERROR
	}
	code := f.pending[0]
	f.pending = f.pending[1:]
	return code
}

func (f *fakeDriver) GenBuffer() uint32 {
	id := f.alloc()
	f.record("GenBuffer", id)
	return id
}

func (f *fakeDriver) BindBuffer(target, buffer uint32) { f.record("BindBuffer", target, buffer) }

func (f *fakeDriver) BufferData(target uint32, data []byte, usage uint32) {
	f.record("BufferData", target, append([]byte(nil), data...), usage)
}

func (f *fakeDriver) DeleteBuffer(buffer uint32) { f.record("DeleteBuffer", buffer) }

func (f *fakeDriver) GenVertexArray() uint32 {
	id := f.alloc()
	f.record("GenVertexArray", id)
	return id
}

func (f *fakeDriver) BindVertexArray(array uint32) { f.record("BindVertexArray", array) }
func (f *fakeDriver) DeleteVertexArray(array uint32) { f.record("DeleteVertexArray", array) }
func (f *fakeDriver) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray", index)
}

func (f *fakeDriver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	f.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (f *fakeDriver) CreateShader(xtype uint32) uint32 {
	id := f.alloc()
	if id != 0 {
		f.shaderTypes[id] = xtype
	}
	f.record("CreateShader", xtype)
	return id
}

func (f *fakeDriver) ShaderSource(shader uint32, source string) {
	f.record("ShaderSource", shader, source)
}

func (f *fakeDriver) CompileShader(shader uint32) { f.record("CompileShader", shader) }

func (f *fakeDriver) GetShaderi(shader, pname uint32) int32 {
	if pname == COMPILE_STATUS {
		if _, fail := f.failCompile[f.shaderTypes[shader]]; fail {
			return FALSE
		}
	}
	return TRUE
}

func (f *fakeDriver) GetShaderInfoLog(shader uint32) string {
	return f.failCompile[f.shaderTypes[shader]]
}

func (f *fakeDriver) DeleteShader(shader uint32) { f.record("DeleteShader", shader) }

func (f *fakeDriver) CreateProgram() uint32 {
	id := f.alloc()
	f.record("CreateProgram", id)
	return id
}

func (f *fakeDriver) AttachShader(program, shader uint32) {
	f.record("AttachShader", program, shader)
}

func (f *fakeDriver) LinkProgram(program uint32) { f.record("LinkProgram", program) }
func (f *fakeDriver) ValidateProgram(program uint32) { f.record("ValidateProgram", program) }

func (f *fakeDriver) GetProgrami(program, pname uint32) int32 {
	switch {
	case pname == LINK_STATUS && f.failLink != "":
		return FALSE
	case pname == VALIDATE_STATUS && f.failValidate:
		return FALSE
	}
	return TRUE
}

func (f *fakeDriver) GetProgramInfoLog(program uint32) string { return f.failLink }

func (f *fakeDriver) UseProgram(program uint32) { f.record("UseProgram", program) }
func (f *fakeDriver) DeleteProgram(program uint32) { f.record("DeleteProgram", program) }

func (f *fakeDriver) GetUniformLocation(program uint32, name string) int32 {
	f.record("GetUniformLocation", program, name)
	if loc, ok := f.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeDriver) Uniform1i(location, v int32) { f.record("Uniform1i", location, v) }
func (f *fakeDriver) Uniform1f(location int32, v float32) { f.record("Uniform1f", location, v) }

func (f *fakeDriver) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	f.record("Uniform4f", location, v0, v1, v2, v3)
}

func (f *fakeDriver) UniformMatrix4fv(location int32, m *[16]float32) {
	f.record("UniformMatrix4fv", location, *m)
}

func (f *fakeDriver) GenTexture() uint32 {
	id := f.alloc()
	f.record("GenTexture", id)
	return id
}

func (f *fakeDriver) ActiveTexture(unit uint32) { f.record("ActiveTexture", unit) }
func (f *fakeDriver) BindTexture(target, texture uint32) { f.record("BindTexture", target, texture) }

func (f *fakeDriver) TexParameteri(target, pname uint32, param int32) {
	f.record("TexParameteri", target, pname, param)
}

func (f *fakeDriver) TexImage2D(target uint32, width, height int32, pixels []byte) {
	f.record("TexImage2D", target, width, height, append([]byte(nil), pixels...))
}

func (f *fakeDriver) DeleteTexture(texture uint32) { f.record("DeleteTexture", texture) }

func (f *fakeDriver) ClearColor(r, g, b, a float32) { f.record("ClearColor", r, g, b, a) }
func (f *fakeDriver) Clear(mask uint32) { f.record("Clear", mask) }
func (f *fakeDriver) Viewport(x, y, width, height int32) { f.record("Viewport", x, y, width, height) }

func (f *fakeDriver) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	f.record("DrawElements", mode, count, xtype, offset)
}

func (f *fakeDriver) ReadPixels(x, y, width, height int32, pixels []byte) {
	f.record("ReadPixels", x, y, width, height)
	copy(pixels, f.pixels)
}
