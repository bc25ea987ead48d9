package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ShaderState is the construction stage a Shader has reached.
type ShaderState int

const (
	ShaderUnloaded ShaderState = iota
	ShaderParsed
	ShaderCompiled
	ShaderLinked
	ShaderReady
)

func (s ShaderState) String() string {
	switch s {
	case ShaderUnloaded:
		return "unloaded"
	case ShaderParsed:
		return "parsed"
	case ShaderCompiled:
		return "compiled"
	case ShaderLinked:
		return "linked"
	case ShaderReady:
		return "ready"
	}
	return fmt.Sprintf("ShaderState(%d)", int(s))
}

// Shader owns one linked GPU program and caches its uniform locations.
type Shader struct {
	dev      *Device
	id       uint32
	state    ShaderState
	uniforms map[string]int32
}

// LoadShader parses the combined shader file at path and builds a
// program from it.
func LoadShader(dev *Device, path string) (*Shader, error) {
	src, err := ParseShaderFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadShader: %w", err)
	}
	s, err := NewShader(dev, src)
	if err != nil {
		return nil, fmt.Errorf("LoadShader(%v): %w", path, err)
	}
	return s, nil
}

// NewShader compiles both stages of src and links them into a program.
// If either stage fails to compile no program is linked, and everything
// allocated so far is released.
func NewShader(dev *Device, src ShaderSource) (*Shader, error) {
	s := &Shader{dev: dev, uniforms: map[string]int32{}}

	if src.Vertex == "" {
		return nil, fmt.Errorf("%w: vertex", ErrMissingStage)
	}
	if src.Fragment == "" {
		return nil, fmt.Errorf("%w: fragment", ErrMissingStage)
	}
	s.state = ShaderParsed

	// Stage objects are released once linked or on any failure,
	// including a Debug mode panic.
	vs, err := s.compile(VERTEX_SHADER, src.Vertex)
	if err != nil {
		return nil, err
	}
	defer s.deleteShader(vs)
	fs, err := s.compile(FRAGMENT_SHADER, src.Fragment)
	if err != nil {
		return nil, err
	}
	defer s.deleteShader(fs)
	s.state = ShaderCompiled

	if err := s.link(vs, fs); err != nil {
		return nil, err
	}
	return s, nil
}

func stageName(xtype uint32) string {
	if xtype == VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

func (s *Shader) compile(xtype uint32, source string) (uint32, error) {
	gl := s.dev.gl
	stage := stageName(xtype)

	var id uint32
	ok := s.dev.call("CreateShader", func() { id = gl.CreateShader(xtype) })
	if !ok || id == 0 {
		if id != 0 {
			s.deleteShader(id)
		}
		return 0, fmt.Errorf("%w: %v shader", ErrResourceCreate, stage)
	}

	s.dev.call("ShaderSource", func() { gl.ShaderSource(id, source) })
	s.dev.call("CompileShader", func() { gl.CompileShader(id) })

	var status int32
	s.dev.call("GetShaderiv(COMPILE_STATUS)", func() { status = gl.GetShaderi(id, COMPILE_STATUS) })
	if status == FALSE {
		infoLog := gl.GetShaderInfoLog(id)
		s.dev.log.WithField("stage", stage).Errorf("shader compilation error: %v", infoLog)
		s.deleteShader(id)
		return 0, fmt.Errorf("%w: %v shader: %v", ErrCompile, stage, infoLog)
	}

	return id, nil
}

func (s *Shader) link(vs, fs uint32) error {
	gl := s.dev.gl

	var id uint32
	ok := s.dev.call("CreateProgram", func() { id = gl.CreateProgram() })
	if !ok || id == 0 {
		if id != 0 {
			gl.DeleteProgram(id)
		}
		return fmt.Errorf("%w: program", ErrResourceCreate)
	}
	ready := false
	defer func() {
		if !ready {
			s.id = 0
			gl.DeleteProgram(id)
		}
	}()

	s.dev.call("AttachShader(vertex)", func() { gl.AttachShader(id, vs) })
	s.dev.call("AttachShader(fragment)", func() { gl.AttachShader(id, fs) })
	s.dev.call("LinkProgram", func() { gl.LinkProgram(id) })

	var status int32
	s.dev.call("GetProgramiv(LINK_STATUS)", func() { status = gl.GetProgrami(id, LINK_STATUS) })
	if status == FALSE {
		infoLog := gl.GetProgramInfoLog(id)
		s.dev.log.Errorf("program link error: %v", infoLog)
		return fmt.Errorf("%w: %v", ErrLink, infoLog)
	}
	s.id = id
	s.state = ShaderLinked

	// Core profiles may fail validation until a vertex array is bound,
	// so a failure here is only reported.
	s.dev.call("ValidateProgram", func() { gl.ValidateProgram(id) })
	s.dev.call("GetProgramiv(VALIDATE_STATUS)", func() { status = gl.GetProgrami(id, VALIDATE_STATUS) })
	if status == FALSE {
		s.dev.log.Warnf("program validation: %v", gl.GetProgramInfoLog(id))
	}

	s.state = ShaderReady
	ready = true
	return nil
}

func (s *Shader) deleteShader(id uint32) {
	s.dev.call("DeleteShader", func() { s.dev.gl.DeleteShader(id) })
}

// ID returns the program handle, or 0 once the shader has been deleted.
func (s *Shader) ID() uint32 { return s.id }

// State returns the construction stage the shader reached.
func (s *Shader) State() ShaderState { return s.state }

// Bind makes s the current program.
func (s *Shader) Bind() {
	s.dev.call("UseProgram", func() { s.dev.gl.UseProgram(s.id) })
}

// Unbind clears the current program.
func (s *Shader) Unbind() {
	s.dev.call("UseProgram(0)", func() { s.dev.gl.UseProgram(0) })
}

// Delete releases the program. Calling it again is a no-op.
func (s *Shader) Delete() {
	if s.id == 0 {
		return
	}
	id := s.id
	s.id = 0
	s.state = ShaderUnloaded
	s.dev.call("DeleteProgram", func() { s.dev.gl.DeleteProgram(id) })
}

// UniformLocation returns the location of the named uniform, or -1 if
// the program has no such active uniform. The driver is queried at most
// once per name.
func (s *Shader) UniformLocation(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}

	var loc int32
	s.dev.call("GetUniformLocation", func() { loc = s.dev.gl.GetUniformLocation(s.id, name) })
	if loc == -1 {
		s.dev.log.WithField("uniform", name).Warn("uniform doesn't exist")
	}
	s.uniforms[name] = loc
	return loc
}

// setUniform issues set even for a missing uniform, where the driver
// ignores it.
func (s *Shader) setUniform(name, description string, set func(loc int32)) error {
	loc := s.UniformLocation(name)
	s.dev.call(description, func() { set(loc) })
	if loc == -1 {
		return fmt.Errorf("%w: %q", ErrUniformNotFound, name)
	}
	return nil
}

func (s *Shader) SetUniform1i(name string, v int32) error {
	return s.setUniform(name, "Uniform1i", func(loc int32) { s.dev.gl.Uniform1i(loc, v) })
}

func (s *Shader) SetUniform1f(name string, v float32) error {
	return s.setUniform(name, "Uniform1f", func(loc int32) { s.dev.gl.Uniform1f(loc, v) })
}

// SetUniform4f sets a vec4 uniform, typically an RGBA color.
func (s *Shader) SetUniform4f(name string, v0, v1, v2, v3 float32) error {
	return s.setUniform(name, "Uniform4f", func(loc int32) { s.dev.gl.Uniform4f(loc, v0, v1, v2, v3) })
}

// SetUniformMat4 sets a column-major mat4 uniform.
func (s *Shader) SetUniformMat4(name string, m mgl32.Mat4) error {
	return s.setUniform(name, "UniformMatrix4fv", func(loc int32) {
		v := [16]float32(m)
		s.dev.gl.UniformMatrix4fv(loc, &v)
	})
}
