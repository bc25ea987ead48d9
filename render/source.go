package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// shaderMarker introduces a section in a combined shader source file,
// e.g. "#shader vertex".
const shaderMarker = "#shader"

// ShaderSource holds the two stage sources split out of one shader file.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// ParseShader splits a combined shader source into its vertex and
// fragment sections. Each section starts at a "#shader vertex" or
// "#shader fragment" line and runs until the next marker or the end of
// input. Lines before the first marker are dropped.
func ParseShader(r io.Reader) (ShaderSource, error) {
	var (
		vertex, fragment strings.Builder
		current          *strings.Builder
	)

	// Generated shaders can embed very long constant array lines.
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == shaderMarker {
			if len(fields) < 2 {
				return ShaderSource{}, fmt.Errorf("line %v: %v marker without a shader type", lineNum, shaderMarker)
			}
			switch fields[1] {
			case "vertex":
				current = &vertex
			case "fragment":
				current = &fragment
			default:
				return ShaderSource{}, fmt.Errorf("line %v: unknown shader type %q", lineNum, fields[1])
			}
			continue
		}

		if current == nil {
			continue
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return ShaderSource{}, fmt.Errorf("line %v: %w", lineNum+1, err)
	}

	return ShaderSource{Vertex: vertex.String(), Fragment: fragment.String()}, nil
}

// ParseShaderFile reads and splits the shader file at path.
func ParseShaderFile(path string) (ShaderSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ShaderSource{}, err
	}
	defer f.Close()

	src, err := ParseShader(f)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("%v: %w", path, err)
	}
	return src, nil
}
