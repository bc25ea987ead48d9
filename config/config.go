// Package config loads the glquad TOML configuration.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level configuration.
type Config struct {
	Window Window `toml:"window"`
	GL     GL     `toml:"gl"`
	Scene  Scene  `toml:"scene"`
}

// Window configures the window the context is created in.
type Window struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Visible bool   `toml:"visible"`
	VSync   bool   `toml:"vsync"`
}

// GL configures the requested OpenGL context. Debug turns driver errors
// into panics.
type GL struct {
	Major int  `toml:"major"`
	Minor int  `toml:"minor"`
	Debug bool `toml:"debug"`
}

// Scene configures what the demo draws. Texture is optional; a
// checkerboard is drawn when it is empty.
type Scene struct {
	Shader     string     `toml:"shader"`
	Texture    string     `toml:"texture"`
	ClearColor [4]float32 `toml:"clear_color"`
}

// Default returns the configuration used for anything a file leaves out.
func Default() *Config {
	return &Config{
		Window: Window{
			Title:   "glquad",
			Width:   640,
			Height:  480,
			Visible: true,
			VSync:   true,
		},
		GL: GL{
			Major: 4,
			Minor: 1,
		},
		Scene: Scene{
			Shader:     "res/shaders/basic.shader",
			ClearColor: [4]float32{0, 0, 0, 1},
		},
	}
}

// Parse decodes TOML data over the defaults.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the TOML file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return c, nil
}

// Validate reports settings no window or context can be created with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %vx%v", c.Window.Width, c.Window.Height)
	}
	if c.GL.Major < 3 || (c.GL.Major == 3 && c.GL.Minor < 3) {
		return fmt.Errorf("OpenGL %v.%v is too old: need a 3.3+ core profile", c.GL.Major, c.GL.Minor)
	}
	if c.Scene.Shader == "" {
		return fmt.Errorf("no shader file configured")
	}
	return nil
}

// Marshal encodes c as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
