// Package window creates a GLFW window with a current OpenGL core context.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"

	"github.com/gmlewis/glquad/config"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Window is a GLFW window owning the process's OpenGL context.
type Window struct {
	w *glfw.Window
}

// Open initializes GLFW, creates the window described by cfg, makes its
// context current and loads the OpenGL function pointers.
func Open(win config.Window, ctx config.GL) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, ctx.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, ctx.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if !win.Visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	w, err := glfw.CreateWindow(win.Width, win.Height, win.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("CreateWindow(%v,%v): %v", win.Width, win.Height, err)
	}
	w.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl.Init: %v", err)
	}

	if win.VSync {
		glfw.SwapInterval(1)
	}

	log.WithField("version", gl.GoStr(gl.GetString(gl.VERSION))).Info("OpenGL context ready")
	return &Window{w: w}, nil
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.w == nil || w.w.ShouldClose()
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.w.GetFramebufferSize()
}

// EndFrame presents the frame and processes pending input events.
func (w *Window) EndFrame() {
	w.w.SwapBuffers()
	glfw.PollEvents()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	if w.w != nil {
		w.w.Destroy()
		glfw.Terminate()
		w.w = nil
	}
}
