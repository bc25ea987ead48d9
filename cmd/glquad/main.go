// glquad opens a window and draws one indexed, textured quad per frame.
//
// Usage:
//
//	glquad [-config glquad.toml]
package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/gmlewis/glquad/config"
	"github.com/gmlewis/glquad/render"
	"github.com/gmlewis/glquad/window"
)

var (
	configPath = flag.String("config", "", "TOML configuration file (defaults are used if empty)")
	verbose    = flag.Bool("v", false, "log at debug level")
)

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	win, err := window.Open(cfg.Window, cfg.GL)
	if err != nil {
		return err
	}
	defer win.Close()

	dev := render.NewDevice(render.NewGL(), log.StandardLogger())
	dev.Errors().Debug = cfg.GL.Debug

	q, err := newQuad(dev, cfg.Scene)
	if err != nil {
		return err
	}
	defer q.Delete()

	renderer := render.NewRenderer(dev)
	c := cfg.Scene.ClearColor
	renderer.SetClearColor(c[0], c[1], c[2], c[3])

	frames := 0
	for !win.ShouldClose() {
		width, height := win.FramebufferSize()
		renderer.Viewport(0, 0, width, height)
		renderer.Clear()

		q.Update(width, height)
		renderer.Draw(q.va, q.ib, q.shader)

		win.EndFrame()
		frames++
	}
	log.WithField("frames", frames).Debug("window closed")

	return nil
}
