package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/pborman/getopt"

	"github.com/QuestScreen/simplegl/config"
	"github.com/QuestScreen/simplegl/display"
	"github.com/QuestScreen/simplegl/draw"
	"github.com/QuestScreen/simplegl/gl21"
	"github.com/QuestScreen/simplegl/glfwhost"
	"github.com/QuestScreen/simplegl/scenes"
	"github.com/QuestScreen/simplegl/sdlhost"
)

func init() {
	runtime.LockOSThread()
}

// host is a display.Host that can be torn down.
type host interface {
	display.Host
	Destroy()
}

type recordHost struct {
	*display.ScriptHost
}

func (recordHost) Destroy() {}

func openHost(cfg config.Config, frames int) (host, draw.Backend, error) {
	switch cfg.Backend {
	case config.SDL:
		h, err := sdlhost.New(sdlhost.Config{Title: cfg.Title, Width: cfg.Width,
			Height: cfg.Height, Fullscreen: cfg.Fullscreen,
			SwapInterval: cfg.SwapInterval})
		if err != nil {
			return nil, nil, err
		}
		b, err := gl21.New()
		if err != nil {
			h.Destroy()
			return nil, nil, &display.InitError{Description: "SDL backend", Inner: err}
		}
		return h, b, nil
	case config.GLFW:
		h, err := glfwhost.New(glfwhost.Config{Title: cfg.Title,
			Width: int(cfg.Width), Height: int(cfg.Height),
			Fullscreen: cfg.Fullscreen, SwapInterval: cfg.SwapInterval})
		if err != nil {
			return nil, nil, err
		}
		b, err := gl21.New()
		if err != nil {
			h.Destroy()
			return nil, nil, &display.InitError{Description: "GLFW backend", Inner: err}
		}
		return h, b, nil
	case config.Record:
		return recordHost{display.NewScriptHost(cfg.Width, cfg.Height,
			display.Frames(frames)...)}, &draw.Recorder{}, nil
	}
	return nil, nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
}

func main() {
	configPath := getopt.StringLong("config", 'c', "", "path to the config file")
	backend := getopt.StringLong("backend", 'b', "", "sdl, glfw or record")
	scene := getopt.StringLong("scene", 's', "", "scene to show")
	title := getopt.StringLong("title", 't', "", "title of the window")
	fullscreenFlag := getopt.BoolLong("fullscreen", 'f', "start in fullscreen")
	width := getopt.Int32Long("width", 'w', 0, "width of the window")
	height := getopt.Int32Long("height", 'h', 0, "height of the window")
	frames := getopt.IntLong("frames", 'n', 1, "frames to draw with the record backend")
	list := getopt.BoolLong("list", 'l', "list available scenes")
	getopt.Parse()

	if *list {
		for _, name := range scenes.Names() {
			fmt.Println(name)
		}
		return
	}

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalln(err)
	}
	if err := cfg.Apply(config.Overrides{Title: *title, Width: *width,
		Height: *height, Fullscreen: *fullscreenFlag, Backend: *backend,
		Scene: *scene}); err != nil {
		log.Fatalln(err)
	}
	painter, err := scenes.Lookup(cfg.Scene)
	if err != nil {
		log.Fatalln(err)
	}

	if *frames < 0 {
		log.Fatalln("invalid frame count:", *frames)
	}
	h, b, err := openHost(cfg, *frames)
	if err != nil {
		log.Fatalln(err)
	}
	d, err := display.New(h, b, painter, display.Options{
		Background: cfg.Background, LineWidth: cfg.LineWidth, LogFPS: cfg.LogFPS})
	if err != nil {
		h.Destroy()
		log.Fatalln(err)
	}

	d.RenderLoop()
	h.Destroy()

	if rec, ok := b.(*draw.Recorder); ok {
		log.Printf("recorded %d frames, %d shapes, %d commands\n", d.Frames(),
			rec.Count(draw.OpEmit), len(rec.Commands))
	}
}
