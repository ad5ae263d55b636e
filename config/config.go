/*
Package config implements loading and writing the config.yaml file of the
demo application.
*/
package config

import (
	"bytes"
	"fmt"
	"image/color"
	"io/ioutil"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Backend names a windowing backend.
type Backend string

const (
	// SDL uses SDL2 for windowing and input.
	SDL Backend = "sdl"
	// GLFW uses GLFW 3.3 for windowing and input.
	GLFW Backend = "glfw"
	// Record opens no window and records a fixed number of frames.
	Record Backend = "record"
)

func (b Backend) valid() bool {
	return b == SDL || b == GLFW || b == Record
}

// Config is the application configuration.
type Config struct {
	Title         string
	Width, Height int32
	Fullscreen    bool
	Backend       Backend
	Background    color.RGBA
	LineWidth     float32
	SwapInterval  int
	Scene         string
	LogFPS        bool
}

// the YAML representation of Config.
type tmpConfig struct {
	Title         string
	Width, Height int32
	Fullscreen    bool
	Backend       string
	Background    string
	LineWidth     float32 `yaml:"lineWidth"`
	SwapInterval  int     `yaml:"swapInterval"`
	Scene         string
	LogFPS        bool `yaml:"logFPS"`
}

// keys of tmpConfig. Node.Decode does not inherit the decoder's KnownFields
// setting, so unknown keys are rejected explicitly.
var knownKeys = map[string]bool{
	"title": true, "width": true, "height": true, "fullscreen": true,
	"backend": true, "background": true, "lineWidth": true,
	"swapInterval": true, "scene": true, "logFPS": true,
}

func checkKeys(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		if !knownKeys[key.Value] {
			return fmt.Errorf("line %d: unknown field %q", key.Line, key.Value)
		}
	}
	return nil
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Title: "simplegl", Width: 400, Height: 400, Backend: SDL,
		Background: colornames.White, LineWidth: 1, SwapInterval: 1,
		Scene: "shapes",
	}
}

// MarshalYAML writes the background as color name if it has one.
func (c Config) MarshalYAML() (interface{}, error) {
	return tmpConfig{
		Title: c.Title, Width: c.Width, Height: c.Height,
		Fullscreen: c.Fullscreen, Backend: string(c.Backend),
		Background: ColorName(c.Background), LineWidth: c.LineWidth,
		SwapInterval: c.SwapInterval, Scene: c.Scene, LogFPS: c.LogFPS,
	}, nil
}

// UnmarshalYAML validates the loaded values. Missing values are taken from
// Default().
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	def := Default()
	tmp := tmpConfig{
		Title: def.Title, Width: def.Width, Height: def.Height,
		Backend: string(def.Backend), Background: ColorName(def.Background),
		LineWidth: def.LineWidth, SwapInterval: def.SwapInterval, Scene: def.Scene,
	}
	if err := checkKeys(value); err != nil {
		return err
	}
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	if tmp.Width <= 0 || tmp.Height <= 0 {
		return fmt.Errorf("invalid size (w=%d, h=%d)", tmp.Width, tmp.Height)
	}
	if tmp.LineWidth < 0 {
		return fmt.Errorf("invalid line width: %v", tmp.LineWidth)
	}
	backend := Backend(strings.ToLower(tmp.Backend))
	if !backend.valid() {
		return fmt.Errorf("unknown backend: %s", tmp.Backend)
	}
	bg, err := ParseColor(tmp.Background)
	if err != nil {
		return err
	}
	*c = Config{
		Title: tmp.Title, Width: tmp.Width, Height: tmp.Height,
		Fullscreen: tmp.Fullscreen, Backend: backend, Background: bg,
		LineWidth: tmp.LineWidth, SwapInterval: tmp.SwapInterval,
		Scene: tmp.Scene, LogFPS: tmp.LogFPS,
	}
	return nil
}

// ParseColor parses a color name as defined by SVG 1.1 or a hex value in the
// form #rrggbb.
func ParseColor(s string) (color.RGBA, error) {
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return color.RGBA{}, fmt.Errorf("invalid color: %s", s)
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.RGBA{}, errors.Wrapf(err, "invalid color: %s", s)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v),
			A: 255}, nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color: %s", s)
	}
	return c, nil
}

// ColorName returns the first SVG name of c, or its #rrggbb value if it has
// none.
func ColorName(c color.RGBA) string {
	for _, name := range colornames.Names {
		if colornames.Map[name] == c {
			return name
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Overrides are values given on the command line. Zero values are ignored.
type Overrides struct {
	Title         string
	Width, Height int32
	Fullscreen    bool
	Backend       string
	Scene         string
}

// Apply sets all non-zero overrides. A size overrides fullscreen, as in the
// config file.
func (c *Config) Apply(o Overrides) error {
	if o.Width != 0 && o.Height != 0 {
		c.Width = o.Width
		c.Height = o.Height
		c.Fullscreen = false
	} else if o.Fullscreen {
		c.Fullscreen = true
	}
	if o.Title != "" {
		c.Title = o.Title
	}
	if o.Scene != "" {
		c.Scene = o.Scene
	}
	if o.Backend != "" {
		b := Backend(strings.ToLower(o.Backend))
		if !b.valid() {
			return fmt.Errorf("unknown backend: %s", o.Backend)
		}
		c.Backend = b
	}
	return nil
}

// DefaultPath returns the location of the config file in the user's home.
func DefaultPath() string {
	usr, err := user.Current()
	if err != nil {
		return "simplegl.yaml"
	}
	return filepath.Join(usr.HomeDir, ".config", "simplegl", "config.yaml")
}

// Load reads the config file at path. If it does not exist, the default
// config is returned and written to path.
func Load(path string) (Config, error) {
	input, err := ioutil.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, errors.Wrapf(err, "unable to read %s", path)
		}
		ret := Default()
		if err := Write(path, ret); err != nil {
			log.Println("unable to write config file: " + err.Error())
		} else {
			log.Println("Wrote default config file " + path)
		}
		return ret, nil
	}
	var ret Config
	decoder := yaml.NewDecoder(bytes.NewReader(input))
	decoder.KnownFields(true)
	if err = decoder.Decode(&ret); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file %s", path)
	}
	return ret, nil
}

// Write writes c to path, creating the parent directory if necessary.
func Write(path string, c Config) error {
	output, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return ioutil.WriteFile(path, output, 0644)
}
