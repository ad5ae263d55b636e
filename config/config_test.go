package config

import (
	"image/color"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in  string
		out color.RGBA
		err bool
	}{
		{"white", color.RGBA{255, 255, 255, 255}, false},
		{"Red", color.RGBA{255, 0, 0, 255}, false},
		{"#102030", color.RGBA{0x10, 0x20, 0x30, 255}, false},
		{"#10203", color.RGBA{}, true},
		{"#10203g", color.RGBA{}, true},
		{"notacolor", color.RGBA{}, true},
	}
	for _, tc := range tests {
		c, err := ParseColor(tc.in)
		if tc.err {
			assert.Error(t, err, tc.in)
		} else if assert.NoError(t, err, tc.in) {
			assert.Equal(t, tc.out, c, tc.in)
		}
	}
}

func TestColorName(t *testing.T) {
	assert.Equal(t, "white", ColorName(color.RGBA{255, 255, 255, 255}))
	assert.Equal(t, "#010203", ColorName(color.RGBA{1, 2, 3, 255}))
}

func TestUnmarshal(t *testing.T) {
	input := `
title: Demo
width: 640
height: 480
backend: GLFW
background: "#000080"
lineWidth: 2.5
scene: cursor
logFPS: true
`
	var c Config
	require.NoError(t, yaml.Unmarshal([]byte(input), &c))
	assert.Equal(t, Config{
		Title: "Demo", Width: 640, Height: 480, Backend: GLFW,
		Background: color.RGBA{0, 0, 0x80, 255}, LineWidth: 2.5,
		SwapInterval: 1, Scene: "cursor", LogFPS: true,
	}, c)
}

func TestUnmarshalDefaults(t *testing.T) {
	var c Config
	require.NoError(t, yaml.Unmarshal([]byte("title: x\n"), &c))
	expected := Default()
	expected.Title = "x"
	assert.Equal(t, expected, c)
}

func TestUnmarshalInvalid(t *testing.T) {
	for _, input := range []string{
		"width: 0\n",
		"height: -3\n",
		"backend: vulkan\n",
		"background: notacolor\n",
		"lineWidth: -1\n",
	} {
		var c Config
		assert.Error(t, yaml.Unmarshal([]byte(input), &c), input)
	}
}

func TestRoundTrip(t *testing.T) {
	c := Default()
	c.Background = color.RGBA{0x12, 0x34, 0x56, 255}
	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), "#123456")

	var back Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, c, back)
}

func TestLoadWritesDefault(t *testing.T) {
	dir, err := ioutil.TempDir("", "simplegl")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "sub", "config.yaml")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = os.Stat(path)
	require.NoError(t, err, "default config must have been written")

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestLoadInvalid(t *testing.T) {
	dir, err := ioutil.TempDir("", "simplegl")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("width: 0\n"), 0644))

	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadUnknownField(t *testing.T) {
	dir, err := ioutil.TempDir("", "simplegl")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(path,
		[]byte("title: x\ncolour: red\nwidht: 10\n"), 0644))

	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestUnmarshalUnknownField(t *testing.T) {
	var c Config
	err := yaml.Unmarshal([]byte("width: 10\nheight: 10\nlinewidth: 2\n"), &c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestApply(t *testing.T) {
	c := Default()
	c.Fullscreen = true
	require.NoError(t, c.Apply(Overrides{Width: 800, Height: 600,
		Backend: "Record", Scene: "cursor", Title: "t"}))
	assert.Equal(t, int32(800), c.Width)
	assert.Equal(t, int32(600), c.Height)
	assert.False(t, c.Fullscreen)
	assert.Equal(t, Record, c.Backend)
	assert.Equal(t, "cursor", c.Scene)
	assert.Equal(t, "t", c.Title)

	c = Default()
	require.NoError(t, c.Apply(Overrides{Width: 800, Fullscreen: true}))
	assert.Equal(t, int32(400), c.Width, "size needs both dimensions")
	assert.True(t, c.Fullscreen)

	assert.Error(t, c.Apply(Overrides{Backend: "x11"}))
}
