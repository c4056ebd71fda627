package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/peyilo/pagemesh"
)

// maxConfigSize bounds the YAML file read by loadConfig.
const maxConfigSize = 1 << 20

// Config is the YAML form of a mesh request.
//
//	page:
//	  width: 1080
//	  height: 1920
//	mesh:
//	  width: 30
//	  height: 50
//	origin: top-left
type Config struct {
	Page struct {
		Width  float32 `yaml:"width"`
		Height float32 `yaml:"height"`
	} `yaml:"page"`
	Mesh struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"mesh"`
	Origin string `yaml:"origin"`
}

// defaultConfig matches the mesh resolution used by the curl renderer.
func defaultConfig() Config {
	var c Config
	c.Page.Width = 1080
	c.Page.Height = 1920
	c.Mesh.Width = 30
	c.Mesh.Height = 50
	c.Origin = pagemesh.OriginTopLeft.String()
	return c
}

// loadConfig reads path on top of the defaults. An empty path returns the
// defaults unchanged.
func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return c, fmt.Errorf("config: %s is too large (%d bytes)", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: parse %s: %w", path, err)
	}
	pagemesh.Logger().Debug("config loaded", "path", path)
	return c, nil
}

// Spec converts the config to a mesh spec and generation options.
func (c Config) Spec() (pagemesh.Spec, []pagemesh.Option, error) {
	s := pagemesh.NewSpec(c.Page.Width, c.Page.Height, c.Mesh.Width, c.Mesh.Height)
	origin, ok := pagemesh.ParseOrigin(c.Origin)
	if !ok {
		return s, nil, fmt.Errorf("config: unknown origin %q", c.Origin)
	}
	return s, []pagemesh.Option{pagemesh.WithOrigin(origin)}, nil
}
