package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scene is the example CLI's input fixture: a single compact-heightfield
// column layout plus the build parameters contour.Build/navmesh.CreateTile
// need, grounded on the config-loading style of
// firestar-voxel-world/central's YAML config.
type scene struct {
	CellSize   float64      `yaml:"cell_size"`
	CellHeight float64      `yaml:"cell_height"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	BorderSize int          `yaml:"border_size"`
	MaxRegions int          `yaml:"max_regions"`
	Bounds     sceneBounds  `yaml:"bounds"`
	Columns    []sceneSpan  `yaml:"columns"`
	Build      buildOptions `yaml:"build"`
}

type sceneBounds struct {
	Min [3]float64 `yaml:"min"`
	Max [3]float64 `yaml:"max"`
}

// sceneSpan is one walkable column entry: grid (x, z), the span's base
// height, region id and area tag, and its four cardinal neighbour links
// (-1 meaning not connected).
type sceneSpan struct {
	X          int    `yaml:"x"`
	Z          int    `yaml:"z"`
	Y          int    `yaml:"y"`
	Region     int    `yaml:"region"`
	Area       int    `yaml:"area"`
	Neighbours [4]int `yaml:"neighbours"`
}

type buildOptions struct {
	MaxError       float64 `yaml:"max_error"`
	MaxEdgeLen     int     `yaml:"max_edge_len"`
	TessWallEdges  bool    `yaml:"tess_wall_edges"`
	TessAreaEdges  bool    `yaml:"tess_area_edges"`
	BuildBVTree    bool    `yaml:"build_bv_tree"`
	WalkableHeight float64 `yaml:"walkable_height"`
	WalkableRadius float64 `yaml:"walkable_radius"`
	WalkableClimb  float64 `yaml:"walkable_climb"`
}

func loadScene(path string) (*scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var s scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *scene) validate() error {
	if s.CellSize <= 0 || s.CellHeight <= 0 {
		return fmt.Errorf("cell_size and cell_height must be positive")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("columns cannot be empty")
	}
	if s.Build.MaxError < 0 {
		return fmt.Errorf("build.max_error cannot be negative")
	}
	return nil
}
