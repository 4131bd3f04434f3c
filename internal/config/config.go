// Package config handles configuration of the pole figure tool.
package config

import (
	"errors"
	"fmt"

	"seehuhn.de/go/lambert"
)

// Config holds all settings of a pole figure run.
type Config struct {
	Projection ProjectionConfig `yaml:"projection"`
	Image      ImageConfig      `yaml:"image"`
	Run        RunConfig        `yaml:"run"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ProjectionConfig holds the shape of the Lambert grids.
type ProjectionConfig struct {
	Dimension  int     `yaml:"dimension"`
	Resolution float64 `yaml:"resolution"` // 0 means: span one hemisphere
	MRD        bool    `yaml:"mrd"`         // normalize to multiples of random
	ClampEdges bool    `yaml:"clamp_edges"` // use lambert.EdgeClamp
}

// ImageConfig holds the output settings.
type ImageConfig struct {
	Size   int    `yaml:"size"`   // pole figure size in pixels
	Scale  int    `yaml:"scale"`  // upscaling factor of the PNG output
	Rim    bool   `yaml:"rim"`    // draw the circle of the pole figure
	Output string `yaml:"output"` // PNG file, "-" for stdout
	PDF    string `yaml:"pdf"`    // optional PDF file
}

// RunConfig holds input and execution settings.
type RunConfig struct {
	Input          string `yaml:"input"` // directions file, "-" for stdin
	Workers        int    `yaml:"workers"`
	SkipDegenerate bool   `yaml:"skip_degenerate"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Projection: ProjectionConfig{
			Dimension: 72,
			MRD:       true,
		},
		Image: ImageConfig{
			Size:   256,
			Scale:  1,
			Rim:    true,
			Output: "polefig.png",
		},
		Run: RunConfig{
			Input:          "-",
			SkipDegenerate: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// EffectiveResolution returns the configured cell edge length, or the
// edge length for which the grids span one hemisphere.
func (c *Config) EffectiveResolution() float64 {
	if c.Projection.Resolution == 0 {
		return lambert.HemisphereResolution(c.Projection.Dimension)
	}
	return c.Projection.Resolution
}

// EdgePolicy returns the sampler boundary policy.
func (c *Config) EdgePolicy() lambert.EdgePolicy {
	if c.Projection.ClampEdges {
		return lambert.EdgeClamp
	}
	return lambert.EdgeWrap
}

// DegeneratePolicy returns the policy for directions which cannot be
// projected.
func (c *Config) DegeneratePolicy() lambert.DegeneratePolicy {
	if c.Run.SkipDegenerate {
		return lambert.SkipDegenerate
	}
	return lambert.RejectDegenerate
}

// Validate checks the configuration for values the tool cannot use.
func (c *Config) Validate() error {
	var errs []error
	if c.Projection.Dimension <= 0 {
		errs = append(errs, fmt.Errorf("projection.dimension: %w", lambert.ErrInvalidDimension))
	}
	if c.Projection.Resolution < 0 {
		errs = append(errs, fmt.Errorf("projection.resolution: %w", lambert.ErrInvalidResolution))
	}
	if c.Image.Size <= 0 {
		errs = append(errs, fmt.Errorf("image.size: %w", lambert.ErrInvalidDimension))
	}
	if c.Image.Scale <= 0 {
		errs = append(errs, fmt.Errorf("image.scale must be positive, got %d", c.Image.Scale))
	}
	if c.Image.Output == "" && c.Image.PDF == "" {
		errs = append(errs, errors.New("no output file configured"))
	}
	return errors.Join(errs...)
}
