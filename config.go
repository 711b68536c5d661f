package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds engine settings. Zero or missing fields fall back to
// defaults, so a partial config file is fine.
type Config struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Title        string  `yaml:"title"`
	TargetFPS    int     `yaml:"target_fps"`
	PlayerSpeed  float64 `yaml:"player_speed"`
	PursuitSpeed float64 `yaml:"pursuit_speed"`
	AssetDir     string  `yaml:"asset_dir"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Width:        800,
		Height:       600,
		Title:        "playbox",
		TargetFPS:    60,
		PlayerSpeed:  200,
		PursuitSpeed: 100,
		AssetDir:     "assets",
	}
}

// LoadConfig reads a YAML config file and normalizes it. Any error returns
// the defaults alongside the error; config problems are never fatal.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

// normalized replaces non-positive fields with their defaults.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = def.TargetFPS
	}
	if c.PlayerSpeed <= 0 {
		c.PlayerSpeed = def.PlayerSpeed
	}
	if c.PursuitSpeed <= 0 {
		c.PursuitSpeed = def.PursuitSpeed
	}
	if c.AssetDir == "" {
		c.AssetDir = def.AssetDir
	}
	return c
}
