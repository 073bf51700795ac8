package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config drives a single demo run: how big to make each primitive and how
// many operations to push through it before reporting metrics.
type Config struct {
	Arena struct {
		ChunkCapacity int `yaml:"chunk_capacity"`
		Allocations   int `yaml:"allocations"`
		AllocSize     int `yaml:"alloc_size"`
	} `yaml:"arena"`

	Buddy struct {
		MaxPages  int `yaml:"max_pages"`
		AllocSize int `yaml:"alloc_size"`
	} `yaml:"buddy"`

	HashMap struct {
		InitialOrder int `yaml:"initial_order"`
		Keys         int `yaml:"keys"`
	} `yaml:"hashmap"`

	Heap struct {
		Values []int `yaml:"values"`
	} `yaml:"heap"`

	MetricsAddr string `yaml:"metrics_addr"`
}

// defaultConfig mirrors the values used when no config file is given.
func defaultConfig() Config {
	var c Config
	c.Arena.ChunkCapacity = 16384
	c.Arena.Allocations = 64
	c.Arena.AllocSize = 48
	c.Buddy.MaxPages = 64
	c.Buddy.AllocSize = 256
	c.HashMap.InitialOrder = 2
	c.HashMap.Keys = 64
	c.Heap.Values = []int{5, 1, 4, 2, 8, 3}
	c.MetricsAddr = ":2112"
	return c
}

// loadConfig reads a YAML config file, falling back to defaultConfig when
// path is empty.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config file")
	}
	return cfg, nil
}
