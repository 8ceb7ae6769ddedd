// File: control/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reactor tuning configuration with YAML loading and hot-reload listeners.

package control

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config carries the tunables a poller is built with.
type Config struct {
	// TableCapacity is the initial descriptor table capacity; the table
	// grows by doubling past it.
	TableCapacity int `yaml:"table_capacity"`

	// FreeListBound caps how many recycled poll item storages are kept;
	// overflow is released to the allocator.
	FreeListBound int `yaml:"free_list_bound"`

	// ForceFallbackTimer disables the high-resolution timer mechanism and
	// forces plain poll timeouts. Compatibility switch for kernels with a
	// broken or missing timerfd.
	ForceFallbackTimer bool `yaml:"force_fallback_timer"`

	// LogLevel selects the minimum severity emitted by the poller's
	// logger: "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when none is supplied.
func Default() Config {
	return Config{
		TableCapacity: 32,
		FreeListBound: 64,
		LogLevel:      "warn",
	}
}

// Validate normalizes zero fields to their defaults and rejects
// out-of-range values.
func (c *Config) Validate() error {
	d := Default()
	if c.TableCapacity == 0 {
		c.TableCapacity = d.TableCapacity
	}
	if c.FreeListBound == 0 {
		c.FreeListBound = d.FreeListBound
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.TableCapacity < 0 {
		return fmt.Errorf("control: table_capacity must not be negative: %d", c.TableCapacity)
	}
	if c.FreeListBound < 0 {
		return fmt.Errorf("control: free_list_bound must not be negative: %d", c.FreeListBound)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("control: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Parse decodes a YAML document into a validated Config.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("control: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and decodes a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("control: read config: %w", err)
	}
	return Parse(data)
}

// Store is a thread-safe configuration holder with reload listeners.
type Store struct {
	mu        sync.RWMutex
	cfg       Config
	listeners []func(Config)
}

// NewStore initializes a store with the given starting configuration.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// Snapshot returns the current configuration.
func (s *Store) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update replaces the configuration and notifies listeners.
func (s *Store) Update(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	listeners := make([]func(Config), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(cfg)
	}
	return nil
}

// OnReload registers a listener invoked after every successful Update.
func (s *Store) OnReload(fn func(Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
