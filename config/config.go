// Package config holds run settings and their bounds
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/orf-cloud/audio"
	"github.com/lixenwraith/orf-cloud/genome"
	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/pipeline"
)

// LogConfig controls file logging
type LogConfig struct {
	Debug bool
	Level string
	Dir   string
}

// MetricsConfig controls the prometheus endpoint; empty Addr disables it
type MetricsConfig struct {
	Addr      string
	Namespace string
}

// Config is the operator-facing run configuration
// Mutated only while the menu is shown, except CapacityCap and EvictionEnabled
type Config struct {
	BatchSize        int
	MinFeatureLength uint64
	CapacityCap      int
	EvictionEnabled  bool
	DrainFromFront   bool
	SpawnInterval    time.Duration
	TimerMode        pipeline.TimerMode

	Genome     genome.Source
	GenomePath string // Source file of a custom genome, informational

	Audio   audio.Config
	Log     LogConfig
	Metrics MetricsConfig
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		BatchSize:        parameter.DefaultBatchSize,
		MinFeatureLength: parameter.DefaultMinFeatureLength,
		CapacityCap:      parameter.DefaultCapacityCap,
		EvictionEnabled:  true,
		DrainFromFront:   false,
		SpawnInterval:    parameter.SpawnInterval,
		TimerMode:        pipeline.TimerOnce,
		Genome:           genome.BundledSource(),
		Audio:            audio.DefaultConfig(),
		Log: LogConfig{
			Level: "info",
			Dir:   "logs",
		},
		Metrics: MetricsConfig{
			Namespace: "orfcloud",
		},
	}
}

// Reset restores every run setting to its default
// Ambient settings (audio, log, metrics) are kept
func (c *Config) Reset() {
	d := Default()
	d.Audio = c.Audio
	d.Log = c.Log
	d.Metrics = c.Metrics
	*c = d
}

// Clamp forces the menu-adjustable values into their allowed ranges
func (c *Config) Clamp() {
	c.BatchSize = clamp(c.BatchSize, parameter.BatchSizeLow, parameter.BatchSizeHigh)
	c.CapacityCap = clamp(c.CapacityCap, parameter.CapacityCapLow, parameter.CapacityCapHigh)
	c.MinFeatureLength = clamp(c.MinFeatureLength, parameter.MinFeatureLengthLow, parameter.MinFeatureLengthHigh)
}

// Validate rejects settings no run can use
func (c *Config) Validate() error {
	var errs []error
	if c.BatchSize < parameter.BatchSizeLow || c.BatchSize > parameter.BatchSizeHigh {
		errs = append(errs, fmt.Errorf("batch size %d outside [%d, %d]", c.BatchSize, parameter.BatchSizeLow, parameter.BatchSizeHigh))
	}
	if c.MinFeatureLength < parameter.MinFeatureLengthLow || c.MinFeatureLength > parameter.MinFeatureLengthHigh {
		errs = append(errs, fmt.Errorf("min feature length %d outside [%d, %d]", c.MinFeatureLength, parameter.MinFeatureLengthLow, parameter.MinFeatureLengthHigh))
	}
	if c.CapacityCap < parameter.CapacityCapLow || c.CapacityCap > parameter.CapacityCapHigh {
		errs = append(errs, fmt.Errorf("capacity cap %d outside [%d, %d]", c.CapacityCap, parameter.CapacityCapLow, parameter.CapacityCapHigh))
	}
	if c.SpawnInterval < 0 {
		errs = append(errs, fmt.Errorf("negative spawn interval %v", c.SpawnInterval))
	}
	if c.TimerMode != pipeline.TimerOnce && c.TimerMode != pipeline.TimerRepeating {
		errs = append(errs, fmt.Errorf("unknown timer mode %d", c.TimerMode))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("master volume %.2f outside [0, 1]", c.Audio.MasterVolume))
	}
	return errors.Join(errs...)
}

// SlowWarning reports whether the feature length is low enough to flood the scene
func (c *Config) SlowWarning() bool {
	return c.MinFeatureLength < parameter.SlowFeatureLength
}

// PipelineOptions derives per-run pipeline settings
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		BatchSize:       c.BatchSize,
		DrainFromFront:  c.DrainFromFront,
		CapacityCap:     c.CapacityCap,
		EvictionEnabled: c.EvictionEnabled,
		SpawnInterval:   c.SpawnInterval,
		TimerMode:       c.TimerMode,
	}
}

func clamp[T int | uint64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
