package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/orf-cloud/genome"
	"github.com/lixenwraith/orf-cloud/pipeline"
)

// Environment overrides, applied after the file
const (
	EnvBatchSize = "ORFCLOUD_BATCH_SIZE"
	EnvMinORF    = "ORFCLOUD_MIN_ORF"
	EnvCapacity  = "ORFCLOUD_CAPACITY"
	EnvLogLevel  = "ORFCLOUD_LOG_LEVEL"
)

type fileConfig struct {
	BatchSize        int     `toml:"batch_size"`
	MinFeatureLength uint64  `toml:"min_orf_length"`
	CapacityCap      int     `toml:"capacity_cap"`
	Eviction         bool    `toml:"eviction"`
	DrainFrom        string  `toml:"drain_from"`
	SpawnInterval    string  `toml:"spawn_interval"`
	TimerMode        string  `toml:"timer_mode"`
	Genome           string  `toml:"genome"`
	AudioEnabled     bool    `toml:"audio"`
	Volume           float64 `toml:"volume"`
	LogLevel         string  `toml:"log_level"`
	LogDir           string  `toml:"log_dir"`
	MetricsAddr      string  `toml:"metrics_addr"`
}

// Load reads a TOML file over the defaults; an empty path skips the file
// Environment overrides apply in both cases
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("batch_size") {
		cfg.BatchSize = raw.BatchSize
	}
	if meta.IsDefined("min_orf_length") {
		cfg.MinFeatureLength = raw.MinFeatureLength
	}
	if meta.IsDefined("capacity_cap") {
		cfg.CapacityCap = raw.CapacityCap
	}
	if meta.IsDefined("eviction") {
		cfg.EvictionEnabled = raw.Eviction
	}
	if meta.IsDefined("drain_from") {
		switch strings.ToLower(strings.TrimSpace(raw.DrainFrom)) {
		case "front":
			cfg.DrainFromFront = true
		case "back":
			cfg.DrainFromFront = false
		default:
			return fmt.Errorf("parse drain_from: want front or back, got %q", raw.DrainFrom)
		}
	}
	if meta.IsDefined("spawn_interval") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.SpawnInterval))
		if err != nil {
			return fmt.Errorf("parse spawn_interval: %w", err)
		}
		cfg.SpawnInterval = d
	}
	if meta.IsDefined("timer_mode") {
		mode, err := ParseTimerMode(raw.TimerMode)
		if err != nil {
			return err
		}
		cfg.TimerMode = mode
	}
	if meta.IsDefined("genome") {
		if err := cfg.SetGenome(raw.Genome); err != nil {
			return err
		}
	}
	if meta.IsDefined("audio") {
		cfg.Audio.Enabled = raw.AudioEnabled
	}
	if meta.IsDefined("volume") {
		cfg.Audio.MasterVolume = raw.Volume
	}
	if meta.IsDefined("log_level") {
		cfg.Log.Level = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_dir") {
		cfg.Log.Dir = strings.TrimSpace(raw.LogDir)
	}
	if meta.IsDefined("metrics_addr") {
		cfg.Metrics.Addr = strings.TrimSpace(raw.MetricsAddr)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBatchSize); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvBatchSize, err)
		}
		cfg.BatchSize = n
	}
	if v, ok := lookup(EnvMinORF); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvMinORF, err)
		}
		cfg.MinFeatureLength = n
	}
	if v, ok := lookup(EnvCapacity); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvCapacity, err)
		}
		cfg.CapacityCap = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = strings.TrimSpace(v)
	}
	return nil
}

// SetGenome selects the bundled genome for "" or "bundled", otherwise reads path as a custom genome
func (c *Config) SetGenome(value string) error {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "bundled") {
		c.Genome = genome.BundledSource()
		c.GenomePath = ""
		return nil
	}
	data, err := os.ReadFile(value)
	if err != nil {
		return fmt.Errorf("read genome: %w", err)
	}
	c.Genome = genome.CustomSource(data)
	c.GenomePath = value
	return nil
}

// ParseTimerMode accepts "once" or "repeating"
func ParseTimerMode(s string) (pipeline.TimerMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "once":
		return pipeline.TimerOnce, nil
	case "repeating", "repeat":
		return pipeline.TimerRepeating, nil
	default:
		return 0, fmt.Errorf("parse timer_mode: want once or repeating, got %q", s)
	}
}
