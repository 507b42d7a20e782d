package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/orf-cloud/genome"
	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/pipeline"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default invalid: %v", err)
	}
	if cfg.BatchSize != 28 || cfg.MinFeatureLength != 100 || cfg.CapacityCap != 2000 {
		t.Errorf("defaults = %d/%d/%d", cfg.BatchSize, cfg.MinFeatureLength, cfg.CapacityCap)
	}
	if !cfg.EvictionEnabled || cfg.DrainFromFront || cfg.Genome.Kind != genome.KindBundled {
		t.Error("unexpected default policy")
	}
}

func TestClamp(t *testing.T) {
	cfg := Default()
	cfg.BatchSize = 0
	cfg.MinFeatureLength = 5000
	cfg.CapacityCap = 50
	cfg.Clamp()
	if cfg.BatchSize != parameter.BatchSizeLow {
		t.Errorf("batch = %d", cfg.BatchSize)
	}
	if cfg.MinFeatureLength != parameter.MinFeatureLengthHigh {
		t.Errorf("min length = %d", cfg.MinFeatureLength)
	}
	if cfg.CapacityCap != parameter.CapacityCapLow {
		t.Errorf("cap = %d", cfg.CapacityCap)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"batch", func(c *Config) { c.BatchSize = 101 }},
		{"min length", func(c *Config) { c.MinFeatureLength = 0 }},
		{"cap", func(c *Config) { c.CapacityCap = 10_001 }},
		{"interval", func(c *Config) { c.SpawnInterval = -time.Second }},
		{"timer", func(c *Config) { c.TimerMode = 7 }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"volume", func(c *Config) { c.Audio.MasterVolume = 2 }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestResetKeepsAmbient(t *testing.T) {
	cfg := Default()
	cfg.BatchSize = 99
	cfg.Genome = genome.CustomSource([]byte("ACGT"))
	cfg.Log.Debug = true
	cfg.Metrics.Addr = ":9100"
	cfg.Reset()

	if cfg.BatchSize != parameter.DefaultBatchSize || cfg.Genome.Kind != genome.KindBundled {
		t.Error("run settings not reset")
	}
	if !cfg.Log.Debug || cfg.Metrics.Addr != ":9100" {
		t.Error("ambient settings lost on reset")
	}
}

func TestSlowWarning(t *testing.T) {
	cfg := Default()
	if cfg.SlowWarning() {
		t.Error("default length warns")
	}
	cfg.MinFeatureLength = 49
	if !cfg.SlowWarning() {
		t.Error("49 does not warn")
	}
}

func TestLoadFile(t *testing.T) {
	fa := writeFile(t, "g.fa", ">x\nATGAAATAA\n")
	path := writeFile(t, "orf.toml", `
batch_size = 12
min_orf_length = 300
capacity_cap = 500
eviction = false
drain_from = "front"
spawn_interval = "500ms"
timer_mode = "repeating"
genome = "`+filepath.ToSlash(fa)+`"
metrics_addr = ":9200"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BatchSize != 12 || cfg.MinFeatureLength != 300 || cfg.CapacityCap != 500 {
		t.Errorf("numbers = %d/%d/%d", cfg.BatchSize, cfg.MinFeatureLength, cfg.CapacityCap)
	}
	if cfg.EvictionEnabled || !cfg.DrainFromFront {
		t.Error("policy flags not applied")
	}
	if cfg.SpawnInterval != 500*time.Millisecond || cfg.TimerMode != pipeline.TimerRepeating {
		t.Errorf("timer = %v %v", cfg.SpawnInterval, cfg.TimerMode)
	}
	if cfg.Genome.Kind != genome.KindCustom || string(cfg.Genome.Data) != ">x\nATGAAATAA\n" {
		t.Errorf("genome = %v %q", cfg.Genome.Kind, cfg.Genome.Data)
	}
	if cfg.Metrics.Addr != ":9200" {
		t.Errorf("metrics = %q", cfg.Metrics.Addr)
	}
	// Unset keys keep defaults
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key": "colour = \"red\"\n",
		"bad drain":   "drain_from = \"middle\"\n",
		"bad dur":     "spawn_interval = \"soon\"\n",
		"bad timer":   "timer_mode = \"twice\"\n",
		"syntax":      "batch_size = \n",
	}
	for name, body := range tests {
		if _, err := Load(writeFile(t, "bad.toml", body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvBatchSize: "7",
		EnvMinORF:    "42",
		EnvCapacity:  "150",
		EnvLogLevel:  "debug",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := applyEnv(&cfg, lookup); err != nil {
		t.Fatalf("env: %v", err)
	}
	if cfg.BatchSize != 7 || cfg.MinFeatureLength != 42 || cfg.CapacityCap != 150 || cfg.Log.Level != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}

	env[EnvBatchSize] = "many"
	if err := applyEnv(&cfg, lookup); err == nil {
		t.Error("non-numeric batch accepted")
	}
}

func TestLoadEmptyPathUsesEnv(t *testing.T) {
	t.Setenv(EnvCapacity, "300")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.CapacityCap != 300 {
		t.Errorf("cap = %d", cfg.CapacityCap)
	}
}
