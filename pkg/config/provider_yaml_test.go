package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `inputs:
  ride_log: /data/rides.txt
  segments: /data/segments.txt
  places: /data/places.txt
places:
  start_year: 2019
  start_month: 6
  bonus_thresholds: [50, 90, 100]
eddington:
  year_cutoff: 2020
  targets: [62, 100]
estimator:
  degree: 2
rest:
  listen_addr: 127.0.0.1
  port: 9200
`

func TestYAMLProviderLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "velolog.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	provider := NewYAMLProvider(path)
	defer provider.Close()

	cfg, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Inputs.RideLog != "/data/rides.txt" {
		t.Errorf("ride_log = %q", cfg.Inputs.RideLog)
	}
	if cfg.Places.StartYear != 2019 || cfg.Places.StartMonth != 6 {
		t.Errorf("places start = %d-%d, expected 2019-6", cfg.Places.StartYear, cfg.Places.StartMonth)
	}
	if len(cfg.Places.BonusThresholds) != 3 || cfg.Places.BonusThresholds[2] != 100 {
		t.Errorf("bonus thresholds = %v", cfg.Places.BonusThresholds)
	}
	if cfg.Eddington.YearCutoff != 2020 || len(cfg.Eddington.Targets) != 2 {
		t.Errorf("eddington = %+v", cfg.Eddington)
	}
	if cfg.Estimator.Degree != 2 {
		t.Errorf("estimator degree = %d", cfg.Estimator.Degree)
	}
	if cfg.REST == nil || cfg.REST.Port != 9200 || cfg.REST.ListenAddr != "127.0.0.1" {
		t.Errorf("rest = %+v", cfg.REST)
	}
	if !provider.IsReadOnly() {
		t.Error("YAML provider should be read-only")
	}
}

func TestYAMLProviderNoRESTBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "velolog.yaml")
	if err := os.WriteFile(path, []byte("inputs:\n  ride_log: rides.txt\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.REST != nil {
		t.Errorf("rest = %+v, expected nil when block absent", cfg.REST)
	}
}

func TestYAMLProviderMissingFile(t *testing.T) {
	if _, err := NewYAMLProvider("/does/not/exist.yaml").LoadConfig(); err == nil {
		t.Error("expected error for missing file")
	}
}
