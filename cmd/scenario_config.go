package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/blocksim/blocksim/sim"
)

// Define struct for YAML
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// Scenario describes one preset in a scenario file. Zero-valued fields
// keep the built-in defaults.
type Scenario struct {
	CapacityBytes     int64   `yaml:"capacity_bytes"`
	TxSizeBytes       int64   `yaml:"tx_size_bytes"`
	TxFee             float64 `yaml:"tx_fee"`
	BlockIntervalSecs float64 `yaml:"block_interval_secs"`
}

// ApplyScenario loads the named preset from a yaml file and overlays its
// non-zero fields onto cfg.
func ApplyScenario(path string, name string, cfg *sim.Config) error {
	// Read YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading scenario file: %w", err)
	}

	// Parse YAML
	var sc ScenarioConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return fmt.Errorf("parsing scenario file %s: %w", path, err)
	}

	scenario, exists := sc.Scenarios[name]
	if !exists {
		return fmt.Errorf("scenario %q not found in %s", name, path)
	}

	logrus.Infof("Using scenario preset %v", name)
	if scenario.CapacityBytes > 0 {
		cfg.CapacityBytes = scenario.CapacityBytes
	}
	if scenario.TxSizeBytes > 0 {
		cfg.TxSizeBytes = scenario.TxSizeBytes
	}
	if scenario.TxFee > 0 {
		cfg.TxFee = scenario.TxFee
	}
	if scenario.BlockIntervalSecs > 0 {
		cfg.BlockRate = 1.0 / scenario.BlockIntervalSecs
	}
	return nil
}
