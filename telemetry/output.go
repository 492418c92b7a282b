package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/Noxbuds/evolution-simulator/config"
)

// OutputManager writes generation and hall-of-fame telemetry to a
// directory. A nil *OutputManager is valid and every method on it is a
// no-op, matching NewOutputManager's "disabled when dir is empty" contract.
type OutputManager struct {
	dir               string
	generationsFile   *os.File
	generationsHeader bool
}

// NewOutputManager creates the output directory and opens generations.csv.
// Returns nil, nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "generations.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating generations.csv: %w", err)
	}

	return &OutputManager{dir: dir, generationsFile: f}, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(filepath.Join(om.dir, "config.yaml"), data, 0644)
}

// WriteGeneration appends one generation's result to generations.csv.
func (om *OutputManager) WriteGeneration(result GenerationResult) error {
	if om == nil {
		return nil
	}

	records := []GenerationResult{result}

	if !om.generationsHeader {
		if err := gocsv.Marshal(records, om.generationsFile); err != nil {
			return fmt.Errorf("writing generation: %w", err)
		}
		om.generationsHeader = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.generationsFile); err != nil {
			return fmt.Errorf("writing generation: %w", err)
		}
	}

	return nil
}

// WriteHallOfFame saves the hall of fame as JSON.
func (om *OutputManager) WriteHallOfFame(hof *HallOfFame) error {
	if om == nil || hof == nil {
		return nil
	}

	data, err := hof.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling hall of fame: %w", err)
	}

	return os.WriteFile(filepath.Join(om.dir, "hall_of_fame.json"), data, 0644)
}

// Dir returns the output directory path, or "" if output is disabled.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes generations.csv.
func (om *OutputManager) Close() error {
	if om == nil || om.generationsFile == nil {
		return nil
	}
	return om.generationsFile.Close()
}
