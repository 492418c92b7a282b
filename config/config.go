// Package config provides configuration loading and access for the
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Creature  CreatureConfig  `yaml:"creature"`
	Mutation  MutationConfig  `yaml:"mutation"`
	Sim       SimConfig       `yaml:"sim"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Screen    ScreenConfig    `yaml:"screen"`

	// Derived values computed after loading.
	Derived DerivedConfig `yaml:"-"`
}

// WorldConfig holds the shared ground/gravity parameters.
type WorldConfig struct {
	GroundY        float64 `yaml:"ground_y"`
	GroundFriction float64 `yaml:"ground_friction"`
	Gravity        float64 `yaml:"gravity"`
}

// CreatureConfig holds creature construction and charge-model parameters.
type CreatureConfig struct {
	Size               int     `yaml:"size"`
	CellSize           float64 `yaml:"cell_size"`
	PulseThreshold     float64 `yaml:"pulse_threshold"`
	ChargeThreshold    float64 `yaml:"charge_threshold"`
	DischargeThreshold float64 `yaml:"discharge_threshold"`
	ChargeAccel        float64 `yaml:"charge_accel"`
	ActiveThreshold    float64 `yaml:"active_threshold"`
	NodeDamping        float64 `yaml:"node_damping"`
	NodeMass           float64 `yaml:"node_mass"`
}

// FieldRange is an inclusive {min, max} bound for one DNA field.
type FieldRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// MutationConfig holds DNA generation and mutation parameters.
type MutationConfig struct {
	Chance       float64    `yaml:"chance"`
	Strength     float64    `yaml:"strength"`
	Conductivity FieldRange `yaml:"conductivity"`
	Reactivity   FieldRange `yaml:"reactivity"`
	Toughness    FieldRange `yaml:"toughness"`
	Active       FieldRange `yaml:"active"`
	ChargeRate   FieldRange `yaml:"charge_rate"`
}

// SimConfig holds the top-level simulation run parameters.
type SimConfig struct {
	CreatureCount int     `yaml:"creature_count"`
	Timestep      float64 `yaml:"timestep"`
	SubSteps      int     `yaml:"sub_steps"`
	SimTime       float64 `yaml:"sim_time"`
	Threads       int     `yaml:"threads"`
}

// TelemetryConfig holds telemetry export parameters.
type TelemetryConfig struct {
	HallOfFameSize int    `yaml:"hall_of_fame_size"`
	OutputDir      string `yaml:"output_dir"`
}

// ScreenConfig holds display settings for windowed mode.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	// SubstepDT is Sim.Timestep / Sim.SubSteps.
	SubstepDT float64
	// TotalSubsteps is Sim.SimTime / SubstepDT, truncated.
	TotalSubsteps int
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived fills in GroundY when left at zero and computes the
// substep timestep and total substep count used by the simulator worker.
func (c *Config) computeDerived() {
	if c.World.GroundY == 0 {
		c.World.GroundY = c.Creature.CellSize*float64(c.Creature.Size) + 10
	}

	c.Derived.SubstepDT = c.Sim.Timestep / float64(c.Sim.SubSteps)
	c.Derived.TotalSubsteps = int(c.Sim.SimTime / c.Derived.SubstepDT)
}
