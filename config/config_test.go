package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	if cfg.Creature.Size != 6 {
		t.Errorf("Creature.Size = %v, want 6", cfg.Creature.Size)
	}
	if cfg.Sim.CreatureCount != 1000 {
		t.Errorf("Sim.CreatureCount = %v, want 1000", cfg.Sim.CreatureCount)
	}
	if cfg.Mutation.Toughness.Min != 1000 || cfg.Mutation.Toughness.Max != 2000 {
		t.Errorf("Mutation.Toughness = %+v, want {1000 2000}", cfg.Mutation.Toughness)
	}
}

func TestLoadDerivesGroundY(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	want := cfg.Creature.CellSize*float64(cfg.Creature.Size) + 10
	if math.Abs(cfg.World.GroundY-want) > 1e-9 {
		t.Errorf("World.GroundY = %v, want derived value %v", cfg.World.GroundY, want)
	}
}

func TestLoadDerivesSubstepTimings(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	wantDT := cfg.Sim.Timestep / float64(cfg.Sim.SubSteps)
	if math.Abs(cfg.Derived.SubstepDT-wantDT) > 1e-12 {
		t.Errorf("Derived.SubstepDT = %v, want %v", cfg.Derived.SubstepDT, wantDT)
	}

	wantTotal := int(cfg.Sim.SimTime / wantDT)
	if cfg.Derived.TotalSubsteps != wantTotal {
		t.Errorf("Derived.TotalSubsteps = %v, want %v", cfg.Derived.TotalSubsteps, wantTotal)
	}
}

func TestLoadOverrideFileMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	overridePath := filepath.Join(dir, "override.yaml")
	contents := "sim:\n  creature_count: 42\n"
	if err := os.WriteFile(overridePath, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(overridePath)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", overridePath, err)
	}

	if cfg.Sim.CreatureCount != 42 {
		t.Errorf("Sim.CreatureCount = %v, want 42 (from override)", cfg.Sim.CreatureCount)
	}
	if cfg.Creature.Size != 6 {
		t.Errorf("Creature.Size = %v, want 6 (untouched default)", cfg.Creature.Size)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing override file, got nil")
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	global = nil
	defer func() {
		if r := recover(); r == nil {
			t.Error("Cfg() should panic before Init() is called")
		}
	}()
	Cfg()
}

func TestInitThenCfg(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init(\"\") error = %v", err)
	}
	if Cfg() == nil {
		t.Error("Cfg() returned nil after Init")
	}
}
