// Command creaturesim evolves soft-body creatures for horizontal
// displacement, either headlessly for a fixed number of generations or in
// an interactive raylib window.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Noxbuds/evolution-simulator/config"
	"github.com/Noxbuds/evolution-simulator/creature"
	"github.com/Noxbuds/evolution-simulator/evolution"
	"github.com/Noxbuds/evolution-simulator/fitness"
	"github.com/Noxbuds/evolution-simulator/logging"
	"github.com/Noxbuds/evolution-simulator/renderer"
	"github.com/Noxbuds/evolution-simulator/telemetry"
	"github.com/Noxbuds/evolution-simulator/world"
)

var log2 = logging.For("cli")

func main() {
	configPath := flag.String("config", "", "config YAML file (empty = use defaults)")
	headless := flag.Bool("headless", false, "run without a window for a fixed number of generations")
	generations := flag.Int("generations", 100, "generations to run in headless mode")
	outputDir := flag.String("output", "", "telemetry output directory (empty = disabled)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("loading config: %v", err)
	}
	cfg := config.Cfg()
	if *outputDir != "" {
		cfg.Telemetry.OutputDir = *outputDir
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	controller := evolution.New(cfg, fitness.Distance, rng)

	output, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		log.Fatalf("opening telemetry output: %v", err)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		log2.Warn("writing config snapshot failed", "error", err)
	}

	if *headless {
		runHeadless(controller, output, *generations)
		return
	}

	runWindowed(cfg, controller, output)
}

func runHeadless(controller *evolution.Controller, output *telemetry.OutputManager, generations int) {
	controller.Start()
	defer controller.Stop()

	collector := controller.Collector()
	written := 0
	for written < generations {
		time.Sleep(10 * time.Millisecond)

		results := collector.Results()
		for ; written < len(results) && written < generations; written++ {
			if err := output.WriteGeneration(results[written]); err != nil {
				log2.Warn("writing generation failed", "error", err)
			}
		}
	}

	if err := output.WriteHallOfFame(controller.HallOfFame()); err != nil {
		log2.Warn("writing hall of fame failed", "error", err)
	}
}

func runWindowed(cfg *config.Config, controller *evolution.Controller, output *telemetry.OutputManager) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "creaturesim")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	previewWorld := world.New(world.Config{
		GroundY:         cfg.World.GroundY,
		GroundFriction:  cfg.World.GroundFriction,
		Gravity:         cfg.World.Gravity,
		ActiveThreshold: cfg.Creature.ActiveThreshold,
	})

	written := 0
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			toggle(controller)
		}
		if rl.IsKeyPressed(rl.KeyP) {
			previewBest(cfg, controller, previewWorld)
		}

		results := controller.Collector().Results()
		for ; written < len(results); written++ {
			if err := output.WriteGeneration(results[written]); err != nil {
				log2.Warn("writing generation failed", "error", err)
			}
		}

		if len(previewWorld.Creatures) > 0 {
			previewWorld.Update(cfg.Derived.SubstepDT)
		}

		draw(cfg, controller, previewWorld)
	}

	controller.Stop()
	output.WriteHallOfFame(controller.HallOfFame())
}

func toggle(controller *evolution.Controller) {
	if controller.IsRunning() {
		controller.Stop()
		log2.Info("stopped")
		return
	}
	controller.Start()
	log2.Info("started")
}

func previewBest(cfg *config.Config, controller *evolution.Controller, previewWorld *world.World) {
	entry, ok := controller.HallOfFame().Best()
	if !ok {
		return
	}

	c, err := creature.New(creature.ConfigFrom(cfg), entry.DNA)
	if err != nil {
		log2.Warn("previewing best creature failed", "error", err)
		return
	}

	previewWorld.Reset()
	previewWorld.AddCreature(c)
}

func draw(cfg *config.Config, controller *evolution.Controller, previewWorld *world.World) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.RayWhite)
	renderer.DrawWorld(previewWorld, cfg.Mutation.Toughness.Min, cfg.Mutation.Toughness.Max)

	latest := controller.Collector().Latest()
	status := "stopped"
	if controller.IsRunning() {
		status = "running"
	}
	rl.DrawText(status, 10, 10, 20, rl.DarkGray)

	if raygui.Button(rl.Rectangle{X: 10, Y: 40, Width: 120, Height: 30}, "Start/Stop") {
		toggle(controller)
	}

	rl.DrawText(
		fmt.Sprintf("gen %d  best %.1f  mean %.1f", latest.Index, latest.Best, latest.Mean),
		10, 80, 18, rl.DarkGray,
	)
}
