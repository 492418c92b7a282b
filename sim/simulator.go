// Package sim runs one long-lived simulation worker per OS thread slot,
// each owning its own World and driven by a request/response channel pair —
// the Go analogue of the original's std::sync::mpsc worker threads.
package sim

import (
	"github.com/Noxbuds/evolution-simulator/config"
	"github.com/Noxbuds/evolution-simulator/creature"
	"github.com/Noxbuds/evolution-simulator/dna"
	"github.com/Noxbuds/evolution-simulator/fitness"
	"github.com/Noxbuds/evolution-simulator/logging"
	"github.com/Noxbuds/evolution-simulator/world"
)

var log = logging.For("simulator")

// Result pairs one creature's DNA with its fitness score.
type Result struct {
	DNA     dna.CreatureDNA
	Fitness float64
}

// Worker owns one World and a background goroutine that simulates whatever
// DNA batch it's handed. A Worker must not be shared across goroutines
// beyond its own: callers interact with it only via Run/Results.
type Worker struct {
	runCh     chan []dna.CreatureDNA
	resultsCh chan []Result
}

// NewWorker builds a worker and starts its background goroutine. fitnessFn
// is read-only and safe to share across every worker.
func NewWorker(cfg *config.Config, fitnessFn fitness.Func) *Worker {
	w := &Worker{
		runCh:     make(chan []dna.CreatureDNA),
		resultsCh: make(chan []Result),
	}

	creatureCfg := creature.ConfigFrom(cfg)
	worldCfg := world.Config{
		GroundY:         cfg.World.GroundY,
		GroundFriction:  cfg.World.GroundFriction,
		Gravity:         cfg.World.Gravity,
		ActiveThreshold: cfg.Creature.ActiveThreshold,
	}
	dt := cfg.Derived.SubstepDT
	totalSubsteps := cfg.Derived.TotalSubsteps

	go func() {
		wld := world.New(worldCfg)

		for batch := range w.runCh {
			wld.Reset()

			creatures := make([]*creature.Creature, 0, len(batch))
			order := make([]dna.CreatureDNA, 0, len(batch))
			for _, d := range batch {
				c, err := creature.New(creatureCfg, d)
				if err != nil {
					log.Warn("skipping creature", "error", err)
					continue
				}
				wld.AddCreature(c)
				creatures = append(creatures, c)
				order = append(order, d)
			}

			for i := 0; i < totalSubsteps; i++ {
				wld.Update(dt)
			}

			scores := fitnessFn(creatures)
			results := make([]Result, len(order))
			for i, d := range order {
				results[i] = Result{DNA: d, Fitness: scores[i]}
			}

			w.resultsCh <- results
		}
	}()

	return w
}

// Run dispatches a DNA batch to the worker. It does not block for the
// result; receive it from Results.
func (w *Worker) Run(batch []dna.CreatureDNA) {
	w.runCh <- batch
}

// Results blocks until the worker finishes the batch most recently passed
// to Run, then returns its results.
func (w *Worker) Results() []Result {
	return <-w.resultsCh
}

// Close stops the worker's goroutine. The worker must not be used again.
func (w *Worker) Close() {
	close(w.runCh)
}
