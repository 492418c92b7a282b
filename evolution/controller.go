// Package evolution drives the generational loop: simulate a population,
// select survivors, reproduce, repeat.
package evolution

import (
	"math/rand"
	"sort"
	"sync/atomic"
	"time"

	"github.com/Noxbuds/evolution-simulator/config"
	"github.com/Noxbuds/evolution-simulator/dna"
	"github.com/Noxbuds/evolution-simulator/fitness"
	"github.com/Noxbuds/evolution-simulator/logging"
	"github.com/Noxbuds/evolution-simulator/sim"
	"github.com/Noxbuds/evolution-simulator/telemetry"
)

var log = logging.For("evolution_controller")

type controlMessage int

const (
	cmdStart controlMessage = iota
	cmdStop
)

func mutationRanges(cfg config.MutationConfig) dna.FieldRanges {
	toRange := func(r config.FieldRange) dna.Range {
		return dna.Range{Min: r.Min, Max: r.Max}
	}
	return dna.FieldRanges{
		Conductivity: toRange(cfg.Conductivity),
		Reactivity:   toRange(cfg.Reactivity),
		Toughness:    toRange(cfg.Toughness),
		Active:       toRange(cfg.Active),
		ChargeRate:   toRange(cfg.ChargeRate),
		Chance:       cfg.Chance,
		Strength:     cfg.Strength,
	}
}

// partition splits n items across count workers as evenly as possible,
// handing the remainder to the first workers round-robin so every DNA
// entry is simulated by exactly one worker.
func partition(n, count int) []int {
	sizes := make([]int, count)
	base := n / count
	remainder := n % count
	for i := range sizes {
		sizes[i] = base
		if i < remainder {
			sizes[i]++
		}
	}
	return sizes
}

// Controller owns the master DNA population, a fixed pool of simulator
// workers, and the generation cycle's control channel — the Go analogue of
// the original's background evolution thread.
type Controller struct {
	workers        []*sim.Worker
	rng            *rand.Rand
	mutation       dna.FieldRanges
	creatureFields int

	collector  *telemetry.Collector
	hallOfFame *telemetry.HallOfFame

	controlCh chan controlMessage
	resultsCh chan []sim.Result

	running    atomic.Bool
	generation int
	population []dna.CreatureDNA
	latest     []sim.Result
}

// New builds a controller and starts its background goroutine. rng seeds
// DNA generation, mutation, and survivor selection; pass a seeded *rand.Rand
// for deterministic tests, or one seeded from wall-clock time for
// production runs.
func New(cfg *config.Config, fitnessFn fitness.Func, rng *rand.Rand) *Controller {
	creatureFields := cfg.Creature.Size * cfg.Creature.Size

	c := &Controller{
		rng:            rng,
		mutation:       mutationRanges(cfg.Mutation),
		creatureFields: creatureFields,
		collector:      telemetry.NewCollector(),
		hallOfFame:     telemetry.NewHallOfFame(cfg.Telemetry.HallOfFameSize, rng),
		controlCh:      make(chan controlMessage),
		resultsCh:      make(chan []sim.Result),
	}

	c.workers = make([]*sim.Worker, cfg.Sim.Threads)
	for i := range c.workers {
		c.workers[i] = sim.NewWorker(cfg, fitnessFn)
	}

	c.population = make([]dna.CreatureDNA, cfg.Sim.CreatureCount)
	for i := range c.population {
		c.population[i] = dna.Generate(creatureFields, c.mutation, rng)
	}

	go c.run()

	return c
}

func (c *Controller) run() {
	for {
		if !c.running.Load() {
			c.handle(<-c.controlCh)
			continue
		}

		select {
		case msg := <-c.controlCh:
			c.handle(msg)
			continue
		default:
		}

		start := time.Now()
		results := c.simulateGeneration()
		survivors := c.selectFittest(results)

		fitnesses := make([]float64, len(results))
		for i, r := range results {
			fitnesses[i] = r.Fitness
			c.hallOfFame.Consider(r.DNA, r.Fitness)
		}
		genResult := c.collector.Record(c.generation, time.Since(start), fitnesses, len(survivors))
		log.Info("generation completed", "result", genResult)

		c.generation++
		c.population = c.reproduce(survivors)
		c.latest = results
	}
}

func (c *Controller) handle(msg controlMessage) {
	switch msg {
	case cmdStart:
		c.running.Store(true)
		log.Info("controller running")
	case cmdStop:
		c.running.Store(false)
		log.Info("controller stopping")
		c.resultsCh <- c.latest
	}
}

// simulateGeneration partitions the current population across the worker
// pool, dispatches it, and concatenates the replies into one result slice.
func (c *Controller) simulateGeneration() []sim.Result {
	sizes := partition(len(c.population), len(c.workers))

	offset := 0
	for i, w := range c.workers {
		slice := c.population[offset : offset+sizes[i]]
		w.Run(slice)
		offset += sizes[i]
	}

	results := make([]sim.Result, 0, len(c.population))
	for _, w := range c.workers {
		results = append(results, w.Results()...)
	}
	return results
}

// selectFittest sorts ascending by fitness, then removes len(results)/2
// entries at pseudo-random positions |(U-0.5)*len|, which fall uniformly in
// the lower (less fit) half of the remaining slice, retaining the remainder
// as survivors. This stochastic-survivor-bias
// selector is kept exactly as the source intended rather than replaced
// with a strict top-half truncation.
func (c *Controller) selectFittest(results []sim.Result) []dna.CreatureDNA {
	sorted := make([]sim.Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness < sorted[j].Fitness
	})

	toRemove := len(results) / 2
	for i := 0; i < toRemove && len(sorted) > 0; i++ {
		idx := int(((c.rng.Float64() - 0.5) * float64(len(sorted))))
		if idx < 0 {
			idx = -idx
		}
		if idx >= len(sorted) {
			idx = len(sorted) - 1
		}
		sorted = append(sorted[:idx], sorted[idx+1:]...)
	}

	survivors := make([]dna.CreatureDNA, len(sorted))
	for i, r := range sorted {
		survivors[i] = r.DNA
	}
	return survivors
}

// reproduce produces two mutated offspring per survivor.
func (c *Controller) reproduce(survivors []dna.CreatureDNA) []dna.CreatureDNA {
	offspring := make([]dna.CreatureDNA, 0, len(survivors)*2)
	for _, parent := range survivors {
		offspring = append(offspring, dna.Mutate(parent, c.mutation, c.rng))
		offspring = append(offspring, dna.Mutate(parent, c.mutation, c.rng))
	}
	return offspring
}

// Start enables the generation cycle.
func (c *Controller) Start() {
	c.running.Store(true)
	c.controlCh <- cmdStart
}

// Stop disables the generation cycle and returns the last completed
// generation's results, waiting for the in-flight generation to finish.
func (c *Controller) Stop() []sim.Result {
	c.controlCh <- cmdStop
	return <-c.resultsCh
}

// IsRunning reports whether the generation cycle is currently enabled.
func (c *Controller) IsRunning() bool {
	return c.running.Load()
}

// Collector exposes the recorded per-generation telemetry.
func (c *Controller) Collector() *telemetry.Collector {
	return c.collector
}

// HallOfFame exposes the running hall of fame.
func (c *Controller) HallOfFame() *telemetry.HallOfFame {
	return c.hallOfFame
}
