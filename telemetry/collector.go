// Package telemetry records per-generation evolution results and a running
// hall of fame, and exports both to disk.
package telemetry

import (
	"log/slog"
	"sync"
	"time"
)

// GenerationResult summarizes one completed generation of evolution.
type GenerationResult struct {
	Index         int           `csv:"generation"`
	Duration      time.Duration `csv:"-"`
	DurationMS    int64         `csv:"duration_ms"`
	Best          float64       `csv:"best"`
	Mean          float64       `csv:"mean"`
	StdDev        float64       `csv:"stddev"`
	Worst         float64       `csv:"worst"`
	SurvivorCount int           `csv:"survivors"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r GenerationResult) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", r.Index),
		slog.Duration("duration", r.Duration),
		slog.Float64("best", r.Best),
		slog.Float64("mean", r.Mean),
		slog.Float64("stddev", r.StdDev),
		slog.Float64("worst", r.Worst),
		slog.Int("survivors", r.SurvivorCount),
	)
}

// Collector accumulates one GenerationResult per generation. Safe for
// concurrent use: Record runs on the evolution controller's own goroutine
// while Results/Latest are typically polled from the CLI's main goroutine.
type Collector struct {
	mu      sync.Mutex
	results []GenerationResult
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record computes a GenerationResult from a generation's fitness values and
// appends it to the collector's history.
func (c *Collector) Record(index int, duration time.Duration, fitnesses []float64, survivorCount int) GenerationResult {
	mean, stddev := fitnessStats(fitnesses)
	worst, best := minMax(fitnesses)

	result := GenerationResult{
		Index:         index,
		Duration:      duration,
		DurationMS:    duration.Milliseconds(),
		Best:          best,
		Mean:          mean,
		StdDev:        stddev,
		Worst:         worst,
		SurvivorCount: survivorCount,
	}

	c.mu.Lock()
	c.results = append(c.results, result)
	c.mu.Unlock()

	return result
}

// Results returns a copy of every recorded generation, in order.
func (c *Collector) Results() []GenerationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]GenerationResult, len(c.results))
	copy(out, c.results)
	return out
}

// Latest returns the most recently recorded generation, or the zero value
// if none has been recorded yet.
func (c *Collector) Latest() GenerationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.results) == 0 {
		return GenerationResult{}
	}
	return c.results[len(c.results)-1]
}
