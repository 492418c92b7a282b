package telemetry

import (
	"sync"
	"testing"
	"time"
)

func TestRecordComputesSummary(t *testing.T) {
	c := NewCollector()
	result := c.Record(0, 10*time.Millisecond, []float64{1, 2, 3, 4, 5}, 3)

	if result.Index != 0 {
		t.Errorf("Index = %v, want 0", result.Index)
	}
	if result.Best != 5 {
		t.Errorf("Best = %v, want 5", result.Best)
	}
	if result.Worst != 1 {
		t.Errorf("Worst = %v, want 1", result.Worst)
	}
	if result.Mean != 3 {
		t.Errorf("Mean = %v, want 3", result.Mean)
	}
	if result.SurvivorCount != 3 {
		t.Errorf("SurvivorCount = %v, want 3", result.SurvivorCount)
	}
}

func TestResultsReturnsACopy(t *testing.T) {
	c := NewCollector()
	c.Record(0, 0, []float64{1}, 1)

	results := c.Results()
	results[0].Index = 99

	if c.Latest().Index == 99 {
		t.Error("mutating the slice returned by Results() should not affect the collector's internal state")
	}
}

func TestLatestOnEmptyCollector(t *testing.T) {
	c := NewCollector()
	if got := c.Latest(); got.Index != 0 || got.Best != 0 {
		t.Errorf("Latest() on an empty collector = %+v, want zero value", got)
	}
}

func TestLatestReturnsMostRecent(t *testing.T) {
	c := NewCollector()
	c.Record(0, 0, []float64{1}, 1)
	c.Record(1, 0, []float64{2}, 1)

	if got := c.Latest().Index; got != 1 {
		t.Errorf("Latest().Index = %v, want 1", got)
	}
}

func TestRecordConcurrentWithResults(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			c.Record(i, 0, []float64{1, 2, 3}, 1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = c.Results()
			_ = c.Latest()
		}
	}()
	wg.Wait()

	if len(c.Results()) != 100 {
		t.Errorf("len(Results()) = %d, want 100", len(c.Results()))
	}
}
