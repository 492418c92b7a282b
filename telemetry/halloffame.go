package telemetry

import (
	"encoding/json"
	"math/rand"
	"sort"
	"sync"

	"github.com/Noxbuds/evolution-simulator/dna"
)

// Entry pairs one creature's DNA with the fitness it was scored at.
type Entry struct {
	DNA     dna.CreatureDNA
	Fitness float64
}

// HallOfFame retains the top-maxSize (DNA, fitness) pairs ever seen, sorted
// descending by fitness, ties broken by insertion order. Safe for concurrent
// use: Consider runs on the evolution controller's own goroutine while
// Sample/Best/MarshalJSON are typically called from the CLI's main goroutine.
type HallOfFame struct {
	mu      sync.Mutex
	entries []Entry
	maxSize int
	rng     *rand.Rand
}

// NewHallOfFame creates an empty hall of fame with the given capacity.
func NewHallOfFame(maxSize int, rng *rand.Rand) *HallOfFame {
	return &HallOfFame{
		entries: make([]Entry, 0, maxSize),
		maxSize: maxSize,
		rng:     rng,
	}
}

// Consider offers a (dna, fitness) pair for entry. Returns true if it was
// added (the hall had room, or it outranked the hall's weakest entry).
func (h *HallOfFame) Consider(d dna.CreatureDNA, fitness float64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	idx := sort.Search(len(h.entries), func(i int) bool {
		return h.entries[i].Fitness < fitness
	})

	if len(h.entries) >= h.maxSize && idx >= h.maxSize {
		return false
	}

	entry := Entry{DNA: d.Clone(), Fitness: fitness}
	h.entries = append(h.entries, Entry{})
	copy(h.entries[idx+1:], h.entries[idx:])
	h.entries[idx] = entry

	if len(h.entries) > h.maxSize {
		h.entries = h.entries[:h.maxSize]
	}

	return true
}

// Sample selects an entry via k=3 tournament selection. Returns the zero
// Entry and false if the hall is empty.
func (h *HallOfFame) Sample() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return Entry{}, false
	}

	const tournamentSize = 3
	best := h.entries[h.rng.Intn(len(h.entries))]
	for i := 1; i < tournamentSize && i < len(h.entries); i++ {
		candidate := h.entries[h.rng.Intn(len(h.entries))]
		if candidate.Fitness > best.Fitness {
			best = candidate
		}
	}

	return best, true
}

// Best returns the highest-fitness entry, or the zero Entry and false if
// the hall is empty.
func (h *HallOfFame) Best() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[0], true
}

// Len returns the number of entries currently held.
func (h *HallOfFame) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// entryJSON is the JSON-serializable representation of a hall entry.
type entryJSON struct {
	DNA     dna.CreatureDNA `json:"dna"`
	Fitness float64         `json:"fitness"`
}

// MarshalJSON serializes the hall of fame as a fitness-descending array.
func (h *HallOfFame) MarshalJSON() ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]entryJSON, len(h.entries))
	for i, e := range h.entries {
		out[i] = entryJSON{DNA: e.DNA, Fitness: e.Fitness}
	}
	return json.MarshalIndent(out, "", "  ")
}
