package services

import "github.com/sankalp021/intervue/internal/models"

// Tally holds the running vote counts for the active poll, one counter per
// option index. Not safe for concurrent use on its own; the Controller's lock
// covers every access.
type Tally struct {
	counts []int
}

func NewTally() *Tally {
	return &Tally{}
}

// Reset discards prior state and zeroes counters for indices 0..optionCount-1.
func (t *Tally) Reset(optionCount int) {
	t.counts = make([]int, optionCount)
}

// Increment is a no-op for indices outside the initialized range.
func (t *Tally) Increment(optionIndex int) {
	if optionIndex < 0 || optionIndex >= len(t.counts) {
		return
	}
	t.counts[optionIndex]++
}

// Snapshot returns (index, count) pairs in ascending index order.
func (t *Tally) Snapshot() []models.ResultPair {
	pairs := make([]models.ResultPair, len(t.counts))
	for i, count := range t.counts {
		pairs[i] = models.ResultPair{i, count}
	}
	return pairs
}

func (t *Tally) Total() int {
	total := 0
	for _, count := range t.counts {
		total += count
	}
	return total
}
