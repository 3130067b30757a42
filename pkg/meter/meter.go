// Package meter tracks running averages of run metrics (loss, accuracy,
// epoch duration) and optionally exposes them to Prometheus.
package meter

import "sync"

// AverageMeter accumulates a weighted running average of an observed
// value. The zero value is ready to use. Safe for concurrent use.
type AverageMeter struct {
	mu    sync.Mutex
	last  float64
	sum   float64
	count int64
}

func NewAverageMeter() *AverageMeter {
	return &AverageMeter{}
}

// Update records value with weight n (typically the batch size).
func (m *AverageMeter) Update(value float64, n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = value
	m.sum += value * float64(n)
	m.count += n
}

// Reset discards all recorded observations.
func (m *AverageMeter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = 0
	m.sum = 0
	m.count = 0
}

// Average returns the weighted mean of all observations since the last
// reset, or 0 before the first update.
func (m *AverageMeter) Average() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

// Last returns the most recently observed value.
func (m *AverageMeter) Last() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Sum returns the weighted sum of all observations.
func (m *AverageMeter) Sum() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sum
}

// Count returns the total weight recorded.
func (m *AverageMeter) Count() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}
