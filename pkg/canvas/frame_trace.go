package canvas

import (
	"sync"
	"time"
)

const (
	frameTraceSamplesDefault   = 240
	defaultFrameTraceThreshold = 16667 * time.Microsecond
)

// FrameSample is a single frame trace sample.
type FrameSample struct {
	Frame             int64   `json:"frame"`
	ElapsedMs         float64 `json:"elapsedMs"`
	WorkMs            float64 `json:"workMs"`
	Tasks             int     `json:"tasks"`
	GeometriesDrawn   int     `json:"geometriesDrawn"`
	GeometriesRemoved int     `json:"geometriesRemoved,omitempty"`
	TasksRemoved      int     `json:"tasksRemoved,omitempty"`
	Valid             bool    `json:"valid"`
	Failed            bool    `json:"failed,omitempty"`
}

// FrameTimeline is a chronological snapshot of a trace buffer.
type FrameTimeline struct {
	Canvas      string        `json:"canvas,omitempty"`
	Samples     []FrameSample `json:"samples"`
	SlowFrames  int           `json:"slowFrames"`
	ThresholdMs float64       `json:"thresholdMs"`
}

// FrameTraceBuffer stores recent frame samples in a ring buffer. It may be
// read from other goroutines while the canvas draws.
type FrameTraceBuffer struct {
	mu        sync.RWMutex
	samples   []FrameSample
	index     int
	count     int
	slow      int
	threshold time.Duration
}

// NewFrameTraceBuffer creates a buffer holding capacity samples. Frames
// whose work takes longer than threshold count as slow. Non-positive
// arguments select defaults of 240 samples and one 60Hz frame.
func NewFrameTraceBuffer(capacity int, threshold time.Duration) *FrameTraceBuffer {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultFrameTraceThreshold
	}
	return &FrameTraceBuffer{
		samples:   make([]FrameSample, capacity),
		threshold: threshold,
	}
}

// Capacity returns the buffer capacity.
func (b *FrameTraceBuffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

// Threshold returns the slow frame threshold.
func (b *FrameTraceBuffer) Threshold() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.threshold
}

// Add records a frame sample and updates the slow frame count.
func (b *FrameTraceBuffer) Add(sample FrameSample, work time.Duration) {
	b.mu.Lock()
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
	if work > b.threshold {
		b.slow++
	}
	b.mu.Unlock()
}

// Snapshot returns a chronological copy of samples and stats.
func (b *FrameTraceBuffer) Snapshot() FrameTimeline {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return FrameTimeline{ThresholdMs: durationToMillis(b.threshold)}
	}

	result := make([]FrameSample, b.count)
	if b.count < len(b.samples) {
		copy(result, b.samples[:b.count])
	} else {
		copy(result, b.samples[b.index:])
		copy(result[len(b.samples)-b.index:], b.samples[:b.index])
	}

	return FrameTimeline{
		Samples:     result,
		SlowFrames:  b.slow,
		ThresholdMs: durationToMillis(b.threshold),
	}
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
