package engine

import (
	"time"

	"github.com/go-drift/retain/pkg/core"
	"github.com/go-drift/retain/pkg/graphics"
)

const (
	frameTraceSamplesDefault   = 120
	defaultFrameTraceThreshold = 16667 * time.Microsecond
)

// FramePhaseTimings captures time spent in each phase of a render pass.
type FramePhaseTimings struct {
	Layout time.Duration
	Paint  time.Duration
}

// FrameSample describes one RenderFrame call.
type FrameSample struct {
	Timestamp time.Time
	Size      graphics.Size
	Duration  time.Duration
	Phases    FramePhaseTimings
	Widgets   int
	// Requested reports whether a frame request was pending when the pass began.
	Requested bool
}

// FrameTimeline is a chronological copy of the trace.
type FrameTimeline struct {
	Samples       []FrameSample
	DroppedFrames int
	Threshold     time.Duration
}

// FrameTraceBuffer stores recent frame samples in a ring buffer.
type FrameTraceBuffer struct {
	samples   []FrameSample
	index     int
	count     int
	dropped   int
	threshold time.Duration
}

// NewFrameTraceBuffer creates a buffer holding capacity samples. Frames
// slower than threshold count as dropped.
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
	return len(b.samples)
}

// Add records a frame sample.
func (b *FrameTraceBuffer) Add(sample FrameSample) {
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
	if sample.Duration > b.threshold {
		b.dropped++
	}
}

// Snapshot returns the samples oldest first.
func (b *FrameTraceBuffer) Snapshot() FrameTimeline {
	if b.count == 0 {
		return FrameTimeline{Threshold: b.threshold}
	}

	result := make([]FrameSample, b.count)
	if b.count < len(b.samples) {
		copy(result, b.samples[:b.count])
	} else {
		copy(result, b.samples[b.index:])
		copy(result[len(b.samples)-b.index:], b.samples[:b.index])
	}

	return FrameTimeline{
		Samples:       result,
		DroppedFrames: b.dropped,
		Threshold:     b.threshold,
	}
}

func countWidgetTree(tree *core.Tree, root core.Widget) int {
	count := 0
	tree.Walk(root, func(core.Widget, int) {
		count++
	})
	return count
}
