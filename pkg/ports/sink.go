package ports

import "image"

// DebugSink receives intermediate artifacts of a replay run. Callers check Enabled
// before doing work whose only consumer is the sink; a failed save never aborts a run.
type DebugSink interface {
	Enabled() bool

	// SaveLayoutJSON stores the computed viewport layout.
	SaveLayoutJSON(data []byte) error
	// SaveTraceJSON stores the per-frame transform trace.
	SaveTraceJSON(data []byte) error
	// SaveFrame stores rendered frame index. Sinks may keep only a subset.
	SaveFrame(index int, img image.Image) error
}
