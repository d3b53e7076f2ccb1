package mocks

import (
	"image"
	"sort"
	"sync"

	"github.com/user/pinchview/pkg/ports"
)

// DebugSink keeps debug artifacts in memory. Set SaveFrameErr or SaveJSONErr to
// make the matching saves fail.
type DebugSink struct {
	mu      sync.RWMutex
	enabled bool
	frames  map[int]image.Image

	LayoutJSON   []byte
	TraceJSON    []byte
	SaveFrameErr error
	SaveJSONErr  error
}

// NewDebugSink creates a DebugSink that reports enabled from Enabled.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		frames:  make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveLayoutJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveJSONErr != nil {
		return m.SaveJSONErr
	}
	m.LayoutJSON = data
	return nil
}

func (m *DebugSink) SaveTraceJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveJSONErr != nil {
		return m.SaveJSONErr
	}
	m.TraceJSON = data
	return nil
}

func (m *DebugSink) SaveFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveFrameErr != nil {
		return m.SaveFrameErr
	}
	m.frames[index] = img
	return nil
}

// FrameCount returns the number of saved frames.
func (m *DebugSink) FrameCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.frames)
}

// Frame returns the saved frame at index.
func (m *DebugSink) Frame(index int) (image.Image, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.frames[index]
	return img, ok
}

// Indices returns the saved frame indices in ascending order.
func (m *DebugSink) Indices() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]int, 0, len(m.frames))
	for i := range m.frames {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

var _ ports.DebugSink = (*DebugSink)(nil)
