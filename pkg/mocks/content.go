package mocks

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/user/pinchview/pkg/ports"
)

// ContentPicker is a mock implementation of ports.ContentPicker.
type ContentPicker struct {
	PickFunc func(ctx context.Context) (string, bool, error)

	URI       string
	Cancelled bool
	Calls     int
}

func (m *ContentPicker) Pick(ctx context.Context) (string, bool, error) {
	m.Calls++
	if m.PickFunc != nil {
		return m.PickFunc(ctx)
	}
	if m.Cancelled {
		return "", false, nil
	}
	return m.URI, true, nil
}

var _ ports.ContentPicker = (*ContentPicker)(nil)

// ContentSource is a mock implementation of ports.ContentSource.
// Images are served from a map keyed by URI.
type ContentSource struct {
	mu     sync.RWMutex
	images map[string]image.Image

	LoadFunc func(ctx context.Context, uri string) (image.Image, error)
}

// NewContentSource creates a new mock ContentSource.
func NewContentSource() *ContentSource {
	return &ContentSource{images: make(map[string]image.Image)}
}

// Add registers an image under uri.
func (m *ContentSource) Add(uri string, img image.Image) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images[uri] = img
}

func (m *ContentSource) Load(ctx context.Context, uri string) (image.Image, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, uri)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if img, ok := m.images[uri]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("content not found: %s", uri)
}

var _ ports.ContentSource = (*ContentSource)(nil)
