// Package dirpicker provides a content picker over the images in a directory.
package dirpicker

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/user/pinchview/pkg/ports"
)

// Order selects how the next image is chosen.
type Order int

const (
	// Sequential walks the directory in name order and wraps around.
	Sequential Order = iota
	// Random picks uniformly, never the same file twice in a row when
	// more than one is available.
	Random
)

// ParseOrder parses "sequential" or "random". Unknown values yield Sequential.
func ParseOrder(s string) Order {
	if strings.EqualFold(s, "random") {
		return Random
	}
	return Sequential
}

// ImageExts are the extensions the picker offers.
var ImageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// Picker implements ports.ContentPicker by listing a directory.
// The listing is refreshed on every pick.
type Picker struct {
	mu    sync.Mutex
	fs    ports.FileSystem
	dir   string
	order Order
	rng   *rand.Rand
	last  string
	next  int
}

// New creates a Picker over dir. seed only matters for Random order.
func New(fs ports.FileSystem, dir string, order Order, seed int64) *Picker {
	return &Picker{
		fs:    fs,
		dir:   dir,
		order: order,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Pick returns the next image path. An empty or missing directory behaves like
// a dismissed picker: ok is false and no error is returned.
func (p *Picker) Pick(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	images, err := p.fs.ListFiles(p.dir, ImageExts...)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("list %s: %w", p.dir, err)
	}
	if len(images) == 0 {
		return "", false, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var name string
	switch p.order {
	case Random:
		name = images[p.rng.Intn(len(images))]
		for len(images) > 1 && name == p.last {
			name = images[p.rng.Intn(len(images))]
		}
	default:
		name = images[p.next%len(images)]
		p.next++
	}
	p.last = name

	return filepath.Join(p.dir, name), true, nil
}

// Ensure Picker implements ports.ContentPicker
var _ ports.ContentPicker = (*Picker)(nil)
