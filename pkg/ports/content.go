package ports

import (
	"context"
	"image"
)

// Content is the image currently shown by a viewer.
type Content struct {
	URI   string
	Image image.Image
}

// ContentPicker asks the user for new content.
type ContentPicker interface {
	// Pick returns the chosen URI. ok is false when the user cancelled,
	// which is not an error.
	Pick(ctx context.Context) (uri string, ok bool, err error)
}

// ContentSource resolves a picked URI to a decoded image.
type ContentSource interface {
	// Load fetches and decodes the content at uri.
	Load(ctx context.Context, uri string) (image.Image, error)
}
