// Package storage uploads product images to an S3-compatible bucket and
// hands back the public URL under which they are served.
package storage

import (
	"context"
	"io"
)

// ImageUpload is a single image file received from a client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadSeeker
}

// ImageStore stores product images.
type ImageStore interface {
	// Upload stores the image, makes it publicly readable and returns its public URL.
	Upload(ctx context.Context, img ImageUpload) (string, error)
}
