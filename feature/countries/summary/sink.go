package summary

import (
	"bytes"
	"context"
	"time"
)

// ContentType of every summary artifact.
const ContentType = "image/png"

// Artifact is a rendered summary image.
type Artifact struct {
	Data        []byte
	ContentType string
	ModTime     time.Time
}

// Sink stores and serves the rendered summary image.
type Sink interface {
	// Store renders rec and replaces the current artifact.
	Store(ctx context.Context, rec Record) error
	// Exists reports whether an artifact has been stored.
	Exists(ctx context.Context) (bool, error)
	// Open returns the current artifact, or an ErrNotFound-classified error.
	Open(ctx context.Context) (*Artifact, error)
}

func renderBytes(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
