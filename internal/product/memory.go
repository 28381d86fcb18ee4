package product

import (
	"fmt"
	"io/fs"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// MemoryReader serves products from memory.
// Products and OpenErrors must not be modified once the reader is in use.
type MemoryReader struct {
	// Products maps a path to its raw global attributes.
	Products map[string]map[string]string
	// OpenErrors makes Open fail for the given paths.
	OpenErrors map[string]error
	// ReadErrors makes GlobalAttributes fail for the given paths.
	ReadErrors map[string]error
}

// NewMemoryReader creates a MemoryReader over products.
func NewMemoryReader(products map[string]map[string]string) *MemoryReader {
	return &MemoryReader{
		Products:   products,
		OpenErrors: map[string]error{},
		ReadErrors: map[string]error{},
	}
}

// Open returns a handle on the in-memory product at path.
func (r *MemoryReader) Open(path string) (geoms.Product, error) {
	if err, ok := r.OpenErrors[path]; ok {
		return nil, err
	}
	attrs, ok := r.Products[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return &memoryProduct{attrs: attrs, readErr: r.ReadErrors[path]}, nil
}

type memoryProduct struct {
	attrs   map[string]string
	readErr error
	closed  bool
}

// GlobalAttributes returns a copy so callers cannot alter the stored product.
func (p *memoryProduct) GlobalAttributes() (map[string]string, error) {
	if p.closed {
		return nil, fs.ErrClosed
	}
	if p.readErr != nil {
		return nil, p.readErr
	}
	out := make(map[string]string, len(p.attrs))
	for k, v := range p.attrs {
		out[k] = v
	}
	return out, nil
}

func (p *memoryProduct) Close() error {
	if p.closed {
		return fs.ErrClosed
	}
	p.closed = true
	return nil
}
