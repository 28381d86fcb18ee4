package product

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// NewReaderFunc constructs an attribute reader.
type NewReaderFunc func() geoms.AttributeReader

// readers maps configuration names to reader factories.
var readers = map[string]NewReaderFunc{
	"auto": func() geoms.AttributeReader { return NewAutoReader() },
	"cdl":  func() geoms.AttributeReader { return NewCDLReader() },
	"yaml": func() geoms.AttributeReader { return NewYAMLReader() },
	"env":  func() geoms.AttributeReader { return NewEnvReader() },
}

// NewReader returns the reader registered under name.
func NewReader(name string) (geoms.AttributeReader, error) {
	factory, ok := readers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown reader %q (available: %s): %w",
			name, strings.Join(Names(), ", "), geoms.ErrInvalidConfig)
	}
	return factory(), nil
}

// Names returns the registered reader names in sorted order.
func Names() []string {
	names := make([]string, 0, len(readers))
	for name := range readers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AutoReader selects a file reader from the product's extension.
type AutoReader struct {
	byExtension map[string]geoms.AttributeReader
}

// NewAutoReader creates an AutoReader covering every file reader.
func NewAutoReader() *AutoReader {
	cdl, yml, env := NewCDLReader(), NewYAMLReader(), NewEnvReader()
	return &AutoReader{byExtension: map[string]geoms.AttributeReader{
		".cdl":  cdl,
		".txt":  cdl,
		".yaml": yml,
		".yml":  yml,
		".json": yml,
		".env":  env,
	}}
}

// Open dispatches to the reader registered for the extension of path.
func (a *AutoReader) Open(path string) (geoms.Product, error) {
	ext := strings.ToLower(filepath.Ext(path))
	reader, ok := a.byExtension[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q (expected .cdl, .txt, .yaml, .yml, .json or .env)", ErrUnsupportedFormat, ext)
	}
	return reader.Open(path)
}
