package product

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrUnsupportedFormat is returned by AutoReader for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported product format")

type parseFunc func(r io.Reader) (map[string]string, error)

// fileProduct is an open attribute dump; parsing happens on demand.
type fileProduct struct {
	file  *os.File
	parse parseFunc
}

func openFile(path string, parse parseFunc) (*fileProduct, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access product: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("product path is a directory: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open product: %w", err)
	}
	return &fileProduct{file: f, parse: parse}, nil
}

func (p *fileProduct) GlobalAttributes() (map[string]string, error) {
	if _, err := p.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind %s: %w", p.file.Name(), err)
	}
	attrs, err := p.parse(bufio.NewReader(p.file))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p.file.Name(), err)
	}
	return attrs, nil
}

func (p *fileProduct) Close() error {
	return p.file.Close()
}
