package product

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// globalAttributesKey optionally wraps the attribute mapping:
//
//	global_attributes:
//	  PI_NAME: Doe;John
const globalAttributesKey = "global_attributes"

// YAMLReader reads flat YAML or JSON mappings of attribute name to scalar.
//
// Scalars keep their literal text, so DATA_FILE_VERSION: 001 stays "001".
// A null value reads as the empty string. Duplicate attribute names are
// rejected.
type YAMLReader struct{}

// NewYAMLReader creates a YAMLReader.
func NewYAMLReader() *YAMLReader {
	return &YAMLReader{}
}

// Open opens the dump at path.
func (r *YAMLReader) Open(path string) (geoms.Product, error) {
	return openFile(path, parseYAML)
}

func parseYAML(r io.Reader) (map[string]string, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of attribute names to values", root.Line)
	}

	if len(root.Content) == 2 && root.Content[0].Value == globalAttributesKey && root.Content[1].Kind == yaml.MappingNode {
		root = root.Content[1]
	}

	attrs := make(map[string]string, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if first, ok := seen[key.Value]; ok {
			return nil, fmt.Errorf("line %d: attribute %s already defined on line %d", key.Line, key.Value, first)
		}
		seen[key.Value] = key.Line
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: attribute %s must be a scalar", value.Line, key.Value)
		}
		if value.ShortTag() == "!!null" {
			attrs[key.Value] = ""
			continue
		}
		attrs[key.Value] = value.Value
	}
	return attrs, nil
}
