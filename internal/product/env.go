package product

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/joho/godotenv"

	"github.com/stcorp/muninn-geoms/pkg/geoms"
)

// EnvReader reads KEY=VALUE attribute dumps.
//
//	PI_NAME="Doe;John"
//	DATA_START_DATE=20200101T000000Z
//
// Quoting, comments and escapes follow dotenv rules, except that $VAR and
// ${VAR} are kept literally: attribute values are never expanded.
type EnvReader struct{}

// NewEnvReader creates an EnvReader.
func NewEnvReader() *EnvReader {
	return &EnvReader{}
}

// Open opens the dump at path.
func (r *EnvReader) Open(path string) (geoms.Product, error) {
	return openFile(path, parseEnv)
}

func parseEnv(r io.Reader) (map[string]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// godotenv expands variables in unquoted and double-quoted values, so
	// '$' is swapped for a placeholder absent from the input while parsing.
	placeholder, err := dollarPlaceholder(data)
	if err != nil {
		return nil, err
	}
	data = bytes.ReplaceAll(data, []byte("$"), []byte(placeholder))

	attrs, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	for k, v := range attrs {
		attrs[k] = strings.ReplaceAll(v, placeholder, "$")
	}
	return attrs, nil
}

// dollarPlaceholder returns a private-use rune that does not occur in data.
func dollarPlaceholder(data []byte) (string, error) {
	for r := '\uE000'; r <= '\uF8FF'; r++ {
		if !bytes.ContainsRune(data, r) {
			return string(r), nil
		}
	}
	return "", errors.New("no placeholder available for '$'")
}
