package metadata

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NamespaceProductIdentity is the UUID namespace for deterministic product identities,
// derived from "muninn-geoms/product-identity/v1" within the standard URL namespace.
var NamespaceProductIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("muninn-geoms/product-identity/v1"))

// ProductID returns a deterministic UUID v5 for a GEOMS product.
//
// GEOMS file names are unique per product and version, so the identity is
// derived from the normalized file name (FILE_NAME or the base name of the
// path). The same product always maps to the same UUID regardless of where
// it is stored.
//
// Examples:
//   - "/data/in/ftir_001.hdf" → uuid_v5(namespace, "ftir_001.hdf")
//   - "FTIR_001.HDF" → uuid_v5(namespace, "ftir_001.hdf")  (case-insensitive)
func ProductID(fileName string) uuid.UUID {
	return uuid.NewSHA1(NamespaceProductIdentity, []byte(normalizeFileName(fileName)))
}

// normalizeFileName lower-cases the base name of fileName.
// Backslashes are treated as separators so Windows paths normalize the same way.
func normalizeFileName(fileName string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(fileName), "\\", "/")
	return strings.ToLower(filepath.Base(normalized))
}
