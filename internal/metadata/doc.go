// Package metadata extracts GEOMS metadata from scientific data products.
//
// # Overview
//
// GEOMS products carry their metadata as global attributes with upper-case
// names (PI_NAME, DATA_START_DATE, FILE_DOI, ...). The extractor reads those
// attributes through a geoms.AttributeReader and maps them onto the fields of
// the geoms namespace (see package schema).
//
// # Extraction Steps
//
//  1. Open the product and enumerate its global attributes. The handle is
//     always closed, even when the reader fails or panics mid-read.
//  2. Drop reserved attributes (names starting with "_") and remove NUL
//     padding from the remaining values.
//  3. Copy required attributes, failing on the first missing one.
//  4. Copy optional attributes that are present.
//  5. Parse DATA_START_DATE, DATA_STOP_DATE and FILE_GENERATION_DATE with
//     geoms.DateTimeFormat (YYYYMMDDTHHMMSSZ, UTC).
//
// Extraction is all-or-nothing: either a complete Record or an error.
//
// # Usage
//
//	extractor := metadata.NewExtractor(product.NewAutoReader(), logger)
//	rec, err := extractor.Extract("groundbased_ftir.o3_..._001.cdl")
//	switch {
//	case errors.Is(err, geoms.ErrExtraction):
//	    // file could not be opened or read
//	case errors.Is(err, geoms.ErrMissingAttribute), errors.Is(err, geoms.ErrTimestampFormat):
//	    // file is not valid GEOMS
//	}
//
// # Package Structure
//
//   - record.go: Record, the populated namespace instance
//   - extractor.go: Extractor and the attribute-to-record mapping
//   - timestamp.go: GEOMS timestamp parsing and formatting
//   - errors.go: MetadataError with attribute context and hints
//   - identity.go: deterministic product UUIDs
//   - filename.go: GEOMS file naming convention
package metadata
