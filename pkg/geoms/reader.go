package geoms

// AttributeReader opens scientific data products so their global
// attributes can be enumerated. It is the file-format collaborator of
// the extractor; implementations live outside the extraction logic.
type AttributeReader interface {
	// Open acquires a handle on the product at path. The caller must Close it.
	Open(path string) (Product, error)
}

// Product is an open handle on a single data product.
type Product interface {
	// GlobalAttributes returns every file-level attribute as name/value pairs.
	// Values are returned raw, including any NUL padding from fixed-width storage.
	GlobalAttributes() (map[string]string, error)

	// Close releases the handle.
	Close() error
}
