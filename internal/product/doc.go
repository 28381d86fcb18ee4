// Package product provides geoms.AttributeReader implementations.
//
// Binary HDF4/HDF5/netCDF products are read by the archive's native tooling;
// these readers consume the textual forms that tooling produces and that
// test fixtures are written in:
//   - CDLReader: netCDF CDL headers as printed by `ncdump -h`
//   - YAMLReader: flat YAML (or JSON) mappings of attribute name to value
//   - EnvReader: KEY=VALUE attribute dumps
//   - MemoryReader: attributes held in memory, for embedding and tests
//
// AutoReader picks one of the file readers by extension, and NewReader
// resolves a reader by the names used in configuration.
//
// Every file reader opens the file in Open and only parses it when
// GlobalAttributes is called, so the handle lifetime matches the scope the
// extractor manages.
package product
