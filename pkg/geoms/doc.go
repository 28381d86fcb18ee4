// Package geoms defines the public contract of the GEOMS namespace extension:
// the reader and logger interfaces it consumes, the sentinel errors and exit
// codes it produces, and the published GEOMS conventions (namespace name,
// timestamp layout, file name pattern).
package geoms
