// Package cli implements the muninn-geoms command line with cobra.
//
// Commands write their results to the command's output stream and their
// diagnostics through a geoms.Logger on the error stream, so they can be
// driven from tests with SetOut/SetErr.
package cli
