// Package agency resolves the agency configuration that drives job titles.
// The configuration is read from the workspace, then from a bundled copy
// shipped next to the binary, and finally from built-in defaults. A missing
// or malformed file never fails the run; it is logged and the next source is
// tried.
package agency
