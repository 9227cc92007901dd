// Package writers maps output format names to result writers so callers
// dispatch by string without a switch per call site.
package writers
