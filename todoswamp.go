// Package todoswamp provides an in-memory collection of short tagged text
// items with fuzzy subsequence search over description words and tags.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., inmem/, sqlite/, ristretto/).
package todoswamp
