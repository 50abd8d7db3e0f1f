// SPDX-License-Identifier: MIT

// Package connectivity models a parcellated brain network: a weighted graph
// over regions with tract lengths, region geometry and conduction delays.
//
// A Connectivity goes through two phases. Constructors (LoadDefault,
// FromFile, GenerateSurrogate, New) return a raw value holding only the
// arrays they were given; derived fields (delays, region and connection
// counts, default labels, inferred hemispheres) stay empty. Configure, or the
// pure Finalize, validates shape invariants and computes those fields.
//
//	conn, err := connectivity.FromFile("connectivity_68.zip")
//	if err != nil { ... }
//	if err := conn.Configure(); err != nil { ... }
//	w, err := conn.ScaledWeights(connectivity.ScaleTract)
//
// Errors are classified by three sentinels matched with errors.Is:
// ErrDataFormat (archive problems), ErrValidation (shape or value invariants)
// and ErrInvalidArgument (unsupported parameters).
package connectivity
