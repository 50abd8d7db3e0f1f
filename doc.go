// SPDX-License-Identifier: MIT

// Package lvbrain is an in-memory toolkit for parcellated brain networks:
// loading, generating, validating and summarizing connectivity, plus the
// spectral datatypes computed from simulated time series.
//
// 🧠 What is in the box?
//
//	• Connectivity model: weights, tract lengths, centres, labels, delays
//	• Two-phase lifecycle: raw constructors, then Configure/Finalize
//	• Surrogate networks: ring, linear, all-to-all and random motifs
//	• Archives: zip (deflate, bzip2, zstd, xz, nested payloads) and HDF5
//	• Spectral datatypes: Fourier, wavelet, coherence, complex coherence
//	• Summary info encoded as a table, JSON, YAML or TOML
//
// Under the hood, everything is organized in subpackages:
//
//	archive/        zip/HDF5 readers and the zip writer for named arrays
//	connectivity/   the Connectivity model, surrogate generator, scaling
//	matrix/         dense row-major matrix, validators and reductions
//	spectral/       TimeSeries and the four spectral datatypes
//	summary/        display key/value mapping and its encoders
//	config/         viper-backed CLI settings
//	logger/         zap logger used by the CLI
//	cmd/lvbrain/    cobra CLI: default, surrogate, info, scale, spectral
//
// Quick example:
//
//	conn, err := connectivity.LoadDefault()
//	if err != nil { ... }
//	if err := conn.Configure(); err != nil { ... }
//	fmt.Println(conn.SummaryInfo()["Number of regions"]) // 76
//
//	go install github.com/katalvlaran/lvbrain/cmd/lvbrain@latest
package lvbrain
