// SPDX-License-Identifier: MIT

// Package spectral describes frequency-domain results derived from a time
// series: Fourier spectra, wavelet coefficients and (complex) coherence
// spectra.
//
// The datatypes carry their arrays and parameters only; the transforms that
// produce them live elsewhere. Each type reports derived quantities such as
// the frequency step and the maximum resolvable frequency, and a summary
// info mapping for display. SummaryInfo does not require Configure.
package spectral
