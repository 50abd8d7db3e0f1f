// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvbrain/archive"
)

var (
	// ErrDataFormat marks an archive with missing or undecodable members.
	// It is the archive package sentinel, so loader errors match either name.
	ErrDataFormat = archive.ErrDataFormat

	// ErrValidation marks violated shape or value invariants found by
	// Configure/Finalize and by operations that need a consistent network.
	ErrValidation = errors.New("connectivity: validation failed")

	// ErrInvalidArgument marks unsupported parameter values (scale mode,
	// region indices, time step, motif).
	ErrInvalidArgument = errors.New("connectivity: invalid argument")
)

// classify wraps sentinel with a formatted context and an optional cause.
// The sentinel stays reachable through Unwrap so errors.Is works with both
// the standard library and cockroachdb/errors.
func classify(sentinel, cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return errors.Wrap(sentinel, msg)
	}

	return errors.WithSecondaryError(errors.Wrapf(sentinel, "%s: %v", msg, cause), cause)
}

func validationf(cause error, format string, args ...any) error {
	return classify(ErrValidation, cause, format, args...)
}

func invalidArgf(format string, args ...any) error {
	return classify(ErrInvalidArgument, nil, format, args...)
}
