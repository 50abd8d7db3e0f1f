// SPDX-License-Identifier: MIT

package archive

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrDataFormat is returned when an archive is missing a required member or
// a member cannot be decoded. Match it with errors.Is; the underlying cause
// (zip, codec or parse error) is attached as a secondary error for %+v.
var ErrDataFormat = errors.New("archive: data format error")

// dataFormatf wraps ErrDataFormat with a formatted context and, when present,
// the decoding cause.
func dataFormatf(cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause == nil {
		return errors.Wrap(ErrDataFormat, msg)
	}

	return errors.WithSecondaryError(errors.Wrapf(ErrDataFormat, "%s: %v", msg, cause), cause)
}
