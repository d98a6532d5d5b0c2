// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrPartialFrame      = errors.New("sample count must be multiple of channels")
	ErrInvalidChannels   = errors.New("channel count must be positive")
	ErrInvalidRate       = errors.New("sample rate must be positive")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrNoProgress        = errors.New("source returned no samples repeatedly")
)
