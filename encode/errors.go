// SPDX-License-Identifier: EPL-2.0

package encode

import "errors"

var (
	// ErrEncodeFailed wraps any failure reported by a BlockEncoder.
	ErrEncodeFailed = errors.New("encode failed")

	ErrChannelMismatch = errors.New("channel lengths differ")
	ErrInvalidParams   = errors.New("invalid encoder parameters")
)
