// SPDX-License-Identifier: EPL-2.0

// Package memio provides in-memory io.ReadSeeker and io.WriteSeeker
// implementations for codecs that insist on seekable streams.
package memio

import (
	"errors"
	"fmt"
	"io"
)

var ErrNegativePosition = errors.New("negative position")

func seek(cur, size, offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = cur + offset
	case io.SeekEnd:
		pos = size + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if pos < 0 {
		return 0, ErrNegativePosition
	}

	return pos, nil
}

// ReadSeeker reads from a byte slice.
type ReadSeeker struct {
	data   []byte
	offset int64
}

func NewReadSeeker(data []byte) *ReadSeeker {
	return &ReadSeeker{data: data}
}

// AsReadSeeker returns r itself when it already seeks, otherwise it buffers
// the whole stream in memory.
func AsReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering stream: %w", err)
	}

	return NewReadSeeker(data), nil
}

func (rs *ReadSeeker) Read(p []byte) (int, error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n := copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)

	return n, nil
}

func (rs *ReadSeeker) Seek(offset int64, whence int) (int64, error) {
	pos, err := seek(rs.offset, int64(len(rs.data)), offset, whence)
	if err != nil {
		return 0, err
	}
	rs.offset = pos

	return pos, nil
}

// WriteSeeker is a growable byte buffer that supports seeking back to
// patch already written bytes (RIFF sizes and the like).
type WriteSeeker struct {
	buf    []byte
	offset int64
}

func (ws *WriteSeeker) Write(p []byte) (int, error) {
	end := ws.offset + int64(len(p))
	if end > int64(len(ws.buf)) {
		if end > int64(cap(ws.buf)) {
			grown := make([]byte, end, max(end, 2*int64(cap(ws.buf))))
			copy(grown, ws.buf)
			ws.buf = grown
		} else {
			ws.buf = ws.buf[:end]
		}
	}
	copy(ws.buf[ws.offset:], p)
	ws.offset = end

	return len(p), nil
}

func (ws *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	pos, err := seek(ws.offset, int64(len(ws.buf)), offset, whence)
	if err != nil {
		return 0, err
	}
	ws.offset = pos

	return pos, nil
}

// Bytes returns everything written so far.
func (ws *WriteSeeker) Bytes() []byte { return ws.buf }

// Reset drops the buffer and rewinds to the start.
func (ws *WriteSeeker) Reset() {
	ws.buf = ws.buf[:0]
	ws.offset = 0
}
