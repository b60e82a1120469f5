// Copyright (C) 2024 UText Authors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package utf8

import (
	"io"

	"golang.org/x/exp/slices"

	"github.com/sneller-oss/utext/text"
)

// EncodeUTF8 returns the UTF-8 bytes backing t. Since Text already stores
// its scalars as UTF-8, this is a single buffer copy.
func EncodeUTF8(t text.Text) []byte {
	return slices.Clone(t.Bytes())
}

// EncodeUTF8Builder returns an io.Reader that yields t's UTF-8 bytes,
// chunking across however many Read calls the caller's buffer size
// requires. This is the Go rendering of spec §4.G's buffer-fill builder
// protocol: each Read is one step of that protocol, writing as much as
// fits in the caller's buffer and never writing past its end.
func EncodeUTF8Builder(t text.Text) io.Reader {
	return &byteReader{remaining: t.Bytes()}
}

type byteReader struct {
	remaining []byte
}

func (r *byteReader) Read(buf []byte) (int, error) {
	if len(r.remaining) == 0 {
		return 0, io.EOF
	}
	n := copy(buf, r.remaining)
	r.remaining = r.remaining[n:]
	return n, nil
}

// EscapePrimitive is the bounded serialiser spec §4.G's
// encode_utf8_builder_escaped takes: Escape writes the encoding of b to
// dst (whose length is at least SizeBound()) and returns how many bytes
// it wrote. SizeBound must be a fixed upper bound independent of b; a
// SizeBound of 0 is a caller error (spec §9's open question is resolved
// that way here) and EncodeUTF8BuilderEscaped panics rather than silently
// looping forever trying to make room for zero bytes.
type EscapePrimitive interface {
	SizeBound() int
	Escape(b byte, dst []byte) int
}

// EncodeUTF8BuilderEscaped returns an io.Reader that yields t's bytes
// with every ASCII byte (< 0x80) run through prim.Escape and every other
// byte copied verbatim. Because a UTF-8 lead or continuation byte is
// always >= 0x80, this never looks inside a multi-byte sequence: only
// whole ASCII code points are ever escaped.
//
// Per iteration the reader needs at least max(4, prim.SizeBound()) bytes
// of headroom in the caller's buffer to guarantee progress (4 being the
// longest a single UTF-8 byte's verbatim copy ever needs — always 1, but
// spec fixes 4 as the floor to match the maximum UTF-8 sequence length);
// a Read call whose buffer is smaller than that returns 0 bytes written
// until the caller supplies a large-enough buffer.
func EncodeUTF8BuilderEscaped(prim EscapePrimitive, t text.Text) io.Reader {
	if prim.SizeBound() <= 0 {
		panic("utf8.EncodeUTF8BuilderEscaped: escape primitive has a zero size bound")
	}
	return &escapedReader{remaining: t.Bytes(), prim: prim}
}

type escapedReader struct {
	remaining []byte
	prim      EscapePrimitive
}

func (r *escapedReader) Read(buf []byte) (int, error) {
	if len(r.remaining) == 0 {
		return 0, io.EOF
	}
	bound := r.prim.SizeBound()
	if bound < 4 {
		bound = 4
	}
	written := 0
	for len(r.remaining) > 0 && len(buf)-written >= bound {
		b := r.remaining[0]
		if b < 0x80 {
			n := r.prim.Escape(b, buf[written:])
			written += n
		} else {
			buf[written] = b
			written++
		}
		r.remaining = r.remaining[1:]
	}
	return written, nil
}
