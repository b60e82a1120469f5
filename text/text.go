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

package text

import (
	"math/bits"

	"github.com/sneller-oss/utext/internal/simdfeature"
)

// Text is an immutable sequence of Unicode scalar values stored as
// well-formed UTF-8 in a byte buffer of known length. The decoders in this
// module validate their input before building a Text; FromValidUTF8, the
// exported constructor they use, does no validation of its own and relies
// on its caller to pass well-formed UTF-8.
type Text struct {
	buf []byte
}

// Empty is the canonical zero-length Text.
var Empty = Text{}

// FromValidUTF8 wraps buf as a Text without copying or validating it. It
// exists for decoders (package utf8 and its siblings) that have already
// proven buf is well-formed UTF-8; everyone else should go through a
// decoder.
func FromValidUTF8(buf []byte) Text {
	if len(buf) == 0 {
		return Empty
	}
	return Text{buf: buf}
}

// Len returns the number of bytes in the underlying UTF-8 encoding.
func (t Text) Len() int { return len(t.buf) }

// Bytes returns the UTF-8 bytes backing t. Callers must not mutate the
// returned slice: Text is shared by value and by reference alike.
func (t Text) Bytes() []byte { return t.buf }

// String returns the Go string view of t. Since t.buf is guaranteed
// well-formed UTF-8, this never needs to re-validate.
func (t Text) String() string { return string(t.buf) }

// RuneCount returns the number of Unicode scalar values encoded in t. It
// uses the same SIMD-within-a-register continuation-byte count the
// teacher's ValidStringLength uses, which is safe here precisely because
// t's invariant guarantees well-formed input.
func (t Text) RuneCount() int { return validStringLength(t.buf) }

// validStringLength counts runes in a slice already known to be valid
// UTF-8 by counting continuation bytes and subtracting from the byte
// length. Adapted from SnellerInc/sneller's utf8.ValidStringLength: it
// processes 8 bytes at a time via a word-at-a-time popcount instead of a
// byte-by-byte scan.
func validStringLength(str []byte) int {
	n := len(str)
	continuation := 0
	for len(str) >= 8 {
		qword := leUint64(str)
		str = str[8:]

		bit7 := qword & 0x8080808080808080
		if bit7 == 0 {
			continue
		}
		bit6 := qword << 1
		comb := bit7 &^ bit6
		continuation += bits.OnesCount64(comb)
	}
	for _, b := range str {
		if b&0b11_000000 == 0b10_000000 {
			continuation++
		}
	}
	return n - continuation
}

func leUint64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// asciiRunLength reports how many leading bytes of b are plain ASCII
// (< 0x80), delegating to internal/simdfeature's CPU-gated bulk scanner,
// the same way the teacher's vm package gates AVX-512 opcode selection on
// cpu.X86 flags without changing semantics.
func asciiRunLength(b []byte) int {
	return simdfeature.ASCIIRunLength(b)
}
