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
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/sneller-oss/utext/internal/simdfeature"
	"github.com/sneller-oss/utext/text"
)

// NonASCIIError reports the first byte >= 0x80 found by DecodeASCII
// (spec §7 kind 3).
type NonASCIIError struct {
	Byte  byte
	Index int
}

func (e *NonASCIIError) Error() string {
	return fmt.Sprintf("utf8: non-ASCII byte 0x%02x at index %d", e.Byte, e.Index)
}

// DecodeASCIIPrefix copies the leading run of bytes < 0x80 into a fresh
// Text and, if b contains a byte >= 0x80, also returns that byte and its
// index; otherwise the second return value is nil and the whole of b was
// ASCII.
func DecodeASCIIPrefix(b []byte) (text.Text, *NonASCIIError) {
	k := simdfeature.ASCIIRunLength(b)
	prefix := text.FromValidUTF8(slices.Clone(b[:k]))
	if k == len(b) {
		return prefix, nil
	}
	return prefix, &NonASCIIError{Byte: b[k], Index: k}
}

// DecodeASCII decodes b as pure ASCII. It fails on the first byte >=
// 0x80 rather than treating b as Latin-1 or UTF-8.
func DecodeASCII(b []byte) (text.Text, error) {
	prefix, bad := DecodeASCIIPrefix(b)
	if bad != nil {
		return text.Empty, bad
	}
	return prefix, nil
}

// DecodeLatin1 decodes b as ISO-8859-1: every byte is its own Unicode
// scalar value U+0000..U+00FF. Unlike DecodeUTF8/DecodeASCII this never
// fails — Latin-1 has no invalid byte sequences.
func DecodeLatin1(b []byte) text.Text {
	if len(b) == 0 {
		return text.Empty
	}
	out := make([]byte, 0, 2*len(b))
	for len(b) > 0 {
		n := simdfeature.ASCIIRunLength(b)
		out = append(out, b[:n]...)
		b = b[n:]
		if len(b) == 0 {
			break
		}
		c := b[0]
		out = append(out, 0xC0|(c>>6), 0x80|(c&0x3F))
		b = b[1:]
	}
	return text.FromValidUTF8(out)
}
