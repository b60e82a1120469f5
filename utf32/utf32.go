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

// Package utf32 adapts the text-fusion abstraction to UTF-32 (Unicode
// 3.1+): each 4-byte code unit is already a whole scalar value, so the
// adapter only has to validate its range and byte order, the simplest of
// the three codecs this module's components H cover.
package utf32

import (
	"encoding/binary"
	"fmt"
	stdutf8 "unicode/utf8"

	"github.com/sneller-oss/utext/text"
)

// Policy is the UTF-32 analogue of utf8.Policy: invoked once per
// malformed or incomplete 4-byte code unit, at 0-based code-unit
// position pos.
type Policy interface {
	Handle(msg string, unit uint32, pos int) (replacement rune, ok bool, err error)
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(msg string, unit uint32, pos int) (rune, bool, error)

func (f PolicyFunc) Handle(msg string, unit uint32, pos int) (rune, bool, error) {
	return f(msg, unit, pos)
}

// InvalidCodeUnitError reports an out-of-range scalar, a surrogate
// value, or a trailing incomplete code unit (spec §7 kind 4).
type InvalidCodeUnitError struct {
	Unit uint32
	Pos  int
}

func (e *InvalidCodeUnitError) Error() string {
	return fmt.Sprintf("utf32: invalid code unit 0x%08x at code-unit position %d", e.Unit, e.Pos)
}

// Strict raises on every malformed or incomplete code unit.
var Strict Policy = PolicyFunc(func(msg string, unit uint32, pos int) (rune, bool, error) {
	return 0, false, &InvalidCodeUnitError{Unit: unit, Pos: pos}
})

// Replace substitutes U+FFFD for every malformed or incomplete code
// unit and never raises.
var Replace Policy = PolicyFunc(func(msg string, unit uint32, pos int) (rune, bool, error) {
	return stdutf8.RuneError, true, nil
})

const (
	msgInvalidUnit    = "Invalid UTF-32 code unit"
	msgIncompleteUnit = "Incomplete UTF-32 code unit"
)

// DecodeLE decodes b as little-endian UTF-32 under the Strict policy.
func DecodeLE(b []byte) (text.Text, error) { return DecodeLEWith(Strict, b) }

// DecodeBE decodes b as big-endian UTF-32 under the Strict policy.
func DecodeBE(b []byte) (text.Text, error) { return DecodeBEWith(Strict, b) }

// DecodeLEWith decodes b as little-endian UTF-32 under policy.
func DecodeLEWith(policy Policy, b []byte) (text.Text, error) {
	return decode(b, binary.LittleEndian, policy)
}

// DecodeBEWith decodes b as big-endian UTF-32 under policy.
func DecodeBEWith(policy Policy, b []byte) (text.Text, error) {
	return decode(b, binary.BigEndian, policy)
}

// EncodeLE encodes t as little-endian UTF-32.
func EncodeLE(t text.Text) []byte { return encode(t, binary.LittleEndian) }

// EncodeBE encodes t as big-endian UTF-32.
func EncodeBE(t text.Text) []byte { return encode(t, binary.BigEndian) }

func decode(b []byte, order binary.ByteOrder, policy Policy) (text.Text, error) {
	out := make([]byte, 0, len(b))
	pos := 0
	i := 0
	for i < len(b) {
		if i+4 > len(b) {
			r, ok, err := policy.Handle(msgIncompleteUnit, uint32(b[i]), pos)
			if err != nil {
				return text.Empty, err
			}
			if ok {
				out = appendScalar(out, r)
			}
			break
		}
		u := order.Uint32(b[i:])
		r := rune(u)
		if u > 0x10FFFF || (u >= 0xD800 && u <= 0xDFFF) {
			rep, ok, err := policy.Handle(msgInvalidUnit, u, pos)
			if err != nil {
				return text.Empty, err
			}
			if ok {
				out = appendScalar(out, rep)
			}
		} else {
			out = appendScalar(out, r)
		}
		i += 4
		pos++
	}
	return text.FromValidUTF8(out), nil
}

func encode(t text.Text, order binary.ByteOrder) []byte {
	out := make([]byte, 0, t.Len()*4)
	var tmp [4]byte
	for _, r := range t.String() {
		order.PutUint32(tmp[:], uint32(r))
		out = append(out, tmp[:]...)
	}
	return out
}

func appendScalar(buf []byte, r rune) []byte {
	if (r >= 0xD800 && r <= 0xDFFF) || r < 0 || r > stdutf8.MaxRune {
		r = stdutf8.RuneError
	}
	var tmp [stdutf8.UTFMax]byte
	n := stdutf8.EncodeRune(tmp[:], r)
	return append(buf, tmp[:n]...)
}
