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

// Package utf16 implements UTF-16 (RFC 2781) decoding and encoding as a
// single pass over 2-byte code units with surrogate-pair recognition,
// using the same Policy shape as package utf8 but neither its chunk
// validator nor text.Stack. Unlike the UTF-8 core this is
// not the hard part of the spec and is implemented directly against
// encoding/binary rather than an incremental automaton, since a 16-bit
// code unit is never split finer than "do we have 2 bytes yet".
package utf16

import (
	"encoding/binary"
	"fmt"
	stdutf8 "unicode/utf8"

	"github.com/sneller-oss/utext/text"
)

// Policy is the UTF-16 analogue of utf8.Policy: it is invoked once per
// malformed or incomplete code unit, at 0-based code-unit position pos.
type Policy interface {
	Handle(msg string, unit uint16, pos int) (replacement rune, ok bool, err error)
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(msg string, unit uint16, pos int) (rune, bool, error)

func (f PolicyFunc) Handle(msg string, unit uint16, pos int) (rune, bool, error) {
	return f(msg, unit, pos)
}

// InvalidCodeUnitError reports an unpaired surrogate or a trailing
// incomplete code unit (spec §7 kind 4).
type InvalidCodeUnitError struct {
	Unit uint16
	Pos  int
}

func (e *InvalidCodeUnitError) Error() string {
	return fmt.Sprintf("utf16: invalid code unit 0x%04x at code-unit position %d", e.Unit, e.Pos)
}

// Strict raises on every malformed or incomplete code unit.
var Strict Policy = PolicyFunc(func(msg string, unit uint16, pos int) (rune, bool, error) {
	return 0, false, &InvalidCodeUnitError{Unit: unit, Pos: pos}
})

// Replace substitutes U+FFFD for every malformed or incomplete code
// unit and never raises.
var Replace Policy = PolicyFunc(func(msg string, unit uint16, pos int) (rune, bool, error) {
	return stdutf8.RuneError, true, nil
})

const (
	msgInvalidUnit    = "Invalid UTF-16 code unit"
	msgIncompleteUnit = "Incomplete UTF-16 code unit"
)

// DecodeLE decodes b as little-endian UTF-16 under the Strict policy.
func DecodeLE(b []byte) (text.Text, error) { return DecodeLEWith(Strict, b) }

// DecodeBE decodes b as big-endian UTF-16 under the Strict policy.
func DecodeBE(b []byte) (text.Text, error) { return DecodeBEWith(Strict, b) }

// DecodeLEWith decodes b as little-endian UTF-16 under policy.
func DecodeLEWith(policy Policy, b []byte) (text.Text, error) {
	return decode(b, binary.LittleEndian, policy)
}

// DecodeBEWith decodes b as big-endian UTF-16 under policy.
func DecodeBEWith(policy Policy, b []byte) (text.Text, error) {
	return decode(b, binary.BigEndian, policy)
}

// EncodeLE encodes t as little-endian UTF-16. Text is always
// well-formed, so this never fails.
func EncodeLE(t text.Text) []byte { return encode(t, binary.LittleEndian) }

// EncodeBE encodes t as big-endian UTF-16.
func EncodeBE(t text.Text) []byte { return encode(t, binary.BigEndian) }

func decode(b []byte, order binary.ByteOrder, policy Policy) (text.Text, error) {
	out := make([]byte, 0, len(b))
	pos := 0
	i := 0
	for i < len(b) {
		if i+2 > len(b) {
			r, ok, err := policy.Handle(msgIncompleteUnit, uint16(b[i]), pos)
			if err != nil {
				return text.Empty, err
			}
			if ok {
				out = appendScalar(out, r)
			}
			break
		}
		u := order.Uint16(b[i:])
		switch {
		case u < 0xD800 || u > 0xDFFF:
			out = appendScalar(out, rune(u))
			i += 2
		case u <= 0xDBFF: // high surrogate
			if i+4 <= len(b) {
				u2 := order.Uint16(b[i+2:])
				if u2 >= 0xDC00 && u2 <= 0xDFFF {
					r := (rune(u)-0xD800)<<10 | (rune(u2) - 0xDC00)
					out = appendScalar(out, r+0x10000)
					i += 4
					pos += 2
					continue
				}
			}
			r, ok, err := policy.Handle(msgInvalidUnit, u, pos)
			if err != nil {
				return text.Empty, err
			}
			if ok {
				out = appendScalar(out, r)
			}
			i += 2
		default: // lone low surrogate
			r, ok, err := policy.Handle(msgInvalidUnit, u, pos)
			if err != nil {
				return text.Empty, err
			}
			if ok {
				out = appendScalar(out, r)
			}
			i += 2
		}
		pos++
	}
	return text.FromValidUTF8(out), nil
}

func encode(t text.Text, order binary.ByteOrder) []byte {
	out := make([]byte, 0, t.Len()*2)
	var tmp [2]byte
	for _, r := range t.String() {
		if r > 0xFFFF {
			r -= 0x10000
			order.PutUint16(tmp[:], uint16(0xD800+(r>>10)))
			out = append(out, tmp[:]...)
			order.PutUint16(tmp[:], uint16(0xDC00+(r&0x3FF)))
			out = append(out, tmp[:]...)
			continue
		}
		order.PutUint16(tmp[:], uint16(r))
		out = append(out, tmp[:]...)
	}
	return out
}

// appendScalar writes r's UTF-8 encoding to buf, remapping surrogates
// and out-of-range values to U+FFFD the same way utf8.sanitizeReplacement
// does for user policy callbacks.
func appendScalar(buf []byte, r rune) []byte {
	if (r >= 0xD800 && r <= 0xDFFF) || r < 0 || r > stdutf8.MaxRune {
		r = stdutf8.RuneError
	}
	var tmp [stdutf8.UTFMax]byte
	n := stdutf8.EncodeRune(tmp[:], r)
	return append(buf, tmp[:n]...)
}
