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

// Package asciiesc provides a worked utf8.EscapePrimitive: a JSON-style
// bounded escaper for the ASCII control and quote characters, adapted
// from SnellerInc/sneller's expr.Quote (which escapes the same kind of
// bytes for SQL single-quoted strings using \n, \t and \uXXXX forms).
// Where expr.Quote walks whole runes and writes into a strings.Builder,
// JSON here is a fixed-size, allocation-free primitive meant to be
// called once per ASCII byte by utf8.EncodeUTF8BuilderEscaped.
package asciiesc

const hexDigits = "0123456789abcdef"

// JSON escapes bytes the way encoding/json escapes ASCII control
// characters and the quote/backslash pair inside a JSON string literal.
var JSON jsonEscaper

type jsonEscaper struct{}

// SizeBound is the most bytes a single call to Escape ever writes: a
// \u00XX escape, 6 bytes.
func (jsonEscaper) SizeBound() int { return 6 }

// Escape writes b's JSON string-literal encoding to dst and returns how
// many bytes it wrote. b must be < 0x80, as guaranteed by
// utf8.EncodeUTF8BuilderEscaped's contract.
func (jsonEscaper) Escape(b byte, dst []byte) int {
	switch b {
	case '"':
		dst[0], dst[1] = '\\', '"'
		return 2
	case '\\':
		dst[0], dst[1] = '\\', '\\'
		return 2
	case '\n':
		dst[0], dst[1] = '\\', 'n'
		return 2
	case '\t':
		dst[0], dst[1] = '\\', 't'
		return 2
	case '\r':
		dst[0], dst[1] = '\\', 'r'
		return 2
	}
	if b < 0x20 || b == 0x7F {
		dst[0] = '\\'
		dst[1] = 'u'
		dst[2] = '0'
		dst[3] = '0'
		dst[4] = hexDigits[b>>4]
		dst[5] = hexDigits[b&0xF]
		return 6
	}
	dst[0] = b
	return 1
}
