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

package utf16

import (
	"testing"

	"github.com/sneller-oss/utext/text"
)

func TestRoundTripLE(t *testing.T) {
	cases := []string{"", "hello", "☃", "😀 snowman ☃ and text"}
	for _, s := range cases {
		enc := EncodeLE(mustText(s))
		got, err := DecodeLE(enc)
		if err != nil {
			t.Fatalf("DecodeLE(%q): %v", s, err)
		}
		if got.String() != s {
			t.Fatalf("round trip %q: got %q", s, got.String())
		}
	}
}

func TestRoundTripBE(t *testing.T) {
	cases := []string{"", "hello", "☃", "😀 snowman ☃ and text"}
	for _, s := range cases {
		enc := EncodeBE(mustText(s))
		got, err := DecodeBE(enc)
		if err != nil {
			t.Fatalf("DecodeBE(%q): %v", s, err)
		}
		if got.String() != s {
			t.Fatalf("round trip %q: got %q", s, got.String())
		}
	}
}

func TestDecodeLESnowman(t *testing.T) {
	// U+2603 SNOWMAN = 0x2603, little-endian code unit bytes 0x03 0x26.
	got, err := DecodeLE([]byte{0x03, 0x26})
	if err != nil {
		t.Fatalf("DecodeLE: %v", err)
	}
	if got.String() != "☃" {
		t.Fatalf("got %q, want %q", got.String(), "☃")
	}
}

func TestDecodeSurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE = surrogate pair 0xD83D 0xDE00.
	b := []byte{0x3D, 0xD8, 0x00, 0xDE}
	got, err := DecodeLE(b)
	if err != nil {
		t.Fatalf("DecodeLE: %v", err)
	}
	if got.String() != "😀" {
		t.Fatalf("got %q, want %q", got.String(), "😀")
	}
}

func TestDecodeLEStrictRejectsLoneSurrogate(t *testing.T) {
	b := []byte{0x3D, 0xD8} // lone high surrogate, nothing follows
	_, err := DecodeLE(b)
	if err == nil {
		t.Fatal("DecodeLE(lone surrogate): want error, got nil")
	}
	ice, ok := err.(*InvalidCodeUnitError)
	if !ok {
		t.Fatalf("err = %T, want *InvalidCodeUnitError", err)
	}
	if ice.Unit != 0xD83D {
		t.Fatalf("Unit = 0x%04x, want 0xd83d", ice.Unit)
	}
}

func TestDecodeLEReplacesLoneSurrogate(t *testing.T) {
	b := []byte{0x3D, 0xD8, 0x41, 0x00} // lone high surrogate, then 'A'
	got, err := DecodeLEWith(Replace, b)
	if err != nil {
		t.Fatalf("DecodeLEWith(Replace): %v", err)
	}
	if got.String() != "�A" {
		t.Fatalf("got %q, want %q", got.String(), "�A")
	}
}

func TestDecodeLEIncompleteTrailingByte(t *testing.T) {
	_, err := DecodeLE([]byte{0x41, 0x00, 0x42})
	if err == nil {
		t.Fatal("DecodeLE(trailing odd byte): want error, got nil")
	}
}

func mustText(s string) text.Text { return text.FromValidUTF8([]byte(s)) }
