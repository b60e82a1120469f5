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

package utf32

import (
	"testing"

	"github.com/sneller-oss/utext/text"
)

func mustText(s string) text.Text { return text.FromValidUTF8([]byte(s)) }

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

func TestDecodeLEStrictRejectsSurrogate(t *testing.T) {
	// 0x0000D800 little-endian.
	_, err := DecodeLE([]byte{0x00, 0xD8, 0x00, 0x00})
	if err == nil {
		t.Fatal("DecodeLE(surrogate): want error, got nil")
	}
	if _, ok := err.(*InvalidCodeUnitError); !ok {
		t.Fatalf("err = %T, want *InvalidCodeUnitError", err)
	}
}

func TestDecodeLEStrictRejectsOutOfRange(t *testing.T) {
	// 0x00110000 little-endian, one past the top of the codespace.
	_, err := DecodeLE([]byte{0x00, 0x00, 0x11, 0x00})
	if err == nil {
		t.Fatal("DecodeLE(out-of-range): want error, got nil")
	}
}

func TestDecodeLEReplacesInvalid(t *testing.T) {
	b := []byte{0x00, 0xD8, 0x00, 0x00, 0x41, 0x00, 0x00, 0x00}
	got, err := DecodeLEWith(Replace, b)
	if err != nil {
		t.Fatalf("DecodeLEWith(Replace): %v", err)
	}
	if got.String() != "�A" {
		t.Fatalf("got %q, want %q", got.String(), "�A")
	}
}

func TestDecodeLEIncompleteTrailingUnit(t *testing.T) {
	_, err := DecodeLE([]byte{0x41, 0x00, 0x00})
	if err == nil {
		t.Fatal("DecodeLE(truncated unit): want error, got nil")
	}
}

func TestDecodeLESnowman(t *testing.T) {
	got, err := DecodeLE([]byte{0x03, 0x26, 0x00, 0x00})
	if err != nil {
		t.Fatalf("DecodeLE: %v", err)
	}
	if got.String() != "☃" {
		t.Fatalf("got %q, want %q", got.String(), "☃")
	}
}
