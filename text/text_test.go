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

import "testing"

func TestRuneCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"A", 1},
		{"01234567", 8},
		{"012345678", 9},
		{"wąż", 3},
		{"żółw", 4},
		{"hi ☃", 4},
	}
	for _, tc := range cases {
		got := FromValidUTF8([]byte(tc.in)).RuneCount()
		if got != tc.want {
			t.Errorf("RuneCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestAsciiRunLength(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"hello world this is long enough to span a word", 48},
		{"hi\xE2\x98\x83", 2},
		{"\x80", 0},
	}
	for _, tc := range cases {
		got := asciiRunLength([]byte(tc.in))
		if got != tc.want {
			t.Errorf("asciiRunLength(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestEmptyIsCanonical(t *testing.T) {
	if got := FromValidUTF8(nil); got.Len() != 0 || got.String() != "" {
		t.Fatal("FromValidUTF8(nil) should equal Empty")
	}
	if got := FromValidUTF8([]byte{}); got.Len() != 0 || got.String() != "" {
		t.Fatal("FromValidUTF8([]byte{}) should equal Empty")
	}
}
