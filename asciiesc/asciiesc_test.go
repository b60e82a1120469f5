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

package asciiesc

import "testing"

func TestJSONSizeBound(t *testing.T) {
	if JSON.SizeBound() != 6 {
		t.Fatalf("SizeBound = %d, want 6", JSON.SizeBound())
	}
}

func TestJSONEscape(t *testing.T) {
	cases := []struct {
		in   byte
		want string
	}{
		{'"', "\\\""},
		{'\\', "\\\\"},
		{'\n', "\\n"},
		{'\t', "\\t"},
		{'\r', "\\r"},
		{0x00, "\\u0000"},
		{0x1F, "\\u001f"},
		{0x7F, "\\u007f"},
		{'a', "a"},
		{' ', " "},
	}
	buf := make([]byte, 6)
	for _, tc := range cases {
		n := JSON.Escape(tc.in, buf)
		if string(buf[:n]) != tc.want {
			t.Errorf("Escape(0x%02x) = %q, want %q", tc.in, buf[:n], tc.want)
		}
	}
}
