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
	"testing"

	"github.com/sneller-oss/utext/asciiesc"
	"github.com/sneller-oss/utext/text"
)

func TestEncodeUTF8(t *testing.T) {
	tx, err := DecodeUTF8([]byte("hi ☃"))
	if err != nil {
		t.Fatalf("DecodeUTF8: %v", err)
	}
	got := EncodeUTF8(tx)
	if string(got) != "hi ☃" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeUTF8BuilderChunked(t *testing.T) {
	tx, err := DecodeUTF8([]byte("hello, 世界! this text is long enough to need several reads"))
	if err != nil {
		t.Fatalf("DecodeUTF8: %v", err)
	}
	r := EncodeUTF8Builder(tx)
	var out []byte
	buf := make([]byte, 3)
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	if string(out) != tx.String() {
		t.Fatalf("got %q, want %q", out, tx.String())
	}
}

func TestEncodeUTF8BuilderEscapedJSON(t *testing.T) {
	tx := text.FromValidUTF8([]byte("a\"b\\c\nd☃e"))
	r := EncodeUTF8BuilderEscaped(asciiesc.JSON, tx)
	var out []byte
	buf := make([]byte, 8)
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	want := `a\"b\\c\nd☃e`
	if string(out) != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestEncodeUTF8BuilderEscapedZeroBoundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("EncodeUTF8BuilderEscaped: want panic on zero SizeBound")
		}
	}()
	EncodeUTF8BuilderEscaped(zeroBoundEscaper{}, text.Empty)
}

type zeroBoundEscaper struct{}

func (zeroBoundEscaper) SizeBound() int          { return 0 }
func (zeroBoundEscaper) Escape(byte, []byte) int { return 0 }
