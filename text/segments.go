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

// segment is either an already-validated Text (pushed through PushText)
// or a borrowed byte range pushed through PushBytes. The decoders in
// package utf8 push only byte ranges: carry bytes and validated prefixes
// of the chunk currently being decoded.
type segment struct {
	asText Text
	asByte []byte
	isText bool
}

func (s segment) len() int {
	if s.isText {
		return s.asText.Len()
	}
	return len(s.asByte)
}

// Stack is the append-only accumulator described in spec §4.D: decoders
// push validated text and byte ranges onto it as they walk the input, and
// call Materialise exactly once to collapse everything into a single
// contiguous Text.
//
// A Stack holds no bytes it did not receive by reference: callers must
// keep any slice passed to PushBytes alive until Materialise is called.
type Stack struct {
	items      []segment
	totalBytes int
}

// PushText appends an already-validated Text segment. A zero-length Text
// is a no-op.
func (s *Stack) PushText(t Text) {
	if t.Len() == 0 {
		return
	}
	s.items = append(s.items, segment{asText: t, isText: true})
	s.totalBytes += t.Len()
}

// PushBytes appends a borrowed byte range known to be valid UTF-8 (or a
// valid prefix/suffix of it — the caller is responsible for only pushing
// byte ranges that, concatenated in push order, form well-formed UTF-8).
// A zero-length slice is a no-op.
func (s *Stack) PushBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	s.items = append(s.items, segment{asByte: b})
	s.totalBytes += len(b)
}

// TotalBytes returns the sum of the lengths of every pushed segment.
func (s *Stack) TotalBytes() int { return s.totalBytes }

// Materialise allocates a single buffer of exactly TotalBytes() and fills
// it by walking the pushed segments in reverse, computing each segment's
// destination offset as running - len(seg) before copying — the same
// backwards-fill spec §4.D describes, which lets each segment's offset be
// computed without a prefix-sum pass over the whole stack first.
//
// Calling Materialise leaves s empty and ready for reuse.
func (s *Stack) Materialise() Text {
	if s.totalBytes == 0 {
		s.items = nil
		return Empty
	}
	buf := make([]byte, s.totalBytes)
	running := s.totalBytes
	for i := len(s.items) - 1; i >= 0; i-- {
		seg := s.items[i]
		n := seg.len()
		running -= n
		if seg.isText {
			copy(buf[running:running+n], seg.asText.Bytes())
		} else {
			copy(buf[running:running+n], seg.asByte)
		}
	}
	s.items = nil
	s.totalBytes = 0
	return FromValidUTF8(buf)
}
