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

import "golang.org/x/exp/slices"

// Carry holds the 0-3 trailing bytes of a code point left incomplete at
// the end of a chunk, plus the automaton state those bytes leave the
// decoder in. The zero value is the carry at the start of a stream: no
// pending bytes, Start state.
type Carry struct {
	bytes []byte
	state DecoderState
}

// Bytes returns the carry's pending bytes (0 to 3 of them). Callers must
// not mutate the result.
func (c Carry) Bytes() []byte { return c.bytes }

// State returns the automaton state the carry bytes leave the decoder
// in.
func (c Carry) State() DecoderState { return c.state }

// Pending reports whether the carry holds unconsumed bytes. It is
// equivalent to !c.State().IsComplete().
func (c Carry) Pending() bool { return len(c.bytes) > 0 }

// Outcome is what ValidateChunk/ValidateNextChunk found at the end of
// the longest well-formed prefix they could walk: either the stream is
// malformed and NextIndex names where scanning should resume, or the
// chunk simply ended mid code point and Carry names what must be
// remembered.
type Outcome struct {
	Invalid   bool
	NextIndex int
	Carry     Carry
}

// ValidateNextChunk continues validating a byte stream whose previous
// chunk left decoding in carry. It returns endPos and an Outcome with the
// same meaning ValidateChunk's return values have, except that when the
// input is rejected or exhausted while still consuming carry's own
// bytes, endPos is negative: -len(carry.Bytes()) signals that the error
// or carry range begins inside the retained bytes, not inside b, exactly
// as spec §4.C and §9's "negative indices as signalling" note describe.
// Callers that would rather not reason about negative offsets can treat
// any endPos < 0 as "no bytes of b are committed yet" and use
// Carry.Bytes() together with Outcome to reconstruct the same error
// range (see handleErr in errdriver.go).
func ValidateNextChunk(b []byte, carry Carry) (endPos int, outcome Outcome) {
	if !carry.Pending() {
		return ValidateChunk(b)
	}

	state := carry.state
	for p, bb := range b {
		next, ok := Step(state, bb)
		if !ok {
			return -len(carry.bytes), Outcome{Invalid: true, NextIndex: p}
		}
		state = next
		if state.IsComplete() {
			// carry finished within b at index p; delegate the rest of
			// b to the ordinary chunk walk, offsetting by p+1.
			rest := p + 1
			n, out := validateFrom(b[rest:], Start, 0)
			if out.Invalid {
				out.NextIndex += rest
			}
			return n + rest, out
		}
	}
	// b ran out before the carry completed.
	merged := append(slices.Clone(carry.bytes), b...)
	return -len(carry.bytes), Outcome{Carry: Carry{bytes: merged, state: state}}
}
