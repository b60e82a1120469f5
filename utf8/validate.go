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

import "github.com/sneller-oss/utext/internal/simdfeature"

// ValidateChunk scans b starting from the Start state and returns the
// length of the longest well-formed UTF-8 prefix of b, together with
// what was found just past it: Outcome.Invalid with the next candidate
// index to resume scanning at, or a Carry holding whatever trailing
// bytes of an incomplete code point remain.
//
// validLen is the greatest prefix boundary in b: b[:validLen] is always
// well-formed UTF-8, and no longer prefix of b is.
func ValidateChunk(b []byte) (validLen int, outcome Outcome) {
	return validateFrom(b, Start, 0)
}

// validateFrom is the scalar walk shared by ValidateChunk and the
// continuation performed by ValidateNextChunk once a carry completes
// mid-chunk. state is the automaton state to resume in; lastComplete is
// the index (within b) of the last confirmed code-point boundary, which
// callers resuming mid-chunk set to 0 (the slice they pass in is already
// offset).
func validateFrom(b []byte, state DecoderState, lastComplete int) (int, Outcome) {
	i := lastComplete
	if state.IsComplete() {
		if n := simdfeature.ASCIIRunLength(b[i:]); n > 0 {
			i += n
			lastComplete = i
		}
	}
	for i < len(b) {
		next, ok := Step(state, b[i])
		if !ok {
			nextCandidate := i
			if i == lastComplete {
				nextCandidate = i + 1
			}
			return lastComplete, Outcome{Invalid: true, NextIndex: nextCandidate}
		}
		state = next
		i++
		if state.IsComplete() {
			lastComplete = i
			// Boundary optimisation (spec §4.B): once back at a code
			// point boundary, bulk-skip the next ASCII run instead of
			// stepping the automaton one byte at a time through it.
			if n := simdfeature.ASCIIRunLength(b[i:]); n > 0 {
				i += n
				lastComplete = i
			}
		}
	}
	return lastComplete, Outcome{Carry: Carry{bytes: b[lastComplete:], state: state}}
}
