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

// Package utf8 implements the streaming UTF-8 validator and decoder this
// module is built around, plus the ASCII/Latin-1 fast paths and UTF-8
// encoder that round out spec components A, B, C, E, F and G. It
// deliberately does not build on unicode/utf8.DecodeRune: that would make
// the validator a thin wrapper around the very thing being implemented.
package utf8

// DecoderState is a node in the UTF-8 recognizer automaton: either Start
// (a complete code point has just ended, or none has begun) or "waiting
// for N more continuation bytes, the next of which must fall in
// [lo, hi]". The lo/hi range is what lets the automaton reject overlong
// encodings, surrogates and out-of-range scalars without a second pass:
// C2..DF lead bytes permit any continuation 80-BF, but E0, ED, F0 and F4
// restrict the first continuation byte they expect.
type DecoderState struct {
	remaining uint8
	lo, hi    byte
}

// Start is the initial and terminal state: no bytes of a code point are
// pending.
var Start = DecoderState{}

// IsComplete reports whether state represents a boundary between code
// points (spec's terminal predicate). It holds exactly in Start.
func (s DecoderState) IsComplete() bool { return s.remaining == 0 }

// Step advances state by one byte. The returned bool is false when b is
// not valid in state; the returned state is then meaningless (callers
// must not use it) and the input is malformed at this position.
func Step(state DecoderState, b byte) (DecoderState, bool) {
	if state.remaining == 0 {
		return stepLead(b)
	}
	if b < state.lo || b > state.hi {
		return DecoderState{}, false
	}
	if state.remaining == 1 {
		return Start, true
	}
	return DecoderState{remaining: state.remaining - 1, lo: 0x80, hi: 0xBF}, true
}

// stepLead decides the automaton's reaction to a lead byte (or an ASCII
// byte, which needs no continuation at all). The ranges are exactly
// RFC 3629 §3's table: 00-7F one byte, C2-DF two bytes, E0/E1-EC/ED/EE-EF
// three bytes with E0 and ED narrowing the first continuation byte to
// exclude overlongs and surrogates respectively, F0/F1-F3/F4 four bytes
// with F0 and F4 narrowing the first continuation byte to exclude
// overlongs and scalars above U+10FFFF. C0, C1 and F5-FF are never valid
// lead bytes; a stray continuation byte (80-BF) is never a valid lead
// byte either.
func stepLead(b byte) (DecoderState, bool) {
	switch {
	case b <= 0x7F:
		return Start, true
	case b >= 0xC2 && b <= 0xDF:
		return DecoderState{remaining: 1, lo: 0x80, hi: 0xBF}, true
	case b == 0xE0:
		return DecoderState{remaining: 2, lo: 0xA0, hi: 0xBF}, true
	case b >= 0xE1 && b <= 0xEC:
		return DecoderState{remaining: 2, lo: 0x80, hi: 0xBF}, true
	case b == 0xED:
		return DecoderState{remaining: 2, lo: 0x80, hi: 0x9F}, true
	case b >= 0xEE && b <= 0xEF:
		return DecoderState{remaining: 2, lo: 0x80, hi: 0xBF}, true
	case b == 0xF0:
		return DecoderState{remaining: 3, lo: 0x90, hi: 0xBF}, true
	case b >= 0xF1 && b <= 0xF3:
		return DecoderState{remaining: 3, lo: 0x80, hi: 0xBF}, true
	case b == 0xF4:
		return DecoderState{remaining: 3, lo: 0x80, hi: 0x8F}, true
	default: // C0, C1, F5-FF, and stray continuation bytes 80-BF
		return DecoderState{}, false
	}
}
