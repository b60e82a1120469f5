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
	"golang.org/x/exp/slices"

	"github.com/sneller-oss/utext/text"
)

// decodeNextChunk wraps ValidateNextChunk and pushes whatever just became
// confirmed-valid text onto stack: the carry's pending bytes followed by
// the newly validated prefix of b, exactly when endPos is non-negative
// (a negative endPos means nothing new was validated — the chunk either
// errored or ran out while still inside the carry's pending bytes, and
// those bytes remain unconfirmed).
func decodeNextChunk(b []byte, carry Carry, stack *text.Stack) (endPos int, outcome Outcome) {
	endPos, outcome = ValidateNextChunk(b, carry)
	if endPos >= 0 {
		stack.PushBytes(carry.bytes)
		stack.PushBytes(b[:endPos])
	}
	return endPos, outcome
}

// DecodeUTF8With decodes b under the given error policy, looping over
// ValidateNextChunk/decodeNextChunk exactly as spec §4.F describes: each
// invalid range is handed to policy via handleErr and scanning resumes
// just past it with a fresh Start carry, and a code point left
// incomplete at end of input is reported through policy as well before
// the accumulated segments are materialised.
func DecodeUTF8With(policy Policy, b []byte) (text.Text, error) {
	var stack text.Stack
	carry := Carry{}
	cur := b
	for {
		n, outcome := decodeNextChunk(cur, carry, &stack)
		if outcome.Invalid {
			if err := handleErr(policy, msgInvalidStream, n, outcome.NextIndex, carry, cur, &stack); err != nil {
				return text.Empty, err
			}
			cur = cur[outcome.NextIndex:]
			carry = Carry{}
			continue
		}
		c := outcome.Carry
		if !c.Pending() {
			return stack.Materialise(), nil
		}
		if err := handleErr(policy, msgIncompleteRune, -len(c.bytes), 0, c, nil, &stack); err != nil {
			return text.Empty, err
		}
		return stack.Materialise(), nil
	}
}

// DecodeUTF8 decodes b under the Strict policy: a malformed byte or a
// code point left incomplete at end of input both return an error, and
// no partial Text is returned alongside it (spec's "a strict decode
// either returns a fully valid Text ... or raises without producing
// partial output").
func DecodeUTF8(b []byte) (text.Text, error) {
	return DecodeUTF8With(Strict, b)
}

// DecodeUTF8Catch is identical to DecodeUTF8. Spec distinguishes a
// raising decode_utf8 from a catching decode_utf8_catch because its
// source language uses exceptions for the strict error; Go already
// reports errors as values, so there is nothing left for a separate
// "catch" wrapper to do. Both names are kept so every operation named in
// spec §6's interface table has a direct counterpart here.
func DecodeUTF8Catch(b []byte) (text.Text, error) {
	return DecodeUTF8(b)
}

// DecodeUTF8Lenient decodes b under the Replace policy: every malformed
// byte and any incomplete trailing code point is replaced with U+FFFD,
// one replacement per erroneous byte (spec's approximation of the
// Unicode "maximal subpart" rule), and decoding never fails.
func DecodeUTF8Lenient(b []byte) text.Text {
	t, _ := DecodeUTF8With(Replace, b)
	return t
}

// Decoding is one step of a streaming decode: Produced is the Text
// recovered from the bytes consumed so far, Leftover is the (carry)
// bytes of a code point still incomplete at the end of that input, and
// Resume continues decoding with the next chunk, picking up exactly
// where this step left off.
type Decoding struct {
	Produced text.Text
	Leftover []byte

	resume func([]byte) (Decoding, error)
}

// Resume feeds the next chunk of input to the streaming decoder,
// continuing from the carry state this Decoding captured.
func (d Decoding) Resume(next []byte) (Decoding, error) {
	return d.resume(next)
}

// StreamDecodeUTF8With begins (or, via Resume, continues) a streaming
// decode of b under the given policy. Unlike DecodeUTF8With it never
// treats a trailing incomplete code point as an error: that is only
// meaningful once the caller knows no more input is coming, which a
// streaming decoder that only sees one chunk at a time cannot know on
// its own.
func StreamDecodeUTF8With(policy Policy, b []byte) (Decoding, error) {
	return streamStep(policy, b, Carry{})
}

// StreamDecodeUTF8 begins a streaming decode under the Strict policy:
// any malformed byte encountered within the chunks fed so far is still
// reported immediately (Strict never tolerates it), but a trailing
// incomplete code point is simply carried forward, never flagged.
func StreamDecodeUTF8(b []byte) (Decoding, error) {
	return StreamDecodeUTF8With(Strict, b)
}

func streamStep(policy Policy, b []byte, carry Carry) (Decoding, error) {
	var stack text.Stack
	cur := b
	for {
		n, outcome := decodeNextChunk(cur, carry, &stack)
		if outcome.Invalid {
			if err := handleErr(policy, msgInvalidStream, n, outcome.NextIndex, carry, cur, &stack); err != nil {
				return Decoding{}, err
			}
			cur = cur[outcome.NextIndex:]
			carry = Carry{}
			continue
		}
		final := outcome.Carry
		leftover := slices.Clone(final.bytes) // independent copy, per spec §5 Resources
		return Decoding{
			Produced: stack.Materialise(),
			Leftover: leftover,
			resume: func(next []byte) (Decoding, error) {
				return streamStep(policy, next, final)
			},
		}, nil
	}
}
