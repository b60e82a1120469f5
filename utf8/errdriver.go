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
	stdutf8 "unicode/utf8"

	"golang.org/x/exp/slices"

	"github.com/sneller-oss/utext/text"
)

// handleErr walks the conceptual error byte range [start, end) in the
// virtual address space spec §4.E defines: indices < 0 name bytes from
// carry.Bytes() (most negative is the first carry byte), indices >= 0
// name bytes of b. For each byte in order it invokes policy and, if the
// policy proposes a replacement, pushes that replacement's UTF-8
// encoding onto stack. It stops and returns the first error a policy
// raises.
func handleErr(policy Policy, msg string, start, end int, carry Carry, b []byte, stack *text.Stack) error {
	carryLen := len(carry.bytes)
	for pos := start; pos < end; pos++ {
		var by byte
		if pos < 0 {
			by = carry.bytes[carryLen+pos]
		} else {
			by = b[pos]
		}
		r, ok, err := policy.Handle(msg, &by, pos)
		if err != nil {
			// Strict raises as soon as it sees the first byte of the
			// range, before the driver has walked the rest of it — fill
			// in the full offending range here so IncompleteSequenceError
			// still reports every carry byte, not just the first one.
			if ice, isIce := err.(*IncompleteSequenceError); isIce && ice.Bytes == nil {
				ice.Bytes = errRangeBytes(start, end, carry, b)
			}
			return err
		}
		if !ok {
			continue
		}
		r = sanitizeReplacement(r)
		var buf [stdutf8.UTFMax]byte
		n := stdutf8.EncodeRune(buf[:], r)
		stack.PushBytes(slices.Clone(buf[:n]))
	}
	return nil
}

// errRangeBytes reconstructs the literal bytes named by the virtual
// address space [start, end), the same addressing handleErr's loop uses.
func errRangeBytes(start, end int, carry Carry, b []byte) []byte {
	out := make([]byte, 0, end-start)
	carryLen := len(carry.bytes)
	for pos := start; pos < end; pos++ {
		if pos < 0 {
			out = append(out, carry.bytes[carryLen+pos])
		} else {
			out = append(out, b[pos])
		}
	}
	return out
}
