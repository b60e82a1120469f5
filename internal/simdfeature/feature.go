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

// Package simdfeature gates the optional bulk fast-paths that spec §4.B
// permits for UTF-8 validation on CPU feature availability, the way
// SnellerInc/sneller's vm package picks an AVX-512 opcode level via
// golang.org/x/sys/cpu before falling back to a portable path. Unlike the
// teacher, this package never drops into assembly: "bulk" here means
// "batch of 8 bytes processed as one machine word", not a SIMD kernel, so
// the feature check only needs to decide whether the CPU's word size and
// unaligned-load behavior make that batching worthwhile. The scalar path
// is always semantically identical, as required by spec §4.B.
package simdfeature

import "golang.org/x/sys/cpu"

// BulkAvailable reports whether the current CPU supports the fast
// unaligned 64-bit loads the batch scanners in this module rely on. On
// x86 it requires SSE2, which every amd64 CPU has; on arm64 it requires
// NEON/ASIMD; everywhere else the scalar byte-at-a-time path is used.
func BulkAvailable() bool {
	switch {
	case cpu.X86.HasSSE2:
		return true
	case cpu.ARM64.HasASIMD:
		return true
	default:
		return false
	}
}

// ASCIIRunLength returns the number of leading bytes of b that are plain
// ASCII (< 0x80). It dispatches to the word-at-a-time batch scan when
// BulkAvailable reports true and otherwise walks b one byte at a time;
// both paths agree byte for byte, matching spec §4.B's requirement that
// the optimisation be observable only through performance.
func ASCIIRunLength(b []byte) int {
	if BulkAvailable() {
		return bulkASCIIRunLength(b)
	}
	return scalarASCIIRunLength(b)
}

func bulkASCIIRunLength(b []byte) int {
	i := 0
	for len(b) >= 8 {
		var qword uint64
		for k := 0; k < 8; k++ {
			qword |= uint64(b[k]) << (8 * k)
		}
		if qword&0x8080808080808080 != 0 {
			break
		}
		i += 8
		b = b[8:]
	}
	i += scalarASCIIRunLength(b)
	return i
}

func scalarASCIIRunLength(b []byte) int {
	for i, c := range b {
		if c >= 0x80 {
			return i
		}
	}
	return len(b)
}
