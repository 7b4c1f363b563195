// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textbwt

import (
	"strconv"

	"github.com/dsnet/textbwt/internal/errors"
)

// eliasEncode appends the Elias gamma code for k (k >= 1) to w, using a
// prepend-shrinking-prefix construction: write k in plain binary, then
// repeatedly prepend a length descriptor (the previous segment's length
// minus one, MSB forced to 0) until the prepended segment is a single bit,
// which is always '0'. The loop is driven directly off the bit-string
// lengths rather than a closed-form bit-count, so the encoding stays
// correct at the boundary cases.
func eliasEncode(w *bitWriter, k uint64) {
	if k == 0 {
		panic("textbwt: elias code is undefined for zero")
	}
	code := strconv.FormatUint(k, 2) // plain binary, no leading zeros
	length := len(code)
	for length != 1 {
		length--
		prefix := strconv.FormatUint(uint64(length), 2)
		// Flip the prefix's own MSB from 1 to 0 to mark "more to come".
		prefix = "0" + prefix[1:]
		code = prefix + code
		length = len(prefix)
	}
	w.WriteString(code)
}

// eliasDecode reads one Elias gamma coded integer from r at the cursor,
// advancing it past the code: start with a 1-bit segment; while its leading
// bit is 0, flip it to 1 and treat its value+1 as the length of the next
// segment to read; stop once a segment's leading bit is 1, and return that
// segment's value.
func eliasDecode(r *bitReader) (uint64, error) {
	segLen := uint(1)
	for {
		if r.Pos()+uint64(segLen) > r.Len() {
			return 0, errors.E(errors.TruncatedStream, "elias code runs past end of stream")
		}
		first := r.BitAt(r.Pos())
		if first == 1 {
			v := r.ReadBitsBE64(segLen)
			return v, nil
		}
		// Leading bit is 0: this segment is a length descriptor. Flip its
		// MSB to 1 and decode it to get the length of the next segment.
		v := r.ReadBitsBE64(segLen)
		v |= 1 << (segLen - 1)
		next := v + 1
		if next == 0 || next > 63 {
			return 0, errors.E(errors.MalformedHeader, "elias length descriptor out of range")
		}
		segLen = uint(next)
	}
}
