// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textbwt

import (
	"sort"

	"github.com/dsnet/textbwt/internal/errors"
)

// Encode compresses s, returning a byte-packed bit stream of a header
// followed by the Huffman- and Elias-coded data. If s does not end with
// the sentinel '$', one is appended; s is otherwise left untouched (a
// fresh copy is made before any mutation).
//
// Encode is infallible for any s drawn from [36, 126] with at most one
// trailing sentinel: the only errors it returns are EmptyInput and
// InvalidSymbol on malformed input.
func Encode(s []byte) ([]byte, error) {
	if len(s) == 0 {
		return nil, errors.E(errors.EmptyInput, "Encode: empty input")
	}
	for _, c := range s {
		if _, err := alphabetIndex(c); err != nil {
			return nil, err
		}
	}

	if s[len(s)-1] != sentinelByte {
		t := make([]byte, len(s)+1)
		copy(t, s)
		t[len(s)] = sentinelByte
		s = t
	}
	count := 0
	for _, c := range s {
		if c == sentinelByte {
			count++
		}
	}
	if count != 1 {
		return nil, errors.E(errors.InvalidSymbol, "Encode: '$' must appear exactly once, at the end")
	}

	l, err := encodeBWT(s)
	if err != nil {
		return nil, err
	}
	runs := encodeRLE(l)
	table, err := buildHuffmanTable(l)
	if err != nil {
		return nil, err
	}

	w := &bitWriter{}
	eliasEncode(w, uint64(len(l)))
	eliasEncode(w, uint64(len(table)))

	// Ascending alphabet-index order makes header layout a pure function of
	// the symbol set, independent of map iteration order.
	syms := make([]byte, 0, len(table))
	for sym := range table {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	for _, sym := range syms {
		w.WriteBitsBE64(uint64(sym), 7)
		code := table[sym]
		eliasEncode(w, uint64(len(code)))
		w.WriteString(code)
	}
	for _, r := range runs {
		w.WriteString(table[r.Sym])
		eliasEncode(w, uint64(r.Run))
	}
	return w.Bytes(), nil
}
