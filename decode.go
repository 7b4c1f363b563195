// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textbwt

import "github.com/dsnet/textbwt/internal/errors"

// Decode inverts Encode, parsing the header into a decoding trie, expanding
// the RLE-coded, Huffman-coded data back into the BWT string L, and
// inverting the BWT to recover S.
//
// Decode never panics on malformed input: every bit read past the header's
// declared lengths is bounds-checked first and reported as a typed error.
// errors.Recover guards the top-level call against anything that slips
// through regardless.
func Decode(b []byte) (s []byte, err error) {
	defer errors.Recover(&err)

	r := newBitReader(b)
	n, err := eliasDecode(r)
	if err != nil {
		return nil, err
	}
	u, err := eliasDecode(r)
	if err != nil {
		return nil, err
	}
	if u == 0 {
		return nil, errors.E(errors.MalformedHeader, "Decode: header declares zero distinct symbols")
	}

	trie := newHuffmanTrie()
	seen := make(map[byte]bool, u)
	for i := uint64(0); i < u; i++ {
		if r.Pos()+7 > r.Len() {
			return nil, errors.E(errors.TruncatedStream, "Decode: header truncated before ASCII7")
		}
		sym := byte(r.ReadBitsBE64(7))
		if _, err := alphabetIndex(sym); err != nil {
			return nil, errors.E(errors.MalformedHeader, "Decode: ASCII7 outside [36, 126]")
		}
		if seen[sym] {
			return nil, errors.E(errors.DuplicateSymbolInHeader, "Decode: symbol repeated in header")
		}
		seen[sym] = true

		cwlen, err := eliasDecode(r)
		if err != nil {
			return nil, err
		}
		if cwlen == 0 {
			return nil, errors.E(errors.MalformedHeader, "Decode: zero-length Huffman codeword")
		}
		if r.Pos()+cwlen > r.Len() {
			return nil, errors.E(errors.TruncatedStream, "Decode: header truncated mid-codeword")
		}
		bits := make([]byte, cwlen)
		for j := range bits {
			if r.ReadBit() == 1 {
				bits[j] = '1'
			} else {
				bits[j] = '0'
			}
		}
		if err := trie.insert(sym, string(bits)); err != nil {
			return nil, err
		}
	}

	// Bound the preallocation by the stream size, so that a corrupt n cannot
	// force an out-of-range allocation; l still grows to n as runs decode.
	capHint := n
	if maxHint := uint64(len(b)) * 8; capHint > maxHint {
		capHint = maxHint
	}
	l := make([]byte, 0, capHint)
	for uint64(len(l)) < n {
		cur := trieRoot
		var sym byte
		leaf := false
		for !leaf {
			if r.Pos() >= r.Len() {
				return nil, errors.E(errors.TruncatedStream, "Decode: data truncated mid-codeword")
			}
			bit := r.ReadBit()
			cur, sym, leaf, err = trie.step(cur, bit)
			if err != nil {
				return nil, err
			}
		}
		run, err := eliasDecode(r)
		if err != nil {
			return nil, err
		}
		if uint64(len(l))+run > n {
			return nil, errors.E(errors.MalformedHeader, "Decode: RLE run overshoots declared length")
		}
		for i := uint64(0); i < run; i++ {
			l = append(l, sym)
		}
	}

	return decodeBWT(l)
}
