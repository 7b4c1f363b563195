// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textbwt

import (
	"github.com/dsnet/textbwt/internal/errors"
	"github.com/dsnet/textbwt/internal/suffixtree"
)

// encodeBWT computes the Burrows-Wheeler Transform of s via its suffix
// array: L[i] = s[(SA[i]-1) mod n]. s must carry a unique sentinel, so the
// mod-n wraparound is taken at exactly one row: the one whose suffix starts
// at position 0.
func encodeBWT(s []byte) ([]byte, error) {
	sa, err := suffixtree.BuildSuffixArray(s)
	if err != nil {
		return nil, err
	}
	n := len(s)
	l := make([]byte, n)
	for i, p := range sa {
		l[i] = s[(p-1+n)%n]
	}
	return l, nil
}

// decodeBWT inverts the Burrows-Wheeler Transform via LF-mapping, using
// rank and order arrays derived from the symbol frequencies of l.
func decodeBWT(l []byte) ([]byte, error) {
	n := len(l)
	if n == 0 {
		return nil, errors.E(errors.EmptyInput, "decodeBWT: empty input")
	}

	var frequency [suffixAlphabetSize]int
	order := make([]int, n)
	sentinelCount := 0
	for i, c := range l {
		idx, err := alphabetIndex(c)
		if err != nil {
			return nil, err
		}
		frequency[idx]++
		order[i] = frequency[idx]
		if c == sentinelByte {
			sentinelCount++
		}
	}
	if sentinelCount != 1 {
		return nil, errors.E(errors.MalformedHeader, "decodeBWT: expected exactly one sentinel in BWT string")
	}

	var rank [suffixAlphabetSize]int
	prevFreq, prevRank := 0, 0
	for i, f := range frequency {
		if f == 0 {
			continue
		}
		rank[i] = prevRank + prevFreq
		prevFreq, prevRank = f, rank[i]
	}

	// The row whose rotation is the bare sentinel "$" always sorts first
	// (position 0), since $ is lexicographically smallest; that row's
	// starting text position is always n-1. Walking LF-mapping from there
	// and prepending each L[pos] regenerates S back to front.
	out := make([]byte, n)
	out[n-1] = sentinelByte
	pos := 0
	for i := n - 2; i >= 0; i-- {
		out[i] = l[pos]
		idx, _ := alphabetIndex(l[pos]) // already validated above
		pos = rank[idx] + order[pos] - 1
	}
	return out, nil
}
