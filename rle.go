// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textbwt

// rleSymbol is one (symbol, run length) tuple. Adjacent equal bytes in the
// BWT output are grouped into a single (symbol, run) pair; there is no
// move-to-front stage ahead of it.
type rleSymbol struct {
	Sym byte
	Run int
}

// encodeRLE scans l once, grouping maximal runs of an identical byte.
func encodeRLE(l []byte) []rleSymbol {
	if len(l) == 0 {
		return nil
	}
	out := make([]rleSymbol, 0, len(l))
	cur := l[0]
	run := 1
	for _, b := range l[1:] {
		if b == cur {
			run++
			continue
		}
		out = append(out, rleSymbol{Sym: cur, Run: run})
		cur, run = b, 1
	}
	out = append(out, rleSymbol{Sym: cur, Run: run})
	return out
}

// decodeRLE expands a run list back into the original byte sequence.
func decodeRLE(syms []rleSymbol) []byte {
	n := 0
	for _, s := range syms {
		n += s.Run
	}
	out := make([]byte, 0, n)
	for _, s := range syms {
		for i := 0; i < s.Run; i++ {
			out = append(out, s.Sym)
		}
	}
	return out
}
