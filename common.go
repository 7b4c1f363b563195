// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package textbwt implements a lossless text compressor over the printable
// ASCII alphabet [36, 126]. The pipeline is:
//
//	Burrows-Wheeler transform (BWT), via an online Ukkonen suffix tree
//	Run-length encoding     (RLE)
//	Huffman coding
//	Elias gamma coding      (run lengths and all header integers)
//
// There is no formal specification of this particular stack; it mirrors
// the structure of general-purpose BWT compressors like bzip2 (see
// github.com/dsnet/compress/bzip2) but swaps bzip2's move-to-front +
// multi-table prefix coding for a single self-describing Huffman table and
// Elias-coded run lengths, and swaps bzip2's block-oriented, checksummed
// stream for a single whole-input block with no checksum.
package textbwt

import "github.com/dsnet/textbwt/internal/errors"

const (
	alphabetMin             = 36
	alphabetMax             = 126
	suffixAlphabetSize      = alphabetMax - alphabetMin + 1
	sentinelByte       byte = '$'
)

// Error is the error type returned by Encode and Decode. It wraps one of
// the Kind values below.
type Error = errors.Error

// Kind re-exports the error categories for callers that want to switch on
// them without importing the internal package.
type Kind = errors.Kind

const (
	ErrInvalidSymbol           = errors.InvalidSymbol
	ErrEmptyInput              = errors.EmptyInput
	ErrTruncatedStream         = errors.TruncatedStream
	ErrMalformedHeader         = errors.MalformedHeader
	ErrDuplicateSymbolInHeader = errors.DuplicateSymbolInHeader
	ErrCodewordCollision       = errors.CodewordCollision
)

func alphabetIndex(c byte) (int, error) {
	if c < alphabetMin || c > alphabetMax {
		return 0, errors.Errorf(errors.InvalidSymbol, "byte %d outside [%d, %d]", c, alphabetMin, alphabetMax)
	}
	return int(c - alphabetMin), nil
}

func indexToByte(i int) byte { return byte(i + alphabetMin) }
