// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package benchmark compares textbwt's compression ratio against a couple
// of general-purpose codecs drawn from the rest of the example pack
// (klauspost/compress's zstd and ulikunitz/xz, plus stdlib flate as a
// baseline), all restricted to inputs textbwt can actually accept: bytes
// in [36, 126] with a single trailing sentinel.
package benchmark

import (
	"bytes"
	"compress/flate"
	"io"
	"io/ioutil"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/dsnet/textbwt"
)

// Codec is one comparison point: a name plus whole-buffer encode/decode
// functions. Every codec compared here already works on a single
// in-memory buffer, so there is no streaming API to wrap.
type Codec struct {
	Name   string
	Encode func([]byte) ([]byte, error)
	Decode func([]byte) ([]byte, error)
}

// Codecs lists the comparison set, populated by init below.
var Codecs []Codec

func register(c Codec) { Codecs = append(Codecs, c) }

func init() {
	register(Codec{Name: "textbwt", Encode: textbwt.Encode, Decode: textbwt.Decode})

	register(Codec{
		Name: "flate",
		Encode: func(p []byte) ([]byte, error) {
			var buf bytes.Buffer
			w, err := flate.NewWriter(&buf, flate.BestCompression)
			if err != nil {
				return nil, err
			}
			if _, err := w.Write(p); err != nil {
				return nil, err
			}
			if err := w.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
		Decode: func(p []byte) ([]byte, error) {
			r := flate.NewReader(bytes.NewReader(p))
			defer r.Close()
			return ioutil.ReadAll(r)
		},
	})

	register(Codec{
		Name: "zstd",
		Encode: func(p []byte) ([]byte, error) {
			enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
			if err != nil {
				return nil, err
			}
			defer enc.Close()
			return enc.EncodeAll(p, nil), nil
		},
		Decode: func(p []byte) ([]byte, error) {
			dec, err := zstd.NewReader(nil)
			if err != nil {
				return nil, err
			}
			defer dec.Close()
			return dec.DecodeAll(p, nil)
		},
	})

	register(Codec{
		Name: "xz",
		Encode: func(p []byte) ([]byte, error) {
			var buf bytes.Buffer
			w, err := xz.NewWriter(&buf)
			if err != nil {
				return nil, err
			}
			if _, err := w.Write(p); err != nil {
				return nil, err
			}
			if err := w.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
		Decode: func(p []byte) ([]byte, error) {
			r, err := xz.NewReader(bytes.NewReader(p))
			if err != nil {
				return nil, err
			}
			return ioutil.ReadAll(r)
		},
	})
}

// LoadSample returns an n-byte sample built from file: every byte is folded
// into textbwt's alphabet minus the sentinel, [37, 126] (mapping i to
// 37+(i%90)), and the last byte is replaced by the sentinel '$', so the
// same corpus can feed every codec in Codecs on equal footing. If the file
// is shorter than n, its (folded) content is repeated to fill it.
func LoadSample(file string, n int) ([]byte, error) {
	input, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if len(input) == 0 {
		return nil, io.ErrNoProgress
	}

	out := make([]byte, n)
	for i := range out {
		out[i] = foldToAlphabet(input[i%len(input)])
	}
	if n > 0 {
		out[n-1] = '$'
	}
	return out, nil
}

// foldToAlphabet maps b into [37, 126], never producing the sentinel '$'.
func foldToAlphabet(b byte) byte {
	const lo, size = 37, 90
	return lo + b%size
}
