// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textbwt

import (
	"reflect"
	"testing"
)

func TestRLE(t *testing.T) {
	var vectors = []struct {
		input  string
		output []rleSymbol
	}{
		{"", nil},
		{"annb$aa", []rleSymbol{{'a', 1}, {'n', 2}, {'b', 1}, {'$', 1}, {'a', 2}}},
		{"aaaaaaaaaa$", []rleSymbol{{'a', 10}, {'$', 1}}},
		{"a$aaa", []rleSymbol{{'a', 1}, {'$', 1}, {'a', 3}}},
	}
	for i, v := range vectors {
		got := encodeRLE([]byte(v.input))
		if !reflect.DeepEqual(got, v.output) {
			t.Errorf("test %d: encodeRLE(%q) = %v, want %v", i, v.input, got, v.output)
		}
		back := decodeRLE(got)
		if string(back) != v.input {
			t.Errorf("test %d: decodeRLE(encodeRLE(%q)) = %q", i, v.input, back)
		}
	}
}
