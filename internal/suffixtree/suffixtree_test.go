// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixtree

import (
	"sort"
	"testing"
)

func TestBuildSuffixArray(t *testing.T) {
	var vectors = []struct {
		input string
		sa    []int
	}{
		{"$", []int{0}},
		{"banana$", []int{6, 5, 3, 1, 0, 4, 2}},
		{"mississippi$", []int{11, 10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2}},
		{"abracadabra$", []int{11, 10, 7, 0, 3, 5, 8, 1, 4, 6, 9, 2}},
	}
	for _, v := range vectors {
		got, err := BuildSuffixArray([]byte(v.input))
		if err != nil {
			t.Fatalf("%q: BuildSuffixArray: %v", v.input, err)
		}
		if len(got) != len(v.sa) {
			t.Fatalf("%q: len(SA) = %d, want %d", v.input, len(got), len(v.sa))
		}
		for i := range got {
			if got[i] != v.sa[i] {
				t.Errorf("%q: SA[%d] = %d, want %d (got %v)", v.input, i, got[i], v.sa[i], got)
				break
			}
		}
	}
}

func TestBuildSuffixArrayOrdering(t *testing.T) {
	// Testable property 2: the suffixes named by SA, taken in order, must be
	// strictly lexicographically increasing.
	inputs := []string{"banana$", "mississippi$", "abracadabra$", "zzzzzzzzzzzz$", "$"}
	for _, s := range inputs {
		sa, err := BuildSuffixArray([]byte(s))
		if err != nil {
			t.Fatalf("%q: BuildSuffixArray: %v", s, err)
		}
		for i := 1; i < len(sa); i++ {
			if string(s[sa[i-1]:]) >= string(s[sa[i]:]) {
				t.Errorf("%q: suffix at SA[%d]=%d (%q) is not < suffix at SA[%d]=%d (%q)",
					s, i-1, sa[i-1], s[sa[i-1]:], i, sa[i], s[sa[i]:])
			}
		}
	}
}

func TestBuildSuffixArrayIsPermutation(t *testing.T) {
	s := "abcabcabcabcabcabc$"
	sa, err := BuildSuffixArray([]byte(s))
	if err != nil {
		t.Fatalf("BuildSuffixArray: %v", err)
	}
	seen := make([]bool, len(s))
	for _, p := range sa {
		if p < 0 || p >= len(s) || seen[p] {
			t.Fatalf("SA is not a permutation of [0, %d): %v", len(s), sa)
		}
		seen[p] = true
	}
}

func TestBuildSuffixArrayRejectsInvalidSymbol(t *testing.T) {
	if _, err := BuildSuffixArray([]byte("hello world$")); err == nil {
		t.Fatal("BuildSuffixArray with a space byte: got nil error, want InvalidSymbol")
	}
}

func TestBuildSuffixArrayRejectsEmptyInput(t *testing.T) {
	if _, err := BuildSuffixArray(nil); err == nil {
		t.Fatal("BuildSuffixArray(nil): got nil error, want EmptyInput")
	}
}

func TestBuildSuffixArrayRandomAlphabets(t *testing.T) {
	// A brute-force cross-check against sort.Strings over every suffix, for
	// a handful of small strings drawn across the supported alphabet.
	for _, s := range []string{
		"zyxwvutsrqp$",
		"aa$",
		"aAbBcC123$",
	} {
		got, err := BuildSuffixArray([]byte(s))
		if err != nil {
			t.Fatalf("%q: BuildSuffixArray: %v", s, err)
		}
		want := bruteForceSuffixArray(s)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%q: SA mismatch at %d: got %v, want %v", s, i, got, want)
				break
			}
		}
	}
}

func bruteForceSuffixArray(s string) []int {
	idx := make([]int, len(s))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return s[idx[i]:] < s[idx[j]:] })
	return idx
}
