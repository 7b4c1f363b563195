// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textbwt

import (
	"container/heap"

	"github.com/dsnet/textbwt/internal/errors"
)

// huffmanNode is one node of the Huffman merge tree, held in an arena
// (nodes []huffmanNode) and referenced by index rather than pointer, in the
// same style as internal/suffixtree's node/edge arenas.
type huffmanNode struct {
	freq        int
	sym         byte
	isLeaf      bool
	left, right int // arena indices, valid only when !isLeaf
	seq         int // insertion order, used only to break frequency ties
}

// huffmanHeap is a min-heap over arena indices, ordered by (freq, seq). The
// seq field breaks frequency ties by insertion order, giving the merge a
// deterministic result regardless of map iteration order upstream.
type huffmanHeap struct {
	nodes *[]huffmanNode
	idx   []int
}

func (h huffmanHeap) Len() int { return len(h.idx) }
func (h huffmanHeap) Less(i, j int) bool {
	a, b := (*h.nodes)[h.idx[i]], (*h.nodes)[h.idx[j]]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}
func (h huffmanHeap) Swap(i, j int)       { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }
func (h *huffmanHeap) Push(x interface{}) { h.idx = append(h.idx, x.(int)) }
func (h *huffmanHeap) Pop() interface{} {
	old := h.idx
	n := len(old)
	v := old[n-1]
	h.idx = old[:n-1]
	return v
}

// buildHuffmanTable constructs a non-canonical Huffman code over the
// symbols present in l: tally frequencies, repeatedly merge the two
// least-frequent nodes via a min-heap, then assign codewords by walking
// root-to-leaf paths. The single-symbol edge case is handled explicitly,
// since a one-node tree has no root-to-leaf edge to label.
//
// Codeword assignment is iterative, with an explicit (node, bits) stack,
// to avoid recursion depth proportional to alphabet size.
func buildHuffmanTable(l []byte) (map[byte]string, error) {
	var freq [suffixAlphabetSize]int
	for _, c := range l {
		idx, err := alphabetIndex(c)
		if err != nil {
			return nil, err
		}
		freq[idx]++
	}

	var nodes []huffmanNode
	h := &huffmanHeap{nodes: &nodes}
	seq := 0
	for i, f := range freq {
		if f == 0 {
			continue
		}
		nodes = append(nodes, huffmanNode{freq: f, sym: indexToByte(i), isLeaf: true, seq: seq})
		h.idx = append(h.idx, len(nodes)-1)
		seq++
	}
	if len(h.idx) == 0 {
		return nil, errors.E(errors.EmptyInput, "buildHuffmanTable: no symbols")
	}
	heap.Init(h)

	if len(h.idx) == 1 {
		sym := nodes[h.idx[0]].sym
		return map[byte]string{sym: "0"}, nil
	}

	for h.Len() > 1 {
		a := heap.Pop(h).(int)
		b := heap.Pop(h).(int)
		nodes = append(nodes, huffmanNode{
			freq: nodes[a].freq + nodes[b].freq,
			left: a, right: b, seq: seq,
		})
		heap.Push(h, len(nodes)-1)
		seq++
	}
	root := h.idx[0]

	codes := make(map[byte]string, len(nodes))
	type frame struct {
		node int
		bits string
	}
	stack := []frame{{root, ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := nodes[f.node]
		if n.isLeaf {
			codes[n.sym] = f.bits
			continue
		}
		stack = append(stack, frame{n.left, f.bits + "0"})
		stack = append(stack, frame{n.right, f.bits + "1"})
	}
	return codes, nil
}

// trieNode is one node of the decode-side binary trie built from a header's
// (symbol, codeword) pairs. children[0]/children[1] are arena indices, -1
// when absent.
type trieNode struct {
	children [2]int
	sym      byte
	isLeaf   bool
}

type huffmanTrie struct {
	nodes []trieNode
}

func newHuffmanTrie() *huffmanTrie {
	return &huffmanTrie{nodes: []trieNode{{children: [2]int{-1, -1}}}}
}

const trieRoot = 0

// insert adds one (symbol, codeword) pair. It reports CodewordCollision if
// bits is a prefix of an already-inserted codeword, or if an already
// inserted codeword is a prefix of bits.
func (t *huffmanTrie) insert(sym byte, bits string) error {
	cur := trieRoot
	for i := 0; i < len(bits); i++ {
		if t.nodes[cur].isLeaf {
			return errors.E(errors.CodewordCollision, "huffman codeword is a prefix of another")
		}
		bit := bits[i] - '0'
		next := t.nodes[cur].children[bit]
		if next == -1 {
			t.nodes = append(t.nodes, trieNode{children: [2]int{-1, -1}})
			next = len(t.nodes) - 1
			t.nodes[cur].children[bit] = next
		}
		cur = next
	}
	if t.nodes[cur].isLeaf || t.nodes[cur].children[0] != -1 || t.nodes[cur].children[1] != -1 {
		return errors.E(errors.CodewordCollision, "huffman codeword collides with another")
	}
	t.nodes[cur].isLeaf = true
	t.nodes[cur].sym = sym
	return nil
}

// step descends one bit from node cur, reporting the resulting node and, if
// it is a leaf, the decoded symbol.
func (t *huffmanTrie) step(cur int, bit uint) (next int, sym byte, isLeaf bool, err error) {
	n := t.nodes[cur].children[bit]
	if n == -1 {
		return 0, 0, false, errors.E(errors.MalformedHeader, "huffman bit sequence matches no codeword")
	}
	if t.nodes[n].isLeaf {
		return n, t.nodes[n].sym, true, nil
	}
	return n, 0, false, nil
}
