// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package textbwt

import "testing"

func TestBitWriterReader(t *testing.T) {
	w := &bitWriter{}
	w.WriteBit(1)
	w.WriteBit(0)
	w.WriteString("1101")
	w.WriteBitsBE64(0x5, 3) // 101

	if got, want := w.Len(), uint64(9); got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	r := newBitReader(w.Bytes())
	want := []uint{1, 0, 1, 1, 0, 1, 1, 0, 1}
	for i, wb := range want {
		if got := r.ReadBit(); got != wb {
			t.Errorf("bit %d: ReadBit() = %d, want %d", i, got, wb)
		}
	}
	if r.Pos() != uint64(len(want)) {
		t.Errorf("Pos() = %d, want %d", r.Pos(), len(want))
	}
}

func TestBitReaderRandomAccess(t *testing.T) {
	w := &bitWriter{}
	w.WriteString("101100101")
	r := newBitReader(w.Bytes())

	if got := r.BitAt(0); got != 1 {
		t.Errorf("BitAt(0) = %d, want 1", got)
	}
	if got := r.BitAt(2); got != 1 {
		t.Errorf("BitAt(2) = %d, want 1", got)
	}
	if got, want := r.PeekBitsAt(0, 4), uint64(0b1011); got != want {
		t.Errorf("PeekBitsAt(0,4) = %b, want %b", got, want)
	}
	// PeekBitsAt must not move the cursor.
	if r.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0 after Peek", r.Pos())
	}
}

func TestBitWriterPadding(t *testing.T) {
	w := &bitWriter{}
	w.WriteString("101")
	b := w.Bytes()
	if len(b) != 1 {
		t.Fatalf("len(Bytes()) = %d, want 1", len(b))
	}
	if b[0] != 0b10100000 {
		t.Errorf("Bytes()[0] = %08b, want 10100000", b[0])
	}
}
