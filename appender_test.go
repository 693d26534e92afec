// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppendElementCanonicalForm(t *testing.T) {
	s := New()
	for _, v := range []uint32{5, 5 + 32, 5 + 64} {
		s.appendElement(v)
	}
	// Three elements, one per block, each the lone bit of its block: every
	// word should be single-value, never a marker with a trailing literal.
	if s.lastWordIndex != 2 {
		t.Fatalf("want 3 words, got %d", s.lastWordIndex+1)
	}
	for i, w := range s.words[:s.lastWordIndex+1] {
		if !isSingleValue(w) {
			t.Errorf("word %d: want single-value, got marker %#x", i, w)
		}
	}
}

func TestAppendElementLiteralPromotion(t *testing.T) {
	s := New()
	s.appendElement(5)
	s.appendElement(10) // same block as 5: promotes to a 2-bit literal
	if s.lastWordIndex != 1 {
		t.Fatalf("want marker+literal (2 words), got %d words", s.lastWordIndex+1)
	}
	if isSingleValue(s.words[0]) {
		t.Fatal("word 0: want marker, got single-value")
	}
	wantLit := uint32(1)<<5 | uint32(1)<<10
	if s.words[1] != wantLit {
		t.Errorf("literal: got %#x, want %#x", s.words[1], wantLit)
	}
}

func TestAppenderNeverStoresZeroLiteral(t *testing.T) {
	s := New()
	s.appendLiteral(0, 0)
	if s.lastWordIndex != -1 {
		t.Fatal("appendLiteral(0, ...) must be a no-op, canonical form forbids zero literals")
	}
}

func TestAppenderSplitsAtMaxLiterals(t *testing.T) {
	s := New()
	// One marker may govern at most maxLiterals attached literals; a 33rd
	// literal in the same run must open a fresh marker rather than
	// overflowing the 5-bit count field.
	for i := 0; i < maxLiterals+1; i++ {
		s.appendLiteral(3, int64(i)*blockBits) // 3 = two set bits, never single-value
	}
	markers := 0
	for i := 0; i <= s.lastWordIndex; i++ {
		if !isSingleValue(s.words[i]) {
			markers++
		}
	}
	if markers != 2 {
		t.Errorf("want 2 markers after splitting at %d literals, got %d", maxLiterals+1, markers)
	}
}

func TestRefreshLastAfterRawAppend(t *testing.T) {
	s := New()
	s.appendLiteral(uint32(1)<<3|uint32(1)<<9, 0)
	s.appendLiteral(uint32(1)<<2, 64)
	s.refreshLast()
	if s.last != 64+2 {
		t.Errorf("refreshLast: got %d, want %d", s.last, 64+2)
	}
}

func TestAppendAllRespectsLimit(t *testing.T) {
	src := buildSet(t, []uint32{0, 1, 40, 41, 80})
	it := newCursor(src.words, src.lastWordIndex)
	if !it.hasNext() {
		t.Fatal("source cursor unexpectedly empty")
	}
	it.next()

	dst := New()
	reachedLimit := dst.appendAll(&it, 64)
	if !reachedLimit {
		t.Fatal("appendAll: want true (limit reached), got false (exhausted)")
	}
	dst.refreshLast()
	dst.size = -1

	if diff := cmp.Diff([]uint32{0, 1, 40, 41}, toSlice(dst)); diff != "" {
		t.Errorf("appendAll mismatch (-want +got):\n%s", diff)
	}
}
