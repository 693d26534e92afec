// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wordset/concise/internal"
)

// collectForward flattens every block the forward cursor visits into
// individual ascending elements.
func collectForward(s *Set) []uint32 {
	var out []uint32
	c := newCursor(s.words, s.lastWordIndex)
	for c.hasNext() {
		c.next()
		lit := c.currentLiteral()
		for lit != 0 {
			tz := internal.TrailingZeros32(lit)
			out = append(out, uint32(c.currentPrefix)+uint32(tz))
			lit &^= uint32(1) << uint(tz)
		}
	}
	return out
}

// collectReverse flattens every block the reverse cursor visits into
// individual descending elements.
func collectReverse(s *Set) []uint32 {
	var out []uint32
	c := newReverseCursor(s.words, s.lastWordIndex)
	for c.hasNext() {
		c.next()
		lit := c.currentLiteral()
		var block []uint32
		for lit != 0 {
			tz := internal.TrailingZeros32(lit)
			block = append(block, uint32(c.currentPrefix())+uint32(tz))
			lit &^= uint32(1) << uint(tz)
		}
		for i := len(block) - 1; i >= 0; i-- {
			out = append(out, block[i])
		}
	}
	return out
}

func reverseOf(elems []uint32) []uint32 {
	if elems == nil {
		return nil
	}
	out := make([]uint32, len(elems))
	for i, v := range elems {
		out[len(elems)-1-i] = v
	}
	return out
}

func TestCursorForwardAndReverse(t *testing.T) {
	var vectors = [][]uint32{
		nil,
		{0},
		{0, 1, 2, 3},
		{5, 37, 38, 70, 1000000},
		{0, 31, 32, 63, 64},
		{2147483647},
		{0, 2147483647},
	}
	for i, elems := range vectors {
		s := buildSet(t, elems)
		if diff := cmp.Diff(elems, collectForward(s)); diff != "" {
			t.Errorf("test %d: forward cursor mismatch (-want +got):\n%s", i, diff)
		}
		if diff := cmp.Diff(reverseOf(elems), collectReverse(s)); diff != "" {
			t.Errorf("test %d: reverse cursor mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestCursorSkipAllBefore(t *testing.T) {
	elems := []uint32{0, 32, 64, 96, 128, 160, 10000}
	s := buildSet(t, elems)

	c := newCursor(s.words, s.lastWordIndex)
	if !c.skipAllBefore(96) {
		t.Fatal("skipAllBefore(96): cursor unexpectedly exhausted")
	}
	if c.currentPrefix != 96 {
		t.Errorf("skipAllBefore(96): landed on prefix %d", c.currentPrefix)
	}

	if !c.skipAllBefore(160) {
		t.Fatal("skipAllBefore(160): cursor unexpectedly exhausted")
	}
	if c.currentPrefix != 160 {
		t.Errorf("skipAllBefore(160): landed on prefix %d", c.currentPrefix)
	}

	if c.skipAllBefore(1 << 20) {
		t.Error("skipAllBefore(2^20): expected exhaustion, cursor still has a block")
	}
}
