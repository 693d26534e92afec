// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

// complementPure returns the complement of a within its own universe
// [0, a.Last()]: every non-negative integer up to a's own maximum element
// that a does not already contain. An empty set has no universe and
// therefore no complement; complementPure(New()) is the empty set.
func complementPure(a *Set) *Set {
	if a.lastWordIndex < 0 {
		return New()
	}

	lastPrefix := a.last &^ 31
	out := New()
	out.words = make([]uint32, 0, int(lastPrefix/blockBits)+2)

	c := newCursor(a.words, a.lastWordIndex)
	cOK := advance(&c)

	for prefix := int64(0); prefix <= lastPrefix; prefix += blockBits {
		var lit uint32
		if cOK && c.currentPrefix == prefix {
			lit = ^c.currentLiteral()
			cOK = advance(&c)
		} else {
			lit = 0xFFFFFFFF
		}
		if prefix == lastPrefix {
			lit &= tailBlockMask(a.last)
		}
		out.appendLiteral(lit, prefix)
	}

	out.refreshLast()
	out.size = -1
	out.hash = -1
	return out
}

// tailBlockMask returns a mask keeping only the bits at or below last's
// position within its own 32-value block, clearing the rest so a block
// straddling the universe boundary never gains elements beyond last.
func tailBlockMask(last int64) uint32 {
	n := uint(last&31) + 1
	if n == 32 {
		return 0xFFFFFFFF
	}
	return uint32(1)<<n - 1
}

// rangeMask returns the bitmap of the block at prefix that falls within
// [from, to], both inclusive. Every bit is set except those clipped by the
// block straddling from at the low end or to at the high end.
func rangeMask(prefix, from, to int64) uint32 {
	lit := uint32(0xFFFFFFFF)
	if prefix == from&^31 {
		lit &^= uint32(1)<<uint(from&31) - 1
	}
	if prefix == to&^31 {
		n := uint(to&31) + 1
		if n < 32 {
			lit &= uint32(1)<<n - 1
		}
	}
	return lit
}

// FillSet returns a new canonical Set containing every integer in
// [from, to], inclusive. from must not exceed to.
func FillSet(from, to uint32) (*Set, error) {
	if from > to {
		return nil, ErrInvalidArgument
	}
	s := New()
	fromPrefix := int64(from &^ 31)
	toPrefix := int64(to &^ 31)
	for prefix := fromPrefix; prefix <= toPrefix; prefix += blockBits {
		s.appendLiteral(rangeMask(prefix, int64(from), int64(to)), prefix)
	}
	s.refreshLast()
	s.size = -1
	s.hash = -1
	return s, nil
}

// Fill adds every integer in [from, to] to s, in place. from must not
// exceed to.
func (s *Set) Fill(from, to uint32) error {
	if from > to {
		return ErrInvalidArgument
	}
	fill, _ := FillSet(from, to)
	s.adopt(unionPure(s, fill))
	return nil
}

// ClearRange removes every integer in [from, to] from s, in place. from
// must not exceed to.
func (s *Set) ClearRange(from, to uint32) error {
	if from > to {
		return ErrInvalidArgument
	}
	if s.lastWordIndex < 0 {
		return nil
	}
	fill, _ := FillSet(from, to)
	s.adopt(differencePure(s, fill))
	return nil
}
