// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import "github.com/wordset/concise/internal"

// The methods in this file are the constructive appender: the primitive
// that every pure constructor (Union, Intersection, ...) and every in-place
// mutator uses to grow a Set one block at a time while preserving its
// canonical form. Apart from appendElement, none of them touch last or
// size; callers that stream
// blocks through the appender during a binary operation invalidate size
// and recompute last once, at the end, via refreshLast.

// tryAttach appends L as another literal under the set's currently open
// marker, if prefix is exactly the block that marker expects next and the
// marker still has room. Reports whether it did so.
func (s *Set) tryAttach(L uint32, prefix int64) bool {
	if s.lastWordIndex < 0 {
		return false
	}
	attached := s.lastWordIndex - s.lastMarkerIndex
	if attached == 0 || attached >= maxLiterals {
		return false
	}
	tailMarker := s.words[s.lastMarkerIndex]
	expected := int64(prefixOf(tailMarker)) + int64(attached)*blockBits
	if prefix != expected {
		return false
	}

	idx := s.lastWordIndex + 1
	s.words = internal.GrowUint32s(s.words, idx+1)
	s.words[idx] = L
	s.lastWordIndex = idx
	s.words[s.lastMarkerIndex] = encodeMarker(prefixOf(tailMarker), attached)
	return true
}

// openNewMarker starts a fresh marker at prefix governing the single
// literal L, preferring the compact single-value encoding when L has
// exactly one bit and the resulting element fits it.
func (s *Set) openNewMarker(L uint32, prefix int64) {
	if v, ok := singleBitValue(L, prefix); ok {
		idx := s.lastWordIndex + 1
		s.words = internal.GrowUint32s(s.words, idx+1)
		s.words[idx] = v
		s.lastWordIndex = idx
		s.lastMarkerIndex = idx
		return
	}

	idx := s.lastWordIndex + 1
	s.words = internal.GrowUint32s(s.words, idx+2)
	s.words[idx] = encodeMarker(uint32(prefix), 0)
	s.words[idx+1] = L
	s.lastWordIndex = idx + 1
	s.lastMarkerIndex = idx
}

// singleBitValue reports the element represented by a one-bit literal L at
// the given block prefix, and whether it can be stored as a single-value
// word.
func singleBitValue(L uint32, prefix int64) (uint32, bool) {
	if !containsOnlyOneBit(L) {
		return 0, false
	}
	v := uint32(prefix) + uint32(internal.TrailingZeros32(L))
	if !canEncodeSingleValue(v) {
		return 0, false
	}
	return v, true
}

// appendLiteral streams literal L, covering the block at prefix, onto the
// set. A zero literal is silently dropped; prefix must not precede the
// block already at the tail.
func (s *Set) appendLiteral(L uint32, prefix int64) {
	if L == 0 {
		return
	}
	if s.tryAttach(L, prefix) {
		return
	}
	s.openNewMarker(L, prefix)
}

// appendLiteralSingleton is the faster path for the common case of a
// single-bit literal whose value is already known, skipping the one-bit
// test and trailing-zero recomputation appendLiteral would otherwise do.
func (s *Set) appendLiteralSingleton(prefix int64, value uint32) {
	L := uint32(1) << (value & 0x1F)
	if s.tryAttach(L, prefix) {
		return
	}
	if canEncodeSingleValue(value) {
		idx := s.lastWordIndex + 1
		s.words = internal.GrowUint32s(s.words, idx+1)
		s.words[idx] = value
		s.lastWordIndex = idx
		s.lastMarkerIndex = idx
		return
	}
	idx := s.lastWordIndex + 1
	s.words = internal.GrowUint32s(s.words, idx+2)
	s.words[idx] = encodeMarker(uint32(prefix), 0)
	s.words[idx+1] = L
	s.lastWordIndex = idx + 1
	s.lastMarkerIndex = idx
}

// appendElement appends the single element i, which must be strictly
// greater than every element already in the set. It updates last and, if
// the size cache is still valid, increments it.
func (s *Set) appendElement(i uint32) {
	prefix := int64(i &^ 31)
	bit := uint32(1) << (i & 31)

	switch {
	case s.lastWordIndex < 0:
		s.openNewMarker(bit, prefix)
	case s.lastWordIndex == s.lastMarkerIndex && isSingleValue(s.words[s.lastWordIndex]):
		tailWord := s.words[s.lastWordIndex]
		if int64(prefixOf(tailWord)) == prefix {
			// A second element lands in the single-value tail's block:
			// promote it to a two-bit literal under a new marker.
			oldBit := uint32(1) << (tailWord & 0x1F)
			idx := s.lastWordIndex
			s.words[idx] = encodeMarker(uint32(prefix), 0)
			s.words = internal.GrowUint32s(s.words, idx+2)
			s.words[idx+1] = oldBit | bit
			s.lastWordIndex = idx + 1
			s.lastMarkerIndex = idx
		} else {
			s.openNewMarker(bit, prefix)
		}
	default:
		tailWord := s.words[s.lastWordIndex]
		if int64(prefixOf(s.words[s.lastMarkerIndex]))+int64(s.lastWordIndex-s.lastMarkerIndex-1)*blockBits == prefix {
			s.words[s.lastWordIndex] = tailWord | bit
		} else {
			s.appendLiteralSingleton(prefix, i)
		}
	}

	s.last = int64(i)
	if s.size >= 0 {
		s.size++
	}
	s.hash = -1
}

// appendAll pumps blocks from it into s, starting at it's current block,
// until either it.currentPrefix reaches limitPrefix or it is exhausted.
// Reports whether the limit was reached (true) or the iterator ran out
// (false) first.
func (s *Set) appendAll(it *cursor, limitPrefix int64) bool {
	for {
		if it.currentPrefix >= limitPrefix {
			return true
		}
		s.appendLiteral(it.currentLiteral(), it.currentPrefix)
		if !it.hasNext() {
			return false
		}
		it.next()
	}
}

// refreshLast recomputes s.last from the tail word, as required after any
// binary operation streams blocks through the appender without tracking
// last incrementally.
func (s *Set) refreshLast() {
	if s.lastWordIndex < 0 {
		s.last = -1
		return
	}
	tail := s.words[s.lastWordIndex]
	if s.lastWordIndex == s.lastMarkerIndex && isSingleValue(tail) {
		s.last = int64(decodeSingleValue(tail))
		return
	}
	marker := s.words[s.lastMarkerIndex]
	k := s.lastWordIndex - s.lastMarkerIndex - 1
	prefix := int64(prefixOf(marker)) + int64(k)*blockBits
	s.last = prefix + int64(31-internal.LeadingZeros32(tail))
}
