// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package concise implements a compressed set of non-negative 32-bit
// integers. The set is stored as a sequence of 32-bit words using a hybrid
// run-length and literal-bitmap encoding (each marker word addresses a
// 32-value block and either carries a count of attached literal bitmaps or,
// for the common one-element block, encodes the element directly). All set
// algebra — membership, insertion, deletion, union, intersection,
// difference, symmetric difference, complement — as well as ordered
// iteration, positional access, ranged fill/clear and lexicographic
// comparison operate directly on this compressed form without ever
// decompressing it to a plain bitmap.
package concise

import (
	"math"
	"sort"

	"github.com/dsnet/golib/errs"

	"github.com/wordset/concise/internal"
)

// Set is a compressed set of integers in [0, 2^31). The zero value
// is not ready to use; construct one with New, Convert, or a set algebra
// operation. A Set exclusively owns its backing buffer: no two distinct
// Sets ever alias the same array, and Set is not safe for concurrent
// mutation.
type Set struct {
	words           []uint32
	lastWordIndex   int   // index of the last active word, -1 if empty
	lastMarkerIndex int   // index of the marker governing the tail, -1 if empty
	last            int64 // largest element, -1 if empty
	size            int64 // cardinality, -1 if invalid (recompute on demand)
	hash            int64 // cached HashCode, -1 if invalid (recompute on demand)
}

// New returns an empty Set.
func New() *Set {
	return &Set{lastWordIndex: -1, lastMarkerIndex: -1, last: -1, size: 0, hash: 0}
}

// Empty is an alias of New, matching the construction vocabulary of the
// set algebra (intersection, union, ... empty).
func Empty() *Set { return New() }

// Clone returns a Set with its own copy of the active buffer.
func (s *Set) Clone() *Set {
	c := &Set{
		lastWordIndex:   s.lastWordIndex,
		lastMarkerIndex: s.lastMarkerIndex,
		last:            s.last,
		size:            s.size,
		hash:            s.hash,
	}
	if s.lastWordIndex >= 0 {
		c.words = append([]uint32(nil), s.words[:s.lastWordIndex+1]...)
	}
	return c
}

// adopt atomically replaces s's owned buffer and cached scalars with
// other's, the way every in-place mutator finishes: build a fresh result,
// then swap it in.
func (s *Set) adopt(other *Set) {
	s.words = other.words
	s.lastWordIndex = other.lastWordIndex
	s.lastMarkerIndex = other.lastMarkerIndex
	s.last = other.last
	s.size = other.size
	s.hash = other.hash
}

// singleton returns a new Set containing only v.
func singleton(v uint32) *Set {
	s := New()
	s.appendElement(v)
	return s
}

// Convert builds a Set from a possibly unsorted, possibly duplicated
// collection of integers, deduplicating and sorting before streaming them
// through the appender. Every element must lie in [0, 2^31); the first
// violation aborts the conversion and is reported to the caller, mirroring
// the teacher's own errs.Assert/errs.Recover convention for argument
// validation.
func Convert(vals []int64) (s *Set, err error) {
	defer errs.Recover(&err)

	elems := make([]uint32, len(vals))
	for i, v := range vals {
		errs.Assert(v >= 0 && v <= math.MaxInt32, ErrInvalidArgument)
		elems[i] = uint32(v)
	}
	sort.Slice(elems, func(i, j int) bool { return elems[i] < elems[j] })

	out := New()
	var prev uint32
	var havePrev bool
	for _, v := range elems {
		if havePrev && v == prev {
			continue
		}
		out.appendElement(v)
		prev, havePrev = v, true
	}
	return out, nil
}

// IsEmpty reports whether the set has no elements.
func (s *Set) IsEmpty() bool { return s.lastWordIndex < 0 }

// Size returns the cardinality of the set. The first call after a binary
// operation or range mutation walks the active words once, O(words); the
// result is cached until the next mutation invalidates it.
func (s *Set) Size() int {
	if s.size < 0 {
		s.size = int64(s.computeSize())
	}
	return int(s.size)
}

func (s *Set) computeSize() int {
	total := 0
	c := newCursor(s.words, s.lastWordIndex)
	for c.hasNext() {
		c.next()
		if c.isSingleValue {
			total++
		} else {
			total += internal.Popcount32(c.wordValue)
		}
	}
	return total
}

// Contains reports whether i belongs to the set.
func (s *Set) Contains(i uint32) bool {
	if s.lastWordIndex < 0 || int64(i) > s.last {
		return false
	}
	target := int64(i &^ 31)
	c := newCursor(s.words, s.lastWordIndex)
	if !c.skipAllBefore(target) || c.currentPrefix != target {
		return false
	}
	if c.isSingleValue {
		return decodeSingleValue(c.wordValue) == i
	}
	return c.wordValue&(uint32(1)<<(i&31)) != 0
}

// First returns the smallest element in the set.
func (s *Set) First() (uint32, error) {
	if s.lastWordIndex < 0 {
		return 0, ErrEmptySet
	}
	head := s.words[0]
	if isSingleValue(head) {
		return decodeSingleValue(head), nil
	}
	lit := s.words[1]
	return uint32(prefixOf(head)) + uint32(internal.TrailingZeros32(lit)), nil
}

// Last returns the largest element in the set.
func (s *Set) Last() (uint32, error) {
	if s.lastWordIndex < 0 {
		return 0, ErrEmptySet
	}
	return uint32(s.last), nil
}

// Get returns the k-th smallest element (0-indexed).
func (s *Set) Get(k int) (uint32, error) {
	if k < 0 || k >= s.Size() {
		return 0, ErrOutOfRange
	}
	remaining := k
	c := newCursor(s.words, s.lastWordIndex)
	for c.hasNext() {
		c.next()
		if c.isSingleValue {
			if remaining == 0 {
				return decodeSingleValue(c.wordValue), nil
			}
			remaining--
			continue
		}
		cnt := internal.Popcount32(c.wordValue)
		if remaining < cnt {
			return uint32(c.currentPrefix) + nthSetBit(c.wordValue, remaining), nil
		}
		remaining -= cnt
	}
	return 0, ErrOutOfRange // unreachable: Size() bounds remaining above
}

// nthSetBit returns the bit position of the n-th (0-indexed) set bit of v.
func nthSetBit(v uint32, n int) uint32 {
	for i := 0; i < n; i++ {
		v &= v - 1
	}
	return uint32(internal.TrailingZeros32(v))
}

// IndexOf returns the rank of v (the number of elements smaller than v), or
// -1 if v is not a member of the set.
func (s *Set) IndexOf(v uint32) int {
	if s.lastWordIndex < 0 || int64(v) > s.last {
		return -1
	}
	target := int64(v &^ 31)
	idx := 0
	c := newCursor(s.words, s.lastWordIndex)
	for c.hasNext() {
		c.next()
		if c.currentPrefix == target {
			if c.isSingleValue {
				if decodeSingleValue(c.wordValue) != v {
					return -1
				}
				return idx
			}
			bit := uint32(1) << (v & 31)
			if c.wordValue&bit == 0 {
				return -1
			}
			mask := bit - 1
			return idx + internal.Popcount32(c.wordValue&mask)
		}
		if c.isSingleValue {
			idx++
		} else {
			idx += internal.Popcount32(c.wordValue)
		}
	}
	return -1
}

// Add inserts i into the set.
func (s *Set) Add(i uint32) {
	switch {
	case s.lastWordIndex < 0 || int64(i) > s.last:
		s.appendElement(i)
	case int64(i) == s.last:
		// Already the maximum element.
	default:
		target := int64(i &^ 31)
		c := newCursor(s.words, s.lastWordIndex)
		if !c.skipAllBefore(target) || c.currentPrefix != target {
			s.adopt(unionPure(s, singleton(i)))
			return
		}
		if c.isSingleValue {
			if decodeSingleValue(c.wordValue) != i {
				s.adopt(unionPure(s, singleton(i)))
			}
			return
		}
		bit := uint32(1) << (i & 31)
		if c.wordValue&bit == 0 {
			s.words[c.wordIndex] |= bit
			if s.size >= 0 {
				s.size++
			}
			s.hash = -1
		}
	}
}

// Remove deletes i from the set, if present.
func (s *Set) Remove(i uint32) {
	if s.lastWordIndex < 0 || int64(i) > s.last {
		return
	}
	if int64(i) == s.last {
		if s.lastWordIndex == 0 {
			s.Clear()
			return
		}
		s.adopt(differencePure(s, singleton(i)))
		return
	}

	target := int64(i &^ 31)
	c := newCursor(s.words, s.lastWordIndex)
	if !c.skipAllBefore(target) || c.currentPrefix != target {
		return
	}
	if c.isSingleValue {
		if decodeSingleValue(c.wordValue) == i {
			s.adopt(differencePure(s, singleton(i)))
		}
		return
	}
	bit := uint32(1) << (i & 31)
	if c.wordValue&bit == 0 {
		return
	}
	remaining := c.wordValue &^ bit
	if internal.Popcount32(remaining) >= 2 {
		s.words[c.wordIndex] = remaining
		if s.size >= 0 {
			s.size--
		}
		s.hash = -1
		return
	}
	s.adopt(differencePure(s, singleton(i)))
}

// Flip toggles membership of i.
func (s *Set) Flip(i uint32) {
	if s.Contains(i) {
		s.Remove(i)
	} else {
		s.Add(i)
	}
}

// Clear empties the set in place.
func (s *Set) Clear() {
	if s.lastWordIndex >= 0 {
		s.words = s.words[:0]
	}
	s.lastWordIndex = -1
	s.lastMarkerIndex = -1
	s.last = -1
	s.size = 0
	s.hash = 0
}

// AddAll performs an in-place union with other.
func (s *Set) AddAll(other *Set) {
	if s == other {
		return
	}
	s.adopt(unionPure(s, other))
}

// RemoveAll performs an in-place difference, removing every element of
// other from s.
func (s *Set) RemoveAll(other *Set) {
	if s == other {
		s.Clear()
		return
	}
	s.adopt(differencePure(s, other))
}

// RetainAll performs an in-place intersection with other.
func (s *Set) RetainAll(other *Set) {
	if s == other {
		return
	}
	s.adopt(intersectPure(s, other))
}

// Complement replaces s with its complement up to its own Last, in place.
func (s *Set) Complement() {
	s.adopt(complementPure(s))
}

// ReplaceWith replaces the contents of s with a copy of other.
func (s *Set) ReplaceWith(other *Set) {
	if s == other {
		return
	}
	s.adopt(other.Clone())
}
