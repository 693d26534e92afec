// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/dsnet/golib/hashutil"
)

// Compare returns -1, 0, or +1 as s is lexicographically less than, equal
// to, or greater than other, comparing elements in ascending order: the
// first set to diverge from the other at some element, or to run out of
// elements first, is the lesser one.
func (s *Set) Compare(other *Set) int {
	if s == other {
		return 0
	}
	wa := s.Iterator()
	wb := other.Iterator()
	for {
		va, aok := wa.Next()
		vb, bok := wb.Next()
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		case va < vb:
			return -1
		case va > vb:
			return 1
		}
	}
}

// Equals reports whether s and other contain exactly the same elements.
func (s *Set) Equals(other *Set) bool {
	if s == other {
		return true
	}
	if s.lastWordIndex != other.lastWordIndex || s.last != other.last {
		return false
	}
	for i := 0; i <= s.lastWordIndex; i++ {
		if s.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// HashCode returns a CRC-32 digest of the set's active word region. It is
// consistent with Equals: equal sets always hash equal. The digest is
// cached and invalidated the same way Size is, so repeated calls after a
// binary operation only pay for the recompute once.
func (s *Set) HashCode() uint32 {
	if s.hash < 0 {
		s.hash = int64(s.computeHash())
	}
	return uint32(s.hash)
}

// computeHash folds the active words together one at a time, recombining
// each word's own CRC-32 into the running digest via hashutil.CombineCRC32
// rather than feeding the whole byte slice to a single Write call — the
// same splice-without-rehash trick the teacher uses to stitch together two
// block checksums in bzip2.
func (s *Set) computeHash() uint32 {
	var crc uint32
	var buf [4]byte
	for i := 0; i <= s.lastWordIndex; i++ {
		binary.LittleEndian.PutUint32(buf[:], s.words[i])
		wordCRC := crc32.ChecksumIEEE(buf[:])
		crc = hashutil.CombineCRC32(crc32.IEEE, crc, wordCRC, int64(len(buf)))
	}
	return crc
}

// BitmapCompressionRatio returns the ratio of the number of words this Set
// actually uses to the size an uncompressed bitmap covering [0, Last()]
// would occupy (in 32-bit words). A ratio above 1 means the compressed
// form is larger than the equivalent plain bitmap.
func (s *Set) BitmapCompressionRatio() float64 {
	if s.lastWordIndex < 0 {
		return 1
	}
	uncompressedWords := float64(s.last/blockBits + 1)
	return float64(s.lastWordIndex+1) / uncompressedWords
}

// CollectionCompressionRatio returns the ratio of the number of words this
// Set actually uses to the size a plain integer collection would occupy
// (one word per element).
func (s *Set) CollectionCompressionRatio() float64 {
	if s.lastWordIndex < 0 {
		return 1
	}
	return float64(s.lastWordIndex+1) / float64(s.Size())
}

// ComplementSize returns the cardinality of s's complement within its own
// universe [0, Last()], without materializing it.
func (s *Set) ComplementSize() int {
	if s.lastWordIndex < 0 {
		return 0
	}
	return int(s.last) + 1 - s.Size()
}
