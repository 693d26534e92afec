// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

// A word is one of the two 32-bit encodings that make up a Set's buffer.
//
// A marker word has bit 31 set. Bits 30..5 hold the prefix of the block it
// governs (always a multiple of 32); bits 4..0 hold the count of literal
// words immediately following it, minus one (so a marker always governs at
// least one attached literal). A single-value word has bit 31 clear: its
// entire 32-bit value *is* the one non-negative integer it represents, and
// it stands for a block holding exactly that element.
//
// A value can only be encoded as a single-value word if it is below 2^31,
// since anything at or above that would set bit 31 and be misread as a
// marker. A marker's prefix field likewise spans only bits 30..5, so no
// block at or above 2^31 can be addressed: the encoding holds elements in
// [0, 2^31) only.
const (
	markerBit    = uint32(1) << 31
	prefixMask   = uint32(0x7FFFFFE0)
	literalMask  = uint32(0x1F)
	maxLiterals  = 32 // literals that may follow one marker
	blockBits    = 32
	singleValueLimit = markerBit // values must be strictly below this to use single-value encoding
)

// isSingleValue reports whether w encodes a lone element directly rather
// than a marker.
func isSingleValue(w uint32) bool {
	return w&markerBit == 0
}

// prefixOf returns the block-aligned prefix addressed by w, whether w is a
// marker or a single-value word.
func prefixOf(w uint32) uint32 {
	return w & prefixMask
}

// literalCountOf returns the number of literal words following marker word
// w. Only meaningful when w is a marker.
func literalCountOf(w uint32) int {
	return int(w & literalMask)
}

// decodeSingleValue returns the element represented by single-value word w.
func decodeSingleValue(w uint32) uint32 {
	return w
}

// encodeMarker builds a marker word addressing prefix with k+1 attached
// literals (k in 0..31).
func encodeMarker(prefix uint32, k int) uint32 {
	return markerBit | (prefix & prefixMask) | (uint32(k) & literalMask)
}

// canEncodeSingleValue reports whether v may be represented directly as a
// single-value word.
func canEncodeSingleValue(v uint32) bool {
	return v < singleValueLimit
}

// containsOnlyOneBit reports whether L has exactly one bit set.
func containsOnlyOneBit(L uint32) bool {
	return L != 0 && L&(L-1) == 0
}
