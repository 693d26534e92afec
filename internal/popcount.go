// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package internal

import (
	"math/bits"

	"github.com/klauspost/cpuid"
)

// hasPopCnt gates the hardware POPCNT fast path the same way klauspost's own
// compression packages gate their asm fast paths on CPU feature bits rather
// than GOARCH alone.
var hasPopCnt = cpuid.CPU.PopCnt

// popcountLUT is the software fallback: population count of every byte
// value, built once at init like the LUTs each compression format keeps for
// its own bit tricks.
var popcountLUT [256]uint8

func init() {
	for i := range popcountLUT {
		b := uint8(i)
		b = b - ((b >> 1) & 0x55)
		b = (b & 0x33) + ((b >> 2) & 0x33)
		popcountLUT[i] = (b + (b >> 4)) & 0x0f
	}
}

// Popcount32 returns the number of set bits in v.
func Popcount32(v uint32) int {
	if hasPopCnt {
		return bits.OnesCount32(v)
	}
	return int(popcountLUT[byte(v)]) +
		int(popcountLUT[byte(v>>8)]) +
		int(popcountLUT[byte(v>>16)]) +
		int(popcountLUT[byte(v>>24)])
}

// TrailingZeros32 returns the number of trailing zero bits in v; 32 if v is
// zero. Kept alongside Popcount32 so callers depend on one shared bit-trick
// surface rather than sprinkling math/bits calls throughout the package.
func TrailingZeros32(v uint32) int {
	return bits.TrailingZeros32(v)
}

// LeadingZeros32 returns the number of leading zero bits in v; 32 if v is
// zero.
func LeadingZeros32(v uint32) int {
	return bits.LeadingZeros32(v)
}
