// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import (
	"fmt"
	"io"
)

// Dump writes one line per active word to w, decoding each as either a
// marker (its prefix and attached-literal count) or a single-value word
// (the element it represents directly).
func (s *Set) Dump(w io.Writer) error {
	var remaining int
	var blockPrefix uint32
	for i := 0; i <= s.lastWordIndex; i++ {
		word := s.words[i]
		var line string
		switch {
		case remaining > 0:
			remaining--
			line = fmt.Sprintf("%04d: literal        prefix=%d bits=%#08x", i, blockPrefix, word)
			blockPrefix += blockBits
		case isSingleValue(word):
			line = fmt.Sprintf("%04d: single-value   elem=%d", i, decodeSingleValue(word))
		default:
			remaining = literalCountOf(word)
			blockPrefix = prefixOf(word)
			line = fmt.Sprintf("%04d: marker         prefix=%d literals=%d", i, blockPrefix, remaining+1)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
