// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

// isLabelOkContextJ implements the CONTEXTJ check of RFC 5892 Appendix
// A.1-A.2, ported from ICU's UTS46::isLabelOkContextJ.
//
// The postcontext walk advances the loop variable it actually reads
// from (j), not i: the ICU source's U16_NEXT_UNSAFE(label, i, c)
// inside a loop controlled by j looks like a transcription slip (i is
// the outer call's mutable cursor, shared with nothing else by this
// point), and advancing the wrong variable would make the postcontext
// scan read the same code point forever on labels with more than one
// joiner. We reproduce the evidently-intended behavior instead.
func isLabelOkContextJ(label []rune) bool {
	for i, c := range label {
		switch c {
		case 0x200c: // ZERO WIDTH NON-JOINER
			if i == 0 {
				return false
			}
			if isVirama(label[i-1]) {
				continue
			}
			if !precontextOK(label, i) || !postcontextOK(label, i) {
				return false
			}
		case 0x200d: // ZERO WIDTH JOINER
			if i == 0 {
				return false
			}
			if !isVirama(label[i-1]) {
				return false
			}
		}
	}
	return true
}

// precontextOK walks left from i, skipping Transparent joining types,
// and requires the first non-Transparent to be Left- or Dual-joining.
func precontextOK(label []rune, i int) bool {
	j := i
	for {
		if j == 0 {
			return false
		}
		j--
		switch joiningType(label[j]) {
		case joiningT:
			continue
		case joiningL, joiningD:
			return true
		default:
			return false
		}
	}
}

// postcontextOK walks right from i, skipping Transparent joining types,
// and requires the first non-Transparent to be Right- or Dual-joining.
func postcontextOK(label []rune, i int) bool {
	for j := i + 1; ; j++ {
		if j == len(label) {
			return false
		}
		switch joiningType(label[j]) {
		case joiningT:
			continue
		case joiningR, joiningD:
			return true
		default:
			return false
		}
	}
}
