// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "golang.org/x/text/unicode/bidi"

// dirMask turns a small set of bidi.Class values into an OR-able bit,
// mirroring the U_MASK(...) macros in uts46.cpp so the rest of this
// file reads the same way the ICU source does.
func dirMask(c bidi.Class) uint32 { return 1 << uint(c) }

var (
	lMask     = dirMask(bidi.L)
	rMask     = dirMask(bidi.R)
	alMask    = dirMask(bidi.AL)
	rAlMask   = rMask | alMask
	lRAlMask  = lMask | rAlMask
	enMask    = dirMask(bidi.EN)
	anMask    = dirMask(bidi.AN)
	enAnMask  = enMask | anMask
	esMask    = dirMask(bidi.ES)
	csMask    = dirMask(bidi.CS)
	etMask    = dirMask(bidi.ET)
	onMask    = dirMask(bidi.ON)
	bnMask    = dirMask(bidi.BN)
	nsmMask   = dirMask(bidi.NSM)
	lEnMask = lMask | enMask
	rAlEnAn = rAlMask | enAnMask
	ltrTail = lEnMask | esMask | csMask | etMask | onMask | bnMask | nsmMask
	rtlTail = rAlMask | enAnMask | esMask | csMask | etMask | onMask | bnMask | nsmMask
)

func classOf(r rune) bidi.Class {
	p, _ := bidi.LookupRune(r)
	return p.Class()
}

// isLabelOkBiDi implements the IDNA2008 BiDi rule (RFC 5893), ported
// from UTS46::isLabelOkBiDi. label has already had leading/trailing
// and dot/hyphen checks applied; this only validates directionality.
func isLabelOkBiDi(label []rune) bool {
	if len(label) == 0 {
		return true
	}
	firstMask := dirMask(classOf(label[0]))
	if firstMask&^lRAlMask != 0 {
		return false
	}

	// Last non-NSM code point, scanning backward.
	lastMask := firstMask
	i := len(label)
	for i > 0 {
		i--
		c := classOf(label[i])
		if c != bidi.NSM {
			lastMask = dirMask(c)
			break
		}
	}

	if firstMask&lMask != 0 {
		if lastMask&^lEnMask != 0 {
			return false
		}
	} else {
		if lastMask&^rAlEnAn != 0 {
			return false
		}
	}

	var mask uint32
	for _, r := range label[1:] {
		mask |= dirMask(classOf(r))
	}
	if firstMask&lMask != 0 {
		if mask&^ltrTail != 0 {
			return false
		}
	} else {
		if mask&^rtlTail != 0 {
			return false
		}
		if mask&enAnMask == enAnMask {
			return false
		}
	}
	return true
}
