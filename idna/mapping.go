// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// category classifies a code point the way IdnaMappingTable.txt does,
// following the five-way split internal/export/idna/idna.go already
// uses (valid/mapped/disallowed/deviation/ignored), extended with the
// two STD3 variants UTS46 needs.
type category int

const (
	valid category = iota
	mapped
	disallowed
	disallowedSTD3Valid
	disallowedSTD3Mapped
	deviation
	ignored
)

// asciiData classifies ASCII code points exactly as uts46.cpp's
// asciiData table does: -1 disallowed, 0 valid, +1 mapped-to-lowercase.
// Reused by both the ASCII fast path and the generic classifier below.
var asciiData = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 0, 0, -1,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, -1, -1, -1, -1, -1,
	-1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, -1, -1, -1, -1, -1,
	-1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1, -1, -1, -1, -1,
}

// ignoredSet lists the handful of default-ignorable code points that
// IDNA mapping drops outright (distinct from ZWNJ/ZWJ, which are
// deviation characters handled by processLabel, not dropped here).
var ignoredSet = map[rune]bool{
	0x00AD: true, // SOFT HYPHEN
	0x034F: true, // COMBINING GRAPHEME JOINER
	0x180B: true, // MONGOLIAN FREE VARIATION SELECTOR ONE
	0x180C: true,
	0x180D: true,
	0x200B: true, // ZERO WIDTH SPACE
	0x200E: true, // LEFT-TO-RIGHT MARK
	0x200F: true, // RIGHT-TO-LEFT MARK
	0x2060: true, // WORD JOINER
	0xFEFF: true, // ZERO WIDTH NO-BREAK SPACE / BOM
}

// isDeviation reports whether r is one of the four IDNA2008 deviation
// characters (spec GLOSSARY). Mapping for these is applied later, in
// processLabel, not in the generic classifier below.
func isDeviation(r rune) bool {
	switch r {
	case 0x00DF, 0x03C2, 0x200C, 0x200D:
		return true
	}
	return false
}

// classify returns the category of r and, for category==mapped, its
// replacement rune sequence.
func classify(r rune) (category, []rune) {
	if r < 0x80 {
		switch c := asciiData[r]; {
		case c > 0:
			return mapped, []rune{r + 0x20}
		case c < 0:
			return disallowedSTD3Valid, nil
		default:
			return valid, nil
		}
	}
	if isDeviation(r) {
		return deviation, nil
	}
	if ignoredSet[r] {
		return ignored, nil
	}
	if unicode.IsUpper(r) {
		lower := unicode.ToLower(r)
		if lower != r {
			return mapped, []rune{lower}
		}
	}
	switch {
	case unicode.Is(unicode.Cc, r), unicode.Is(unicode.Co, r), unicode.Is(unicode.Cs, r),
		unicode.Is(unicode.Zl, r), unicode.Is(unicode.Zp, r), unicode.Is(unicode.Zs, r),
		!unicode.IsGraphic(r) && !unicode.Is(unicode.Cf, r) && !unicode.Is(unicode.Mn, r) && !unicode.Is(unicode.Mc, r):
		return disallowed, nil
	case unicode.Is(unicode.Cf, r):
		return ignored, nil
	}
	return valid, nil
}

// simplify resolves the two STD3 variants to a plain category given the
// current profile options, matching Profile.simplify in
// internal/export/idna/idna.go.
func simplify(cat category, opts Options) category {
	switch cat {
	case disallowedSTD3Mapped:
		if opts&UseSTD3Rules == 0 {
			return mapped
		}
		return disallowed
	case disallowedSTD3Valid:
		if opts&UseSTD3Rules == 0 {
			return valid
		}
		return disallowed
	}
	return cat
}

// mapForUTS46 applies the UTS46 character-mapping pass (valid passes
// through, mapped is substituted, ignored is dropped, disallowed ASCII
// is left in place for later rejection and disallowed non-ASCII becomes
// U+FFFD) and returns whether anything
// changed. Deviation characters always pass through unchanged here:
// their transitional/nontransitional handling is processLabel's job,
// matching the ICU UTS46 implementation's single shared Normalizer2
// instance.
func mapForUTS46(s string, opts Options) (string, bool) {
	var b strings.Builder
	changed := false
	for _, r := range s {
		cat := simplify(classify1(r), opts)
		switch cat {
		case valid, deviation:
			b.WriteRune(r)
		case mapped:
			_, repl := classify(r)
			for _, m := range repl {
				b.WriteRune(m)
			}
			changed = true
		case ignored:
			changed = true
		default:
			// Disallowed. ASCII stays put for the per-label scan to flag
			// under STD3; disallowed non-ASCII becomes U+FFFD so the scan
			// reports it without needing its own property lookup.
			if r >= 0x80 {
				b.WriteRune(0xfffd)
				changed = true
			} else {
				b.WriteRune(r)
			}
		}
	}
	if !changed {
		return s, false
	}
	return b.String(), true
}

func classify1(r rune) category {
	cat, _ := classify(r)
	return cat
}

// uts46Normalize applies the UTS #46 normalization profile: character
// mapping followed by NFC, the way Normalizer2::getInstance(NULL,
// "uts46", ...) behaves in ICU.
func uts46Normalize(s string, opts Options) string {
	mapped, _ := mapForUTS46(s, opts)
	return norm.NFC.String(mapped)
}

// normalizeSecondAndAppend mirrors Normalizer2::normalizeSecondAndAppend:
// prefix is assumed already normalized (it came from the ASCII fast
// path and contains only NFC-stable code points), tail is mapped and
// normalized and the two are joined and re-stabilized at the boundary.
func normalizeSecondAndAppend(prefix, tail string, opts Options) string {
	mappedTail, _ := mapForUTS46(tail, opts)
	return norm.NFC.String(prefix + mappedTail)
}
