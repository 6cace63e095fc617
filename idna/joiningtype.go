// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "unicode"

// joinType is UAX #44's Joining_Type property, restricted to the values
// the CONTEXTJ check needs.
type joinType int

const (
	joiningNone joinType = iota
	joiningL
	joiningD
	joiningT
	joiningR
)

// joinRange is an inclusive run of code points sharing a Joining_Type.
type joinRange struct {
	lo, hi rune
	typ    joinType
}

// joinTypeTable covers the scripts that participate in IDNA2008's
// CONTEXTJ rule: Arabic, Syriac and a handful of other joining scripts.
// Neither the standard library nor x/text exposes Joining_Type, so this
// is a compact, hand-maintained subset of the UAX #44
// DerivedJoiningType.txt ranges rather than a generated complete table.
var joinTypeTable = []joinRange{
	{0x0600, 0x0605, joiningT}, // Arabic number signs
	{0x0608, 0x0608, joiningT},
	{0x060B, 0x060B, joiningT},
	{0x0621, 0x0621, joiningR}, // HAMZA
	{0x0622, 0x0623, joiningR}, // ALEF WITH MADDA/HAMZA ABOVE
	{0x0624, 0x0624, joiningR}, // WAW WITH HAMZA ABOVE
	{0x0625, 0x0625, joiningR}, // ALEF WITH HAMZA BELOW
	{0x0626, 0x0626, joiningD}, // YEH WITH HAMZA ABOVE
	{0x0627, 0x0627, joiningR}, // ALEF
	{0x0628, 0x0628, joiningD}, // BEH
	{0x0629, 0x0629, joiningR}, // TEH MARBUTA
	{0x062A, 0x062B, joiningD}, // TEH, THEH
	{0x062C, 0x062E, joiningD}, // JEEM, HAH, KHAH
	{0x062F, 0x0630, joiningR}, // DAL, THAL
	{0x0631, 0x0632, joiningR}, // REH, ZAIN
	{0x0633, 0x0634, joiningD}, // SEEN, SHEEN
	{0x0635, 0x0638, joiningD}, // SAD..ZAH
	{0x0639, 0x063A, joiningD}, // AIN, GHAIN
	{0x0640, 0x0640, joiningD}, // TATWEEL (joins both sides)
	{0x0641, 0x0642, joiningD}, // FEH, QAF
	{0x0643, 0x0643, joiningD}, // KAF
	{0x0644, 0x0644, joiningD}, // LAM
	{0x0645, 0x0646, joiningD}, // MEEM, NOON
	{0x0647, 0x0647, joiningD}, // HEH
	{0x0648, 0x0648, joiningR}, // WAW
	{0x0649, 0x064A, joiningD}, // ALEF MAKSURA, YEH
	{0x064B, 0x065F, joiningT}, // Arabic combining marks (harakat)
	{0x0670, 0x0670, joiningT}, // superscript alef
	{0x0671, 0x0673, joiningR},
	{0x06D5, 0x06D5, joiningR},
	{0x06D6, 0x06DC, joiningT},
	{0x06DF, 0x06E4, joiningT},
	{0x06E7, 0x06E8, joiningT},
	{0x06EA, 0x06ED, joiningT},
	{0x0710, 0x0710, joiningR}, // Syriac ALAPH
	{0x0711, 0x0711, joiningT}, // Syriac QUSHSHAYA
	{0x0712, 0x0714, joiningD},
	{0x0715, 0x0717, joiningR},
	{0x0718, 0x0719, joiningR},
	{0x071A, 0x071D, joiningD},
	{0x071E, 0x071E, joiningR},
	{0x071F, 0x0724, joiningD},
}

// joiningType returns the Joining_Type of c, or joiningNone/joiningT for
// anything not in the table: default-ignorable and combining marks
// behave as Transparent under IDNA2008's rule, which is what the
// CONTEXTJ context walks need even outside the table's explicit ranges.
func joiningType(c rune) joinType {
	for _, r := range joinTypeTable {
		if c < r.lo {
			break
		}
		if c <= r.hi {
			return r.typ
		}
	}
	if unicode.Is(unicode.Mn, c) || unicode.Is(unicode.Cf, c) {
		return joiningT
	}
	return joiningNone
}

// viramaSet lists the canonical-combining-class-9 (Virama) code points
// used by the Joining_Type-independent Virama test of RFC 5892's
// ZWNJ/ZWJ rules. Neither the standard library nor x/text exposes
// per-rune combining class, so this is a direct transcription of the
// ccc=9 entries in the Unicode combining class data, scoped to the
// scripts IDNA2008's joiner rules exercise.
var viramaSet = map[rune]bool{
	0x094D: true, // DEVANAGARI SIGN VIRAMA
	0x09CD: true, // BENGALI SIGN VIRAMA
	0x0A4D: true, // GURMUKHI SIGN VIRAMA
	0x0ACD: true, // GUJARATI SIGN VIRAMA
	0x0B4D: true, // ORIYA SIGN VIRAMA
	0x0BCD: true, // TAMIL SIGN VIRAMA
	0x0C4D: true, // TELUGU SIGN VIRAMA
	0x0CCD: true, // KANNADA SIGN VIRAMA
	0x0D4D: true, // MALAYALAM SIGN VIRAMA
	0x0DCA: true, // SINHALA SIGN AL-LAKUNA
	0x0E3A: true, // THAI CHARACTER PHINTHU
	0x0F84: true, // TIBETAN MARK HALANTA
	0x1039: true, // MYANMAR SIGN VIRAMA
	0x17D2: true, // KHMER SIGN COENG
	0x1A60: true, // TAI THAM SIGN SAKOT
	0xA82C: true, // SYLOTI NAGRI SIGN HASANTA
	0xA8C4: true, // SAURASHTRA SIGN VIRAMA
	0xA953: true, // REJANG VIRAMA
	0xA9C0: true, // JAVANESE PANGKON
	0xAAF6: true, // MEETEI MAYEK VIRAMA
	0xABED: true, // MEETEI MAYEK APUN IYEK
}

func isVirama(c rune) bool { return viramaSet[c] }
