// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const acePrefix = "xn--"

// processLabel validates and rewrites one label, ported from ICU's
// UTS46::processLabel. It returns the processed label and the delta in
// runes versus the input label, so callers that are walking a
// larger destination buffer (processUnicode, for the non-isLabel case)
// can keep subsequent label offsets in sync; this implementation's
// caller re-slices on '.' instead, so the delta is informational.
func (p *Profile) processLabel(label string, labelStart, labelLength int, toASCII bool, info *Info) (string, int, error) {
	origLen := len([]rune(label))
	runes := []rune(label)
	errorsAtEntry := info.Errors

	var wasPunycode bool
	if len(runes) >= 4 && runes[0] == 'x' && runes[1] == 'n' && runes[2] == '-' && runes[3] == '-' {
		wasPunycode = true
		decoded, err := punycodeDecode(string(runes[4:]))
		if err != nil {
			info.Errors |= Punycode
			return p.handleBadPunycode(runes, info)
		}
		normalized := uts46Normalize(string(decoded), p.options)
		if normalized != string(decoded) {
			info.Errors |= InvalidACELabel
		}
		runes = []rune(normalized)
	}

	// Step 3: empty label.
	if len(runes) == 0 {
		if toASCII {
			info.Errors |= EmptyLabel
		}
		return string(runes), len(runes) - origLen, nil
	}

	// Step 4: hyphen placement.
	if len(runes) >= 4 && runes[2] == '-' && runes[3] == '-' {
		info.Errors |= Hyphen34
	}
	if runes[0] == '-' {
		info.Errors |= LeadingHyphen
	}
	if runes[len(runes)-1] == '-' {
		info.Errors |= TrailingHyphen
	}

	// Step 5: leading combining mark.
	if unicode.Is(unicode.M, runes[0]) {
		info.Errors |= LeadingCombiningMark
		runes[0] = 0xfffd
	}

	// Step 6: per-code-point scan.
	disallowNonLDHDot := p.options&UseSTD3Rules != 0
	doMapDevChars := !wasPunycode
	if toASCII {
		doMapDevChars = doMapDevChars && p.options&NontransitionalToASCII == 0
	} else {
		doMapDevChars = doMapDevChars && p.options&NontransitionalToUnicode == 0
	}
	// oredChars accumulates the code points the label ends up containing,
	// so a deviation character that transitional processing maps away
	// (ß→ss, ZWNJ/ZWJ removed) must not latch: otherwise step 10 would
	// Punycode a label whose mapping produced a pure-ASCII result.
	var oredChars rune
	didMapDevChars := false
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c <= 0x7f {
			switch {
			case c == '.':
				info.Errors |= LabelHasDot
				runes[i] = 0xfffd
			case disallowNonLDHDot && asciiData[c] < 0:
				info.Errors |= Disallowed
				if wasPunycode {
					info.Errors |= InvalidACELabel
				}
				runes[i] = 0xfffd
			}
			continue
		}
		switch c {
		case 0x00df: // sharp s
			info.HasDevChars = true
			if doMapDevChars {
				didMapDevChars = true
				runes[i] = 's'
				runes = append(runes[:i+1], append([]rune{'s'}, runes[i+1:]...)...)
				i++
				continue
			}
		case 0x03c2: // final sigma
			info.HasDevChars = true
			if doMapDevChars {
				didMapDevChars = true
				runes[i] = 0x03c3
				oredChars |= 0x03c3
				continue
			}
		case 0x200c, 0x200d: // ZWNJ, ZWJ
			info.HasDevChars = true
			if doMapDevChars {
				didMapDevChars = true
				runes = append(runes[:i], runes[i+1:]...)
				i--
				continue
			}
		case 0xfffd:
			info.Errors |= Disallowed
		}
		oredChars |= c
	}

	// Step 7: re-NFC if deviation mapping may have produced a non-NFC
	// string (ß→ss and sigma/joiner removal can change normalization).
	if didMapDevChars {
		renorm := norm.NFC.String(string(runes))
		runes = []rune(renorm)
	}

	// Step 8: BiDi check, short-circuited unless a Hebrew/Arabic-range
	// code unit is present (the oredChars filter).
	if p.options&CheckBidi != 0 && oredChars >= 0x590 {
		if !isLabelOkBiDi(runes) {
			info.Errors |= Bidi
		}
	}

	// Step 9: CONTEXTJ check, short-circuited unless oredChars has all of
	// ZWNJ's bits set (always the case when a ZWNJ or ZWJ is present).
	if p.options&CheckContextJ != 0 && oredChars&0x200c == 0x200c {
		if !isLabelOkContextJ(runes) {
			info.Errors |= ContextJ
		}
	}

	// Step 10: re-encode to Punycode. Only this label's own errors count
	// here; violations reported by earlier labels must not force an
	// unrelated ACE label to be re-encoded.
	if toASCII {
		labelErrored := info.Errors != errorsAtEntry
		switch {
		case wasPunycode && !didMapDevChars && !labelErrored:
			// Unmodified, valid ACE label: keep the original "xn--" form
			// rather than round-tripping the decoded Unicode through the
			// encoder again.
			if origLen > 63 {
				info.Errors |= LabelTooLong
			}
			return label, 0, nil
		case wasPunycode || oredChars >= 0x80:
			encoded, err := punycodeEncode(runes)
			if err != nil {
				return "", 0, err
			}
			out := acePrefix + encoded
			if len(out) > 63 {
				info.Errors |= LabelTooLong
			}
			return out, len([]rune(out)) - origLen, nil
		default:
			// All-ASCII label on the Unicode path.
			if len(runes) > 63 {
				info.Errors |= LabelTooLong
			}
		}
	}

	return string(runes), len(runes) - origLen, nil
}

// handleBadPunycode implements the fallback in UTS46::processLabel's
// Punycode-decode-failure branch: append U+FFFD only if every
// remaining code unit is LDH (letters/digits/hyphen), after replacing
// any STD3-disallowed ASCII with U+FFFD.
func (p *Profile) handleBadPunycode(runes []rune, info *Info) (string, int, error) {
	disallowNonLDHDot := p.options&UseSTD3Rules != 0
	onlyLDH := true
	for i := 4; i < len(runes); i++ {
		c := runes[i]
		if c <= 0x7f {
			if c == '.' {
				info.Errors |= LabelHasDot
				onlyLDH = false
				runes[i] = 0xfffd
			} else if asciiData[c] < 0 {
				onlyLDH = false
				if disallowNonLDHDot {
					runes[i] = 0xfffd
				}
			}
		} else {
			onlyLDH = false
		}
	}
	if onlyLDH {
		runes = append(runes, 0xfffd)
		return string(runes), 1, nil
	}
	return string(runes), 0, nil
}
