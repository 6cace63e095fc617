// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "strings"

// process is the top-level UTS #46 pipeline, ported from ICU's
// UTS46::process / UTS46::processUnicode (uts46.cpp). dest and src are
// logically distinct buffers; Go strings are immutable so the aliasing
// check ICU needs doesn't apply, but isLabel still governs dot
// handling.
func (p *Profile) process(src string, isLabel, toASCII bool, info *Info) (string, error) {
	info.reset()
	if len(src) == 0 {
		info.Errors |= EmptyLabel
		return "", nil
	}

	disallowNonLDHDot := p.options&UseSTD3Rules != 0
	labelStart := 0
	i := 0
	for {
		if i == len(src) {
			// ASCII fast path ran to completion: no Unicode path needed.
			if toASCII && i-labelStart > 63 {
				info.Errors |= LabelTooLong
			}
			return fastPathResult(src, info, isLabel, toASCII)
		}
		c := src[i]
		if c > 0x7f {
			break
		}
		cData := asciiData[c]
		switch {
		case cData > 0:
			// lowercased in fastPathResult's copy; just advance.
		case cData < 0 && disallowNonLDHDot:
			goto unicodePath
		default:
			switch c {
			case '-':
				if i == labelStart+3 && i > 0 && src[i-1] == '-' {
					goto unicodePath
				}
				if i == labelStart {
					info.Errors |= LeadingHyphen
				}
				if i+1 == len(src) || src[i+1] == '.' {
					info.Errors |= TrailingHyphen
				}
			case '.':
				if isLabel {
					goto unicodePath
				}
				if i == labelStart && i < len(src)-1 {
					info.Errors |= EmptyLabel
				} else if toASCII && i-labelStart > 63 {
					info.Errors |= LabelTooLong
				}
				labelStart = i + 1
			}
		}
		i++
	}
unicodePath:
	return p.processUnicode(src, labelStart, i, isLabel, toASCII, info)
}

// fastPathResult lowercases the ASCII-only src in place (logically) and
// applies the final nameToASCII domain-length rule; ASCII-only input
// needs no Unicode pass.
func fastPathResult(src string, info *Info, isLabel, toASCII bool) (string, error) {
	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); i++ {
		c := src[i]
		if asciiData[c] > 0 {
			c += 0x20
		}
		b.WriteByte(c)
	}
	out := b.String()
	if toASCII && !isLabel {
		if len(out) >= 254 && (len(out) > 254 || out[253] != '.') {
			info.Errors |= DomainNameTooLong
		}
	}
	return out, nil
}

// processUnicode normalizes from mappingStart onward (appending to the
// ASCII prefix already emitted) and then segments by '.' to drive
// processLabel over each label, matching UTS46::processUnicode.
func (p *Profile) processUnicode(src string, labelStart, mappingStart int, isLabel, toASCII bool, info *Info) (string, error) {
	var dest string
	if mappingStart == 0 {
		dest = uts46Normalize(src, p.options)
	} else {
		// The ASCII fast path already classified and lowered
		// src[:mappingStart]; that prefix is NFC-stable, so it can be
		// reused verbatim as the stable prefix normalizeSecondAndAppend
		// expects, with only the remaining tail needing mapping+NFC.
		prefix := asciiLower(src[:mappingStart])
		dest = normalizeSecondAndAppend(prefix, src[mappingStart:], p.options)
	}

	if isLabel {
		out, _, err := p.processLabel(dest, 0, len(dest), toASCII, info)
		return out, err
	}

	// Labels before labelStart were fully validated and emitted by the
	// ASCII fast path; they are all-ASCII, so the byte index doubles as
	// the rune index into dest.
	var out strings.Builder
	runes := []rune(dest)
	out.WriteString(string(runes[:labelStart]))
	labelLimit := labelStart
	start := labelStart
	for labelLimit < len(runes) {
		if runes[labelLimit] == '.' {
			labelStr := string(runes[start:labelLimit])
			processed, _, err := p.processLabel(labelStr, 0, len(labelStr), toASCII, info)
			if err != nil {
				return "", err
			}
			out.WriteString(processed)
			out.WriteByte('.')
			start = labelLimit + 1
		}
		labelLimit++
	}
	// Final label: permitted to be empty only when it is the very last
	// one and the destination is non-empty overall.
	if start == 0 || start < labelLimit {
		labelStr := string(runes[start:labelLimit])
		processed, _, err := p.processLabel(labelStr, 0, len(labelStr), toASCII, info)
		if err != nil {
			return "", err
		}
		out.WriteString(processed)
	}
	result := out.String()
	if toASCII && !isLabel {
		if len(result) >= 254 && (len(result) > 254 || result[253] != '.') {
			info.Errors |= DomainNameTooLong
		}
	}
	return result, nil
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c < 0x80 && asciiData[c] > 0 {
			b[i] = c + 0x20
		}
	}
	return string(b)
}
