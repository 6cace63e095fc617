// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package idna implements the UTS #46 processing of internationalized
// domain names, combining Unicode normalization, character mapping,
// Punycode translation and IDNA2008 label-validity rules (hyphen
// placement, bidi and joiner-context constraints, length limits) into
// a single ToASCII/ToUnicode pipeline.
//
// See http://www.unicode.org/reports/tr46.
package idna // import "github.com/madhurig/icu/idna"

// Options is the OR-combinable flag set controlling UTS #46 processing,
// mirroring ICU's UIDNA_* option bits.
type Options uint32

const (
	// UseSTD3Rules restricts ASCII to letters, digits, hyphen and dot.
	UseSTD3Rules Options = 1 << iota
	// CheckBidi enables the IDNA2008 BiDi label check (§4.3).
	CheckBidi
	// CheckContextJ enables the CONTEXTJ joiner check (§4.4).
	CheckContextJ
	// NontransitionalToASCII suppresses deviation-character mapping
	// when converting to ASCII.
	NontransitionalToASCII
	// NontransitionalToUnicode suppresses deviation-character mapping
	// when converting to Unicode.
	NontransitionalToUnicode
)

// A Profile is a configured IDNA mapper. It is safe for concurrent use:
// once constructed it is never mutated, and every call works on
// caller-owned Info and destination values.
type Profile struct {
	options Options
}

// New resolves an IDNA profile from the given options. It mirrors the
// shape of x/text/internal/export/idna's package-level Profile
// constructors.
func New(options Options) *Profile {
	return &Profile{options: options}
}

var (
	// Transitional implements transitional processing: deviation
	// characters are mapped (ß→ss, final-sigma, ZWNJ/ZWJ dropped) with
	// BiDi and CONTEXTJ checks enabled, matching UIDNA_DEFAULT plus
	// UIDNA_CHECK_BIDI|UIDNA_CHECK_CONTEXTJ in ICU's UTS46 profile.
	Transitional = New(CheckBidi | CheckContextJ)

	// NonTransitional implements nontransitional processing: deviation
	// characters are preserved and re-Punycoded rather than mapped.
	NonTransitional = New(CheckBidi | CheckContextJ | NontransitionalToASCII | NontransitionalToUnicode)

	// Resolve is the recommended profile for resolving domain names
	// for lookup, with STD3 ASCII rules enforced.
	Resolve = New(UseSTD3Rules | CheckBidi | CheckContextJ)
)

// ToASCII converts name to its ASCII-Compatible Encoding. On any rule
// violation the returned string is empty and info.Errors is non-zero;
// callers must check info.Errors rather than relying on a non-nil
// error return, per ICU's fatal-vs-validation error split.
func (p *Profile) ToASCII(name string) (string, *Info, error) {
	info := &Info{}
	dst, err := p.process(name, false, true, info)
	if err != nil {
		return "", info, err
	}
	if info.Errors != 0 {
		return "", info, nil
	}
	return dst, info, nil
}

// ToUnicode converts name to Unicode, decoding any Punycode labels. The
// result is returned even on error, with U+FFFD substituted at
// malformed positions, so callers can still display it.
func (p *Profile) ToUnicode(name string) (string, *Info, error) {
	info := &Info{}
	dst, err := p.process(name, false, false, info)
	return dst, info, err
}

// LabelToASCII is the single-label form of ToASCII.
func (p *Profile) LabelToASCII(label string) (string, *Info, error) {
	info := &Info{}
	dst, err := p.process(label, true, true, info)
	if err != nil {
		return "", info, err
	}
	if info.Errors != 0 {
		return "", info, nil
	}
	return dst, info, nil
}

// LabelToUnicode is the single-label form of ToUnicode.
func (p *Profile) LabelToUnicode(label string) (string, *Info, error) {
	info := &Info{}
	dst, err := p.process(label, true, false, info)
	return dst, info, err
}
