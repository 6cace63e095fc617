// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coll enumerates the tailoring relationship between a
// collation data table and its base: the set of code points and
// strings whose collation element mapping is tailored (TailoredSet),
// and the set of contractions and expansions reachable from a data
// table (ContractionsAndExpansions). It consumes a CollationData
// implementation supplied by the caller; it does not build, parse or
// generate one.
//
// This mirrors ICU4C's collationsets.cpp (TailoredSet,
// ContractionsAndExpansions), with collation elements represented the
// way golang.org/x/text/collate/build does: a tagged-union value
// packed into a single integer with const tag bands and small accessor
// methods.
package coll

import (
	"errors"
	"fmt"
)

// ErrInternal signals that enumeration reached a reserved or forbidden
// CE32 tag: TagLeadSurrogate or TagReserved11 anywhere, TagPrefix still
// present after context-peeling, TagOffset on the tailoring side rather
// than the base side, or a TagImplicit low-bit-0 CE32 outside the
// U+0000 range. It should never be observed for
// well-formed CollationData; TailoredSet.ForData and
// ContractionsAndExpansions.ForData return it the first time their
// trie walk encounters one of these, matching ICU's
// U_INTERNAL_PROGRAM_ERROR.
var ErrInternal = errors.New("coll: internal error")

// CE32 is the bit-packed 32-bit collation element the CE32 trie maps
// a code point (or code point range) to. The packing here is this
// package's own (bit 31 selects "special", the next 4 bits are the
// Tag, the low 27 bits are a payload index), not a byte-for-byte
// reproduction of ICU's internal Collation class layout, since nothing
// in this package's callers depends on matching ICU's bits exactly.
type CE32 uint32

const (
	specialFlag CE32 = 1 << 31
	tagShift         = 27
	tagMask     CE32 = 0xF << tagShift
	indexMask   CE32 = (1 << tagShift) - 1
)

// Tag identifies the kind of special CE32. Only the tags this package
// consumes are given names; anything else decodes to one of the two
// reserved tags, which TailoredSet/ContractionsAndExpansions must
// reject with ErrInternal.
type Tag uint8

const (
	TagExpansion32 Tag = iota
	TagExpansion
	TagPrefix
	TagContraction
	TagDigit
	TagImplicit
	TagOffset
	TagHangul
	TagLeadSurrogate // reserved: always an internal-error condition
	TagReserved11    // reserved: always an internal-error condition
)

// MinSpecialCE32 is the sentinel meaning "this range falls back to the
// base data, it is not tailored" (ICU's Collation::MIN_SPECIAL_CE32).
// It is the lowest-valued special CE32 (tag 0, index 0), so
// MakeCE32(TagExpansion32, 0) yields this sentinel rather than a
// reference to expansion index 0.
const MinSpecialCE32 = specialFlag

// MakeCE32 packs a special CE32 with the given tag and payload index.
// Exposed so callers that implement CollationData (or tests that
// construct fixture data) don't have to know the bit layout.
func MakeCE32(tag Tag, index uint32) (CE32, error) {
	if CE32(index)&^indexMask != 0 {
		return 0, fmt.Errorf("coll: CE32 index %#x out of range", index)
	}
	return specialFlag | CE32(tag)<<tagShift | CE32(index)&indexMask, nil
}

// IsSpecial reports whether c carries a tag rather than direct weights.
func (c CE32) IsSpecial() bool { return c&specialFlag != 0 }

// Tag returns c's special tag. Only meaningful when IsSpecial is true.
func (c CE32) Tag() Tag {
	t := Tag((c & tagMask) >> tagShift)
	if t > TagReserved11 {
		return TagReserved11
	}
	return t
}

// Index returns c's payload index. Only meaningful when IsSpecial is true.
func (c CE32) Index() uint32 { return uint32(c & indexMask) }

// IsPrefixCE32 reports whether c is a PREFIX-tagged special.
func (c CE32) IsPrefixCE32() bool { return c.IsSpecial() && c.Tag() == TagPrefix }

// IsContractionCE32 reports whether c is a CONTRACTION-tagged special.
func (c CE32) IsContractionCE32() bool { return c.IsSpecial() && c.Tag() == TagContraction }

// longPrimaryFlag distinguishes the long-primary encoding of an
// EXPANSION32-tag CE32 (a single 3-byte primary weight packed directly
// into the index, used when a tailoring copies an OFFSET-tag base
// mapping) from an ordinary expansion table reference.
const longPrimaryFlag = 1 << 26

// LongPrimaryWeight returns the 3-byte primary weight packed into c,
// if c was built by MakeLongPrimaryCE32 (ICU's
// Collation::isLongPrimaryCE32/primaryFromLongPrimaryCE32).
func (c CE32) LongPrimaryWeight() (weight uint32, ok bool) {
	if !c.IsSpecial() || c.Tag() != TagExpansion32 || c.Index()&longPrimaryFlag == 0 {
		return 0, false
	}
	return uint32(c.Index() &^ longPrimaryFlag), true
}

// MakeLongPrimaryCE32 packs a 3-byte primary weight as a long-primary
// EXPANSION32-tag CE32.
func MakeLongPrimaryCE32(weight uint32) (CE32, error) {
	return MakeCE32(TagExpansion32, weight|longPrimaryFlag)
}
