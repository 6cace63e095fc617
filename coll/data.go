// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coll

// CollationData is the read-only table supplied by the caller: a
// two-level (fast array + trie) map from code point to CE32, plus the
// side tables a special CE32 indexes into (expansions, contractions,
// prefixes, the Jamo table for Hangul composition). TailoredSet and
// ContractionsAndExpansions only read from it; they never build,
// parse, or mutate one.
//
// The method set follows ICU4C's CollationData class (collationdata.h,
// consumed throughout collationsets.cpp), shaped on the Go side the
// way golang.org/x/text/collate/build's Builder exposes its trie and
// element tables: slices stand in for raw pointer-plus-length-prefix
// arrays, since a Go slice already knows its own length and the ICU
// "store the count at ce32s[0] when the packed length field is 0"
// convention has no Go equivalent worth reproducing.
type CollationData interface {
	// CE32 returns the CE32 a single code point maps to in this table
	// (ICU's CollationData::getCE32).
	CE32(c rune) CE32

	// FinalCE32 resolves a CE32 that may itself alias another slot
	// (ICU's CollationData::getFinalCE32; a non-special CE32 resolves
	// to itself).
	FinalCE32(ce32 CE32) CE32

	// IndirectCE32 resolves a DIGIT-tagged CE32 to the CE32 it stands
	// in for when numeric collation is off (ICU's getIndirectCE32);
	// any other CE32, special or not, resolves to itself.
	IndirectCE32(ce32 CE32) CE32

	// Expansion32 returns the EXPANSION32-tag expansion CE32 sequence
	// stored at index.
	Expansion32(index uint32) []CE32

	// Expansion returns the EXPANSION-tag 64-bit CE sequence stored at
	// index.
	Expansion(index uint32) []uint64

	// Contraction returns the default CE32 (the mapping for the prefix
	// or lead code point alone, without any of the listed suffixes)
	// and the suffix trie for a CONTRACTION-tag CE32's context index.
	Contraction(index uint32) (defaultCE32 CE32, suffixes CharsTrie)

	// Prefix returns the default CE32 (the mapping ignoring context)
	// and the prefix trie for a PREFIX-tag CE32's context index.
	Prefix(index uint32) (defaultCE32 CE32, prefixes CharsTrie)

	// JamoCE computes the Hangul decomposition CE for a single leading
	// consonant (0<=index<19), vowel (19<=index<19+21), or trailing
	// consonant (19+21<=index<19+21+28) Jamo index, as addressed by a
	// HANGUL-tag CE32.
	JamoCE(index int) uint64

	// LongPrimary computes the 3-byte primary weight an OFFSET-tag CE32
	// resolves to for code point c, given the base data CE the offset
	// was computed from (ICU's Collation::getThreeBytePrimaryForOffsetData).
	LongPrimary(c rune, baseCE uint64) uint32

	// EnumRanges walks every trie range in code point order, calling fn
	// with each range's CE32 (ICU's utrie2_enum over data->trie). fn
	// returning false stops enumeration early.
	EnumRanges(fn func(start, end rune, ce32 CE32) bool)

	// Base returns the data this table tailors, or nil if this table
	// is a base (root) table with nothing underneath it.
	Base() CollationData
}

// CharsTrie is the trie over UTF-16 string suffixes/prefixes that a
// CONTRACTION or PREFIX special CE32 addresses (ICU's UCharsTrie).
// TailoredSet and ContractionsAndExpansions only ever iterate it.
type CharsTrie interface {
	Iterator() CharsTrieIterator
}

// CharsTrieIterator walks a CharsTrie depth-first in code point order,
// mirroring ICU's UCharsTrie::Iterator. Next returns false once
// exhausted; String and Value are only valid after a call to Next that
// returned true.
type CharsTrieIterator interface {
	Next() bool
	String() string
	Value() int32
}

// decomposeHangul splits a precomposed Hangul syllable into its Jamo
// indices (lead 0-18, vowel 0-20, trailing 0-27, trailing 0 meaning
// "no trailing consonant"), mirroring ICU's Hangul::decompose. Callers
// address JamoCE with 0-based lead/vowel offsets and 19+vowel /
// 39+trailing offsets into a single combined table, matching
// collationsets.cpp's handling of data->jamoCEs.
func decomposeHangul(c rune) (lead, vowel, trailing int, hasTrailing bool) {
	const (
		sBase  = 0xAC00
		vCount = 21
		tCount = 28
	)
	sIndex := int(c) - sBase
	lead = sIndex / (vCount * tCount)
	vowel = (sIndex % (vCount * tCount)) / tCount
	t := sIndex % tCount
	if t != 0 {
		trailing = t
		hasTrailing = true
	}
	return
}
