// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coll

// ContractionsAndExpansions collects every contraction and expansion
// string reachable from a collation data table, tailoring included.
// Ported from collationsets.cpp's ContractionsAndExpansions class.
//
// A tailoring's own trie only holds entries that differ from its
// base; ForData first walks the tailoring to learn which code points
// it covers, then walks the base a second time, skipping anything the
// tailoring already tailored, so the result is the complete set for
// the tailoring as a whole rather than just its diff.
type ContractionsAndExpansions struct {
	contractions Set
	expansions   Set

	// CollectAllPrefixes, when true, makes handlePrefixes walk every
	// branch of a PREFIX-tag's prefix trie (collecting the full cross
	// product of prefixes and following contractions/expansions) rather
	// than only the context-free default mapping. ICU's builder sets
	// this when assembling the permanent "characters that start a
	// contraction" set, and leaves it false for quick inclusion checks
	// that only care about reachability.
	CollectAllPrefixes bool

	data     CollationData
	tailored rangeSet
	checkTailored int // 0: no tailoring; <0: collecting tailored ranges; >0: skipping them

	prefix *string
	suffix *string

	// err latches the first ErrInternal seen so the trie walk can stop
	// as soon as one is found.
	err error
}

// NewContractionsAndExpansions returns a collector that reports into
// contractions and expansions. Either may be nil to skip collecting it.
func NewContractionsAndExpansions(contractions, expansions Set) *ContractionsAndExpansions {
	return &ContractionsAndExpansions{contractions: contractions, expansions: expansions}
}

// ForData walks d (and, if d tailors a base, the base too) collecting
// every contraction and expansion string reachable from it. It returns
// ErrInternal if the walk ever reaches a reserved/forbidden CE32 tag.
func (cne *ContractionsAndExpansions) ForData(d CollationData) error {
	if d.Base() != nil {
		cne.checkTailored = -1
	}
	cne.data = d
	d.EnumRanges(cne.enumRange)
	if cne.err != nil {
		return cne.err
	}
	if d.Base() == nil {
		return nil
	}
	cne.checkTailored = 1
	cne.data = d.Base()
	d.Base().EnumRanges(cne.enumRange)
	return cne.err
}

func (cne *ContractionsAndExpansions) enumRange(start, end rune, ce32 CE32) bool {
	switch {
	case cne.checkTailored == 0:
		// No tailoring in play; nothing to cross-check.
	case cne.checkTailored < 0:
		if ce32 == MinSpecialCE32 {
			return true // fallback to base, not tailored
		}
		cne.tailored.add(start, end)
	case start == end:
		if cne.tailored.contains(start) {
			return true
		}
	case cne.tailored.containsSome(start, end):
		for _, r := range cne.tailored.minus(start, end) {
			cne.handleCE32(r.lo, r.hi, ce32)
			if cne.err != nil {
				return false
			}
		}
		return true
	}
	cne.handleCE32(start, end, ce32)
	return cne.err == nil
}

func (cne *ContractionsAndExpansions) handleCE32(start, end rune, ce32 CE32) {
	for {
		if ce32 <= MinSpecialCE32 {
			return // not special, or the "fall back to base" sentinel
		}
		switch ce32.Tag() {
		case TagExpansion32, TagExpansion, TagHangul:
			// A prefix match already added the relevant strings.
			if cne.prefix == nil {
				cne.addExpansions(start, end)
			}
			return
		case TagPrefix:
			cne.handlePrefixes(start, end, ce32)
			return
		case TagContraction:
			cne.handleContractions(start, end, ce32)
			return
		case TagDigit:
			ce32 = cne.data.IndirectCE32(ce32)
			continue
		case TagReserved11, TagLeadSurrogate:
			cne.err = ErrInternal
			return
		case TagImplicit:
			// The even-valued encoding only ever occurs at U+0000
			// (start==end==0); any other occurrence indicates a
			// malformed table.
			if ce32&1 == 0 {
				if start != 0 || end != 0 {
					cne.err = ErrInternal
					return
				}
				ce32 = cne.data.CE32(0)
				continue
			}
			return
		default:
			return
		}
	}
}

func (cne *ContractionsAndExpansions) handlePrefixes(start, end rune, ce32 CE32) {
	def, prefixes := cne.data.Prefix(ce32.Index())
	cne.handleCE32(start, end, def)
	if !cne.CollectAllPrefixes {
		return
	}
	it := prefixes.Iterator()
	for it.Next() && cne.err == nil {
		s := it.String()
		cne.prefix = &s
		// Prefix/pre-context mappings are a kind of contraction that
		// always yields an expansion.
		cne.addStrings(start, end, cne.contractions)
		cne.addStrings(start, end, cne.expansions)
		cne.handleCE32(start, end, CE32(it.Value()))
	}
	cne.prefix = nil
}

func (cne *ContractionsAndExpansions) handleContractions(start, end rune, ce32 CE32) {
	def, suffixes := cne.data.Contraction(ce32.Index())
	// Ignore a default mapping that falls back to another contraction:
	// that only happens underneath a prefix, where the empty prefix
	// maps to the same contraction set.
	if !def.IsContractionCE32() {
		cne.handleCE32(start, end, def)
	}
	it := suffixes.Iterator()
	for it.Next() && cne.err == nil {
		s := it.String()
		cne.suffix = &s
		cne.addStrings(start, end, cne.contractions)
		if cne.prefix != nil {
			cne.addStrings(start, end, cne.expansions)
		}
		cne.handleCE32(start, end, CE32(it.Value()))
	}
	cne.suffix = nil
}

func (cne *ContractionsAndExpansions) addExpansions(start, end rune) {
	if cne.prefix == nil && cne.suffix == nil {
		if cne.expansions != nil {
			cne.expansions.AddRange(start, end)
		}
		return
	}
	cne.addStrings(start, end, cne.expansions)
}

func (cne *ContractionsAndExpansions) addStrings(start, end rune, set Set) {
	if set == nil {
		return
	}
	prefix := ""
	if cne.prefix != nil {
		prefix = *cne.prefix
	}
	for c := start; c <= end; c++ {
		s := prefix + string(c)
		if cne.suffix != nil {
			s += *cne.suffix
		}
		set.AddString(s)
	}
}
