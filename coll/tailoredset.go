// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coll

// TailoredSet finds the set of code points and strings that a
// tailoring's collation data maps differently than its base, by
// walking the tailoring's trie ranges and comparing each against the
// same code point(s) in the base. Ported from collationsets.cpp's
// TailoredSet class.
type TailoredSet struct {
	tailored Set
	data     CollationData
	baseData CollationData

	// prefix/suffix hold the context currently being compared, set
	// only while comparePrefixes/compareContractions are walking a
	// matched branch; add/addSuffix/addPrefix consult them to build
	// the full contextual string to report.
	prefix *string
	suffix *string

	// err latches the first ErrInternal seen so the trie walk can stop
	// as soon as one is found.
	err error
}

// NewTailoredSet returns a TailoredSet that reports differences into
// tailored.
func NewTailoredSet(tailored Set) *TailoredSet {
	return &TailoredSet{tailored: tailored}
}

// ForData walks d's full code point range, comparing every tailored
// mapping against d.Base(). d must have a non-nil Base(); ForData on a
// base (root) table with no base of its own is a no-op, mirroring the
// fact that a root collator tailors nothing. It returns ErrInternal if
// the walk ever reaches a reserved/forbidden CE32 tag.
func (ts *TailoredSet) ForData(d CollationData) error {
	ts.data = d
	ts.baseData = d.Base()
	if ts.baseData == nil {
		return nil
	}
	d.EnumRanges(func(start, end rune, ce32 CE32) bool {
		if ce32 == MinSpecialCE32 {
			return true // fallback to base, not tailored
		}
		ts.handleCE32(start, end, ce32)
		return ts.err == nil
	})
	return ts.err
}

func (ts *TailoredSet) handleCE32(start, end rune, ce32 CE32) {
	if ce32.IsSpecial() {
		ce32 = ts.data.IndirectCE32(ce32)
		if ce32 == MinSpecialCE32 {
			return
		}
	}
	for c := start; c <= end; c++ {
		if ts.err != nil {
			return
		}
		baseCE32 := ts.baseData.FinalCE32(ts.baseData.CE32(c))
		// Do not just skip identical values: contractions and
		// expansions in different data objects normally differ even
		// when they carry the same index, since the index addresses
		// each table's own side tables.
		if ce32.IsSpecial() || baseCE32.IsSpecial() {
			ts.compare(c, ce32, baseCE32)
		} else if ce32 != baseCE32 {
			ts.tailored.AddRune(c)
		}
	}
}

func (ts *TailoredSet) compare(c rune, ce32, baseCE32 CE32) {
	if ce32.IsPrefixCE32() {
		def, prefixes := ts.data.Prefix(ce32.Index())
		ce32 = ts.data.FinalCE32(def)
		if baseCE32.IsPrefixCE32() {
			baseDef, basePrefixes := ts.baseData.Prefix(baseCE32.Index())
			baseCE32 = ts.baseData.FinalCE32(baseDef)
			ts.comparePrefixes(c, prefixes, basePrefixes)
		} else {
			ts.addPrefixes(ts.data, c, prefixes)
		}
	} else if baseCE32.IsPrefixCE32() {
		baseDef, basePrefixes := ts.baseData.Prefix(baseCE32.Index())
		baseCE32 = ts.baseData.FinalCE32(baseDef)
		ts.addPrefixes(ts.baseData, c, basePrefixes)
	}

	if ce32.IsContractionCE32() {
		def, suffixes := ts.data.Contraction(ce32.Index())
		ce32 = ts.data.FinalCE32(def)
		if baseCE32.IsContractionCE32() {
			baseDef, baseSuffixes := ts.baseData.Contraction(baseCE32.Index())
			baseCE32 = ts.baseData.FinalCE32(baseDef)
			ts.compareContractions(c, suffixes, baseSuffixes)
		} else {
			ts.addContractions(c, suffixes)
		}
	} else if baseCE32.IsContractionCE32() {
		baseDef, baseSuffixes := ts.baseData.Contraction(baseCE32.Index())
		baseCE32 = ts.baseData.FinalCE32(baseDef)
		ts.addContractions(c, baseSuffixes)
	}

	tag := -1
	if ce32.IsSpecial() {
		tag = int(ce32.Tag())
	}
	baseTag := -1
	if baseCE32.IsSpecial() {
		baseTag = int(baseCE32.Tag())
	}

	// A contraction whose default CE32 is itself another contraction
	// CE32 only happens underneath a prefix; that case is handled by
	// the prefix branch above, not here.
	if tag == int(TagContraction) {
		return
	}

	// Reserved/forbidden tags: a PREFIX_TAG surviving context-peeling,
	// an OFFSET_TAG on the tailoring side (OFFSET is only ever valid on
	// the base side, handled below), or either side carrying one of the
	// two reserved tags.
	if tag == int(TagPrefix) || tag == int(TagOffset) ||
		tag == int(TagLeadSurrogate) || tag == int(TagReserved11) ||
		baseTag == int(TagLeadSurrogate) || baseTag == int(TagReserved11) {
		ts.err = ErrInternal
		return
	}

	// Non-contextual mappings, expansions, Hangul, and OFFSET/long-primary.
	if baseTag == int(TagOffset) {
		// The tailoring may copy a base OFFSET-tag mapping verbatim
		// (an "optimize the set" style tailoring, or a single-character
		// mapping copied into a tailored contraction default).
		weight, isLong := ce32.LongPrimaryWeight()
		if !isLong {
			ts.add(c)
			return
		}
		dataCE := ts.baseData.Expansion(baseCE32.Index())[0]
		p := ts.baseData.LongPrimary(c, dataCE)
		if weight != p {
			ts.add(c)
		}
		return
	}

	if tag != baseTag {
		ts.add(c)
		return
	}

	switch Tag(tag) {
	case TagExpansion32:
		ces := ts.data.Expansion32(ce32.Index())
		baseCEs := ts.baseData.Expansion32(baseCE32.Index())
		if len(ces) != len(baseCEs) {
			ts.add(c)
			return
		}
		for i := range ces {
			if ces[i] != baseCEs[i] {
				ts.add(c)
				break
			}
		}
	case TagExpansion:
		ces := ts.data.Expansion(ce32.Index())
		baseCEs := ts.baseData.Expansion(baseCE32.Index())
		if len(ces) != len(baseCEs) {
			ts.add(c)
			return
		}
		for i := range ces {
			if ces[i] != baseCEs[i] {
				ts.add(c)
				break
			}
		}
	case TagHangul:
		lead, vowel, trailing, hasTrailing := decomposeHangul(c)
		if ts.data.JamoCE(lead) != ts.baseData.JamoCE(lead) ||
			ts.data.JamoCE(19+vowel) != ts.baseData.JamoCE(19+vowel) ||
			(hasTrailing && ts.data.JamoCE(39+trailing) != ts.baseData.JamoCE(39+trailing)) {
			ts.add(c)
		}
	default:
		if ce32 != baseCE32 {
			ts.add(c)
		}
	}
}

func (ts *TailoredSet) comparePrefixes(c rune, p, q CharsTrie) {
	pIt, qIt := p.Iterator(), q.Iterator()
	var tp, bp *string
	const none = "￿" // untailorable sentinel; ends the parallel walk
	tpDone, bpDone := false, false
	for (!tpDone || !bpDone) && ts.err == nil {
		if tp == nil && !tpDone {
			if pIt.Next() {
				s := pIt.String()
				tp = &s
			} else {
				tpDone = true
			}
		}
		if bp == nil && !bpDone {
			if qIt.Next() {
				s := qIt.String()
				bp = &s
			} else {
				bpDone = true
			}
		}
		tv, bv := none, none
		if tp != nil {
			tv = *tp
		}
		if bp != nil {
			bv = *bp
		}
		switch {
		case tpDone && bpDone:
			return
		case bpDone || (!tpDone && lessRunes(tv, bv)):
			ts.addPrefix(ts.data, tv, c, CE32(pIt.Value()))
			tp = nil
		case tpDone || lessRunes(bv, tv):
			ts.addPrefix(ts.baseData, bv, c, CE32(qIt.Value()))
			bp = nil
		default:
			ts.prefix = &tv
			ts.compare(c, CE32(pIt.Value()), CE32(qIt.Value()))
			ts.prefix = nil
			tp, bp = nil, nil
		}
	}
}

func (ts *TailoredSet) compareContractions(c rune, p, q CharsTrie) {
	pIt, qIt := p.Iterator(), q.Iterator()
	var tsfx, bs *string
	tsDone, bsDone := false, false
	for (!tsDone || !bsDone) && ts.err == nil {
		if tsfx == nil && !tsDone {
			if pIt.Next() {
				s := pIt.String()
				tsfx = &s
			} else {
				tsDone = true
			}
		}
		if bs == nil && !bsDone {
			if qIt.Next() {
				s := qIt.String()
				bs = &s
			} else {
				bsDone = true
			}
		}
		tv, bv := "￿￿", "￿￿"
		if tsfx != nil {
			tv = *tsfx
		}
		if bs != nil {
			bv = *bs
		}
		switch {
		case tsDone && bsDone:
			return
		case bsDone || (!tsDone && lessRunes(tv, bv)):
			ts.addSuffix(c, tv)
			tsfx = nil
		case tsDone || lessRunes(bv, tv):
			ts.addSuffix(c, bv)
			bs = nil
		default:
			ts.suffix = &tv
			ts.compare(c, CE32(pIt.Value()), CE32(qIt.Value()))
			ts.suffix = nil
			tsfx, bs = nil, nil
		}
	}
}

func (ts *TailoredSet) addPrefixes(d CollationData, c rune, prefixes CharsTrie) {
	it := prefixes.Iterator()
	for it.Next() {
		s := it.String()
		ts.addPrefix(d, s, c, CE32(it.Value()))
	}
}

func (ts *TailoredSet) addPrefix(d CollationData, pfx string, c rune, ce32 CE32) {
	ce32 = d.FinalCE32(ce32)
	if ce32.IsContractionCE32() {
		_, suffixes := d.Contraction(ce32.Index())
		saved := ts.prefix
		ts.prefix = &pfx
		ts.addContractions(c, suffixes)
		ts.prefix = saved
	}
	ts.tailored.AddString(pfx + string(c))
}

func (ts *TailoredSet) addContractions(c rune, suffixes CharsTrie) {
	it := suffixes.Iterator()
	for it.Next() {
		ts.addSuffix(c, it.String())
	}
}

func (ts *TailoredSet) addSuffix(c rune, sfx string) {
	s := ""
	if ts.prefix != nil {
		s = *ts.prefix
	}
	ts.tailored.AddString(s + string(c) + sfx)
}

func (ts *TailoredSet) add(c rune) {
	if ts.prefix == nil && ts.suffix == nil {
		ts.tailored.AddRune(c)
		return
	}
	s := ""
	if ts.prefix != nil {
		s = *ts.prefix
	}
	s += string(c)
	if ts.suffix != nil {
		s += *ts.suffix
	}
	ts.tailored.AddString(s)
}
