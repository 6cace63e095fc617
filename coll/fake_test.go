// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coll

import "sort"

// fakeTrie is a CharsTrie backed by a plain map, sorted by key at
// Iterator time; enough to exercise the parallel-iteration comparisons
// in TailoredSet and the walks in ContractionsAndExpansions without
// needing a real UCharsTrie-equivalent encoder.
type fakeTrie map[string]int32

func (t fakeTrie) Iterator() CharsTrieIterator {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return lessRunes(keys[i], keys[j]) })
	return &fakeIter{t: t, keys: keys, i: -1}
}

type fakeIter struct {
	t    fakeTrie
	keys []string
	i    int
}

func (it *fakeIter) Next() bool {
	it.i++
	return it.i < len(it.keys)
}

func (it *fakeIter) String() string { return it.keys[it.i] }
func (it *fakeIter) Value() int32   { return it.t[it.keys[it.i]] }

var emptyTrie = fakeTrie{}

// fakeData is a minimal CollationData backed by plain maps, enough to
// drive TailoredSet and ContractionsAndExpansions over small synthetic
// tables in tests.
type fakeData struct {
	base         CollationData
	ce32         map[rune]CE32
	defaultLo    rune
	defaultHi    rune
	defaultCE32  CE32
	expansion32s map[uint32][]CE32
	expansions   map[uint32][]uint64
	contractions map[uint32]struct {
		def CE32
		trie fakeTrie
	}
	prefixes map[uint32]struct {
		def CE32
		trie fakeTrie
	}
	jamoCEs map[int]uint64
}

func newFakeData(base CollationData) *fakeData {
	return &fakeData{
		base:         base,
		ce32:         map[rune]CE32{},
		defaultLo:    0,
		defaultHi:    0x10FFFF,
		expansion32s: map[uint32][]CE32{},
		expansions:   map[uint32][]uint64{},
		contractions: map[uint32]struct {
			def CE32
			trie fakeTrie
		}{},
		prefixes: map[uint32]struct {
			def CE32
			trie fakeTrie
		}{},
		jamoCEs: map[int]uint64{},
	}
}

func (d *fakeData) CE32(c rune) CE32 {
	if ce32, ok := d.ce32[c]; ok {
		return ce32
	}
	return d.defaultCE32
}

func (d *fakeData) FinalCE32(ce32 CE32) CE32 { return ce32 }
func (d *fakeData) IndirectCE32(ce32 CE32) CE32 { return ce32 }

func (d *fakeData) Expansion32(index uint32) []CE32 { return d.expansion32s[index] }
func (d *fakeData) Expansion(index uint32) []uint64 { return d.expansions[index] }

func (d *fakeData) Contraction(index uint32) (CE32, CharsTrie) {
	v := d.contractions[index]
	if v.trie == nil {
		return v.def, emptyTrie
	}
	return v.def, v.trie
}

func (d *fakeData) Prefix(index uint32) (CE32, CharsTrie) {
	v := d.prefixes[index]
	if v.trie == nil {
		return v.def, emptyTrie
	}
	return v.def, v.trie
}

func (d *fakeData) JamoCE(index int) uint64 { return d.jamoCEs[index] }

func (d *fakeData) LongPrimary(c rune, baseCE uint64) uint32 { return uint32(baseCE >> 32) }

func (d *fakeData) EnumRanges(fn func(start, end rune, ce32 CE32) bool) {
	cps := make([]rune, 0, len(d.ce32))
	for c := range d.ce32 {
		cps = append(cps, c)
	}
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })
	for _, c := range cps {
		if !fn(c, c, d.ce32[c]) {
			return
		}
	}
}

func (d *fakeData) Base() CollationData {
	if d.base == nil {
		return nil
	}
	return d.base
}
