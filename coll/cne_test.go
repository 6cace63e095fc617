// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coll

import (
	"reflect"
	"testing"
)

func TestContractionsAndExpansionsContraction(t *testing.T) {
	data := newFakeData(nil)
	contractionCE32, _ := MakeCE32(TagContraction, 0)
	data.ce32['a'] = contractionCE32
	data.contractions[0] = struct {
		def  CE32
		trie fakeTrie
	}{def: CE32(5), trie: fakeTrie{"b": 7}}

	contractions := NewCollectedSet()
	expansions := NewCollectedSet()
	cne := NewContractionsAndExpansions(contractions, expansions)
	if err := cne.ForData(data); err != nil {
		t.Fatalf("ForData() = %v, want nil", err)
	}

	if got := contractions.Strings(); !reflect.DeepEqual(got, []string{"ab"}) {
		t.Errorf("contractions = %v, want [ab]", got)
	}
	if got := expansions.Strings(); len(got) != 0 {
		t.Errorf("expansions = %v, want empty", got)
	}
}

func TestContractionsAndExpansionsExpansion(t *testing.T) {
	data := newFakeData(nil)
	// Index 0 is avoided: MakeCE32(TagExpansion32, 0) is MinSpecialCE32.
	exp32, _ := MakeCE32(TagExpansion32, 1)
	data.ce32['x'] = exp32
	data.expansion32s[1] = []CE32{1, 2}

	contractions := NewCollectedSet()
	expansions := NewCollectedSet()
	cne := NewContractionsAndExpansions(contractions, expansions)
	if err := cne.ForData(data); err != nil {
		t.Fatalf("ForData() = %v, want nil", err)
	}

	if got := expansions.Runes(); !reflect.DeepEqual(got, []rune{'x'}) {
		t.Errorf("expansions = %v, want [x]", got)
	}
}

func TestContractionsAndExpansionsTailoringExcludesBase(t *testing.T) {
	base := newFakeData(nil)
	baseContraction, _ := MakeCE32(TagContraction, 0)
	base.ce32['a'] = baseContraction
	base.contractions[0] = struct {
		def  CE32
		trie fakeTrie
	}{def: CE32(5), trie: fakeTrie{"b": 7}}

	tailoring := newFakeData(base)
	tailContraction, _ := MakeCE32(TagContraction, 0)
	tailoring.ce32['a'] = tailContraction
	tailoring.contractions[0] = struct {
		def  CE32
		trie fakeTrie
	}{def: CE32(5), trie: fakeTrie{"c": 9}}

	contractions := NewCollectedSet()
	cne := NewContractionsAndExpansions(contractions, nil)
	if err := cne.ForData(tailoring); err != nil {
		t.Fatalf("ForData() = %v, want nil", err)
	}

	got := contractions.Strings()
	want := []string{"ac"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("contractions = %v, want %v (tailoring's own contraction for 'a' replaces, not adds to, the base one)", got, want)
	}
}

func TestContractionsAndExpansionsReservedTagIsInternalError(t *testing.T) {
	data := newFakeData(nil)
	reserved, _ := MakeCE32(TagReserved11, 0)
	data.ce32['z'] = reserved

	cne := NewContractionsAndExpansions(NewCollectedSet(), NewCollectedSet())
	if err := cne.ForData(data); err != ErrInternal {
		t.Errorf("ForData() = %v, want ErrInternal", err)
	}
}

func TestContractionsAndExpansionsImplicitLowBitOutsideZero(t *testing.T) {
	data := newFakeData(nil)
	implicit, _ := MakeCE32(TagImplicit, 0) // low bit 0
	data.ce32['z'] = implicit

	cne := NewContractionsAndExpansions(NewCollectedSet(), NewCollectedSet())
	if err := cne.ForData(data); err != ErrInternal {
		t.Errorf("ForData() with IMPLICIT_TAG low bit 0 outside U+0000 = %v, want ErrInternal", err)
	}
}
