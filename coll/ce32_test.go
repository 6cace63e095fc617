// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coll

import "testing"

func TestCE32RoundTrip(t *testing.T) {
	tests := []struct {
		tag   Tag
		index uint32
	}{
		{TagExpansion, 0},
		{TagContraction, 12345},
		{TagPrefix, 1},
		{TagDigit, 0x7FFFFFF},
	}
	for _, tt := range tests {
		ce32, err := MakeCE32(tt.tag, tt.index)
		if err != nil {
			t.Fatalf("MakeCE32(%v, %v): %v", tt.tag, tt.index, err)
		}
		if !ce32.IsSpecial() {
			t.Errorf("MakeCE32(%v, %v).IsSpecial() = false, want true", tt.tag, tt.index)
		}
		if got := ce32.Tag(); got != tt.tag {
			t.Errorf("Tag() = %v, want %v", got, tt.tag)
		}
		if got := ce32.Index(); got != tt.index {
			t.Errorf("Index() = %v, want %v", got, tt.index)
		}
	}
}

func TestCE32IndexOutOfRange(t *testing.T) {
	if _, err := MakeCE32(TagContraction, 1<<27); err == nil {
		t.Error("MakeCE32 with an out-of-range index returned no error")
	}
}

func TestMinSpecialCE32IsSpecial(t *testing.T) {
	if !MinSpecialCE32.IsSpecial() {
		t.Error("MinSpecialCE32.IsSpecial() = false, want true")
	}
	if MinSpecialCE32.Tag() != TagExpansion32 || MinSpecialCE32.Index() != 0 {
		t.Errorf("MinSpecialCE32 = {tag:%v index:%v}, want {tag:%v index:0}", MinSpecialCE32.Tag(), MinSpecialCE32.Index(), TagExpansion32)
	}
}

func TestNonSpecialCE32LessThanMinSpecial(t *testing.T) {
	// ContractionsAndExpansions.handleCE32 relies on "ce32 <=
	// MinSpecialCE32" meaning "not special, or the fallback sentinel".
	plain := CE32(0x7FFFFFFF)
	if plain >= MinSpecialCE32 {
		t.Fatalf("plain CE32 %#x >= MinSpecialCE32 %#x", uint32(plain), uint32(MinSpecialCE32))
	}
	if plain.IsSpecial() {
		t.Error("plain CE32 reports IsSpecial() = true")
	}
}

func TestLongPrimaryWeightRoundTrip(t *testing.T) {
	ce32, err := MakeLongPrimaryCE32(0x1A2B3C)
	if err != nil {
		t.Fatalf("MakeLongPrimaryCE32: %v", err)
	}
	weight, ok := ce32.LongPrimaryWeight()
	if !ok {
		t.Fatal("LongPrimaryWeight() ok = false, want true")
	}
	if weight != 0x1A2B3C {
		t.Errorf("LongPrimaryWeight() = %#x, want %#x", weight, 0x1A2B3C)
	}

	ordinary, _ := MakeCE32(TagExpansion32, 5)
	if _, ok := ordinary.LongPrimaryWeight(); ok {
		t.Error("ordinary EXPANSION32 CE32 reports LongPrimaryWeight ok = true")
	}
}
