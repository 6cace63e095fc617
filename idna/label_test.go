// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "testing"

func TestProcessLabelHyphen34(t *testing.T) {
	info := &Info{}
	_, _, err := Transitional.processLabel("ab--cd", 0, 6, true, info)
	if err != nil {
		t.Fatalf("processLabel error: %v", err)
	}
	if info.Errors&Hyphen34 == 0 {
		t.Errorf("Errors = %v, want Hyphen34 set", info.Errors)
	}
}

func TestProcessLabelLeadingCombiningMark(t *testing.T) {
	info := &Info{}
	// U+0301 COMBINING ACUTE ACCENT as the first rune.
	label := string([]rune{0x0301, 'a', 'b', 'c'})
	out, _, err := Transitional.processLabel(label, 0, len([]rune(label)), false, info)
	if err != nil {
		t.Fatalf("processLabel error: %v", err)
	}
	if info.Errors&LeadingCombiningMark == 0 {
		t.Errorf("Errors = %v, want LeadingCombiningMark set", info.Errors)
	}
	if len(out) == 0 || []rune(out)[0] != 0xfffd {
		t.Errorf("out = %q, want to start with U+FFFD", out)
	}
}

func TestProcessLabelDisallowedSTD3(t *testing.T) {
	info := &Info{}
	_, _, err := Resolve.processLabel("a_b", 0, 3, true, info)
	if err != nil {
		t.Fatalf("processLabel error: %v", err)
	}
	if info.Errors&Disallowed == 0 {
		t.Errorf("Errors = %v, want Disallowed set", info.Errors)
	}
}

func TestProcessLabelEmpty(t *testing.T) {
	info := &Info{}
	out, _, err := Transitional.processLabel("", 0, 0, true, info)
	if err != nil {
		t.Fatalf("processLabel error: %v", err)
	}
	if out != "" {
		t.Errorf("out = %q, want empty", out)
	}
	if info.Errors&EmptyLabel == 0 {
		t.Errorf("Errors = %v, want EmptyLabel set", info.Errors)
	}
}

func TestProcessLabelFinalSigmaMapping(t *testing.T) {
	info := &Info{}
	// U+03C2 GREEK SMALL LETTER FINAL SIGMA should map to U+03C3 under
	// transitional processing.
	out, _, err := Transitional.processLabel("ας", 0, 2, false, info)
	if err != nil {
		t.Fatalf("processLabel error: %v", err)
	}
	want := "ασ"
	if out != want {
		t.Errorf("out = %q, want %q", out, want)
	}
	if !info.HasDevChars {
		t.Error("HasDevChars = false, want true")
	}
}
