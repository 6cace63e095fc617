// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "testing"

func TestIsLabelOkContextJ(t *testing.T) {
	const (
		devaKA     = 0x0915
		devaVirama = 0x094D
		zwnj       = 0x200C
		zwj        = 0x200D
		beh        = 0x0628 // Arabic BEH, Dual-joining
	)
	tests := []struct {
		name  string
		label []rune
		want  bool
	}{
		{"ZWNJ right after a virama is always fine", []rune{devaKA, devaVirama, zwnj}, true},
		{"ZWNJ between two dual-joining letters is fine", []rune{beh, zwnj, beh}, true},
		{"ZWNJ at the start of a label has no precontext", []rune{zwnj, beh}, false},
		{"ZWNJ with nothing following has no postcontext", []rune{beh, zwnj}, false},
		{"ZWJ right after a virama is fine", []rune{devaKA, devaVirama, zwj}, true},
		{"ZWJ not after a virama is disallowed", []rune{beh, zwj, beh}, false},
		{"ZWJ at the start of a label is disallowed", []rune{zwj, beh}, false},
		{"plain label with no joiners", []rune{beh, beh}, true},
	}
	for _, tt := range tests {
		if got := isLabelOkContextJ(tt.label); got != tt.want {
			t.Errorf("%s: isLabelOkContextJ(%q) = %v, want %v", tt.name, string(tt.label), got, tt.want)
		}
	}
}

func TestIsLabelOkContextJSkipsTransparent(t *testing.T) {
	// An Arabic harakat mark (Transparent) between the dual-joining
	// letter and the ZWNJ should not break the precontext/postcontext
	// search: it is skipped, not treated as the deciding neighbor.
	const (
		beh     = 0x0628
		fatha   = 0x064B // Transparent
		zwnj    = 0x200C
	)
	label := []rune{beh, fatha, zwnj, fatha, beh}
	if !isLabelOkContextJ(label) {
		t.Error("isLabelOkContextJ with Transparent marks around ZWNJ = false, want true")
	}
}
