package mnemonic

import "testing"

func TestTokenize_RangesMatchSource(t *testing.T) {
	items := Tokenize("abandon abandon about")
	if len(items) != 3 {
		t.Fatalf("Expected 3 word items, got %d", len(items))
	}

	want := []WordItem{
		{Word: "abandon", Start: 0, End: 7},
		{Word: "abandon", Start: 8, End: 15},
		{Word: "about", Start: 16, End: 21},
	}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("Item %d: expected %+v, got %+v", i, w, items[i])
		}
	}

	// Ranges must never overlap
	for i := 1; i < len(items); i++ {
		if items[i].Start < items[i-1].End {
			t.Errorf("Items %d and %d overlap: %+v %+v", i-1, i, items[i-1], items[i])
		}
	}
}

func TestTokenize_LowercasesAndSplitsRuns(t *testing.T) {
	items := Tokenize("  Abandon\t\nABOUT ")
	if len(items) != 2 {
		t.Fatalf("Expected 2 word items, got %d", len(items))
	}
	if items[0].Word != "abandon" || items[1].Word != "about" {
		t.Errorf("Expected lowercased tokens, got %q %q", items[0].Word, items[1].Word)
	}
	if items[0].Start != 2 || items[0].End != 9 {
		t.Errorf("Expected range [2,9) for first token, got [%d,%d)", items[0].Start, items[0].End)
	}
}

func TestTokenize_Empty(t *testing.T) {
	if items := Tokenize(""); len(items) != 0 {
		t.Errorf("Expected no items for empty input, got %d", len(items))
	}
	if items := Tokenize("   \t  "); len(items) != 0 {
		t.Errorf("Expected no items for whitespace input, got %d", len(items))
	}
}

func TestWordAt(t *testing.T) {
	items := Tokenize("abandon about")

	tests := []struct {
		cursor int
		word   string
		found  bool
	}{
		{0, "", false},       // before any typing
		{1, "abandon", true}, // just after first rune
		{7, "abandon", true}, // right after the word
		{8, "", false},       // after the separating space
		{13, "about", true},  // inside second word
		{99, "", false},      // past the end
	}
	for _, tt := range tests {
		it, ok := wordAt(items, tt.cursor)
		if ok != tt.found {
			t.Errorf("cursor %d: expected found=%v, got %v", tt.cursor, tt.found, ok)
			continue
		}
		if ok && it.Word != tt.word {
			t.Errorf("cursor %d: expected word %q, got %q", tt.cursor, tt.word, it.Word)
		}
	}
}
