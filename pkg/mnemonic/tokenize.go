// Package mnemonic implements word-level validation, language detection and
// autocomplete suggestions for BIP-39 seed phrases.
package mnemonic

import (
	"strings"
	"unicode"
)

// WordItem is a lowercase word token plus its rune range [Start, End)
// in the original input text. Items are recomputed from scratch on every
// input change and never mutated.
type WordItem struct {
	Word  string
	Start int
	End   int
}

// Tokenize splits text on whitespace runs into WordItems. Ranges are rune
// offsets into the original text and never overlap; the token itself is
// lowercased.
func Tokenize(text string) []WordItem {
	var items []WordItem
	runes := []rune(text)
	start := -1
	for i, r := range runes {
		if unicode.IsSpace(r) {
			if start >= 0 {
				items = append(items, WordItem{
					Word:  strings.ToLower(string(runes[start:i])),
					Start: start,
					End:   i,
				})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		items = append(items, WordItem{
			Word:  strings.ToLower(string(runes[start:])),
			Start: start,
			End:   len(runes),
		})
	}
	return items
}

// Words returns just the word tokens of the given items.
func Words(items []WordItem) []string {
	words := make([]string, len(items))
	for i, it := range items {
		words[i] = it.Word
	}
	return words
}

// wordAt returns the item whose range contains the rune immediately before
// the cursor, i.e. the word currently being typed. Returns false when the
// cursor does not sit at or inside a word.
func wordAt(items []WordItem, cursor int) (WordItem, bool) {
	pos := cursor - 1
	for _, it := range items {
		if it.Start <= pos && pos < it.End {
			return it, true
		}
	}
	return WordItem{}, false
}
