package mnemonic

import (
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Language identifies one of the standard BIP-39 wordlists.
type Language string

const (
	English            Language = "english"
	ChineseSimplified  Language = "chinese_simplified"
	ChineseTraditional Language = "chinese_traditional"
	Czech              Language = "czech"
	French             Language = "french"
	Italian            Language = "italian"
	Japanese           Language = "japanese"
	Korean             Language = "korean"
	Spanish            Language = "spanish"
)

// Wordlist is the fixed 2048-word vocabulary of one language. Lookups are
// linear scans; the lists are small enough that this is the whole cost of
// suggestion computation.
type Wordlist struct {
	Language Language
	words    []string
	index    map[string]int
}

func newWordlist(lang Language, words []string) *Wordlist {
	index := make(map[string]int, len(words))
	for i, w := range words {
		index[w] = i
	}
	return &Wordlist{Language: lang, words: words, index: index}
}

var all = []*Wordlist{
	newWordlist(English, wordlists.English),
	newWordlist(ChineseSimplified, wordlists.ChineseSimplified),
	newWordlist(ChineseTraditional, wordlists.ChineseTraditional),
	newWordlist(Czech, wordlists.Czech),
	newWordlist(French, wordlists.French),
	newWordlist(Italian, wordlists.Italian),
	newWordlist(Japanese, wordlists.Japanese),
	newWordlist(Korean, wordlists.Korean),
	newWordlist(Spanish, wordlists.Spanish),
}

// Languages returns all supported wordlists in a stable order.
func Languages() []*Wordlist {
	return all
}

// Contains reports whether word is a complete member of the wordlist.
func (w *Wordlist) Contains(word string) bool {
	_, ok := w.index[word]
	return ok
}

// HasPrefix reports whether any word in the wordlist starts with prefix.
func (w *Wordlist) HasPrefix(prefix string) bool {
	for _, candidate := range w.words {
		if strings.HasPrefix(candidate, prefix) {
			return true
		}
	}
	return false
}

// WordsWithPrefix returns all words starting with prefix, in wordlist order.
func (w *Wordlist) WordsWithPrefix(prefix string) []string {
	var matches []string
	for _, candidate := range w.words {
		if strings.HasPrefix(candidate, prefix) {
			matches = append(matches, candidate)
		}
	}
	return matches
}

// Words returns the raw wordlist in its canonical order.
func (w *Wordlist) Words() []string {
	return w.words
}

// IsWordValid reports whether word is a complete member of any wordlist.
func IsWordValid(word string) bool {
	for _, wl := range all {
		if wl.Contains(word) {
			return true
		}
	}
	return false
}

// IsWordPartiallyValid reports whether word is a prefix of a member of any
// wordlist. The empty string is trivially partially valid.
func IsWordPartiallyValid(word string) bool {
	if word == "" {
		return true
	}
	for _, wl := range all {
		if wl.HasPrefix(word) {
			return true
		}
	}
	return false
}
