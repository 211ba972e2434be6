package mnemonic

import (
	"strings"
	"sync"

	bip39 "github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// WordCounts is the set of accepted standard mnemonic lengths.
var WordCounts = []int{12, 15, 18, 21, 24}

// ValidCount reports whether n is an accepted mnemonic word count.
func ValidCount(n int) bool {
	for _, c := range WordCounts {
		if n == c {
			return true
		}
	}
	return false
}

// CheckReason names the outcome of a phrase check.
type CheckReason string

const (
	CheckOK           CheckReason = "ok"
	ReasonWordCount   CheckReason = "word_count"
	ReasonInvalidWord CheckReason = "invalid_word"
	ReasonChecksum    CheckReason = "checksum"
)

// CheckResult reports whether a phrase is a valid mnemonic and, on success,
// which language validated it. Failure is a named reason, never an error
// value surfaced to the caller.
type CheckResult struct {
	Reason   CheckReason
	Language Language
}

// OK reports whether the check succeeded.
func (r CheckResult) OK() bool {
	return r.Reason == CheckOK
}

// The underlying validator selects its wordlist through package-global
// state, so checks are serialized and the default list restored afterwards.
var checkMu sync.Mutex

// Check validates a complete phrase: word count, full word membership, and
// the embedded checksum. The checksum is tried against every language whose
// wordlist contains all of the words; the first that validates wins.
func Check(words []string) CheckResult {
	if !ValidCount(len(words)) {
		return CheckResult{Reason: ReasonWordCount}
	}
	for _, w := range words {
		if !IsWordValid(w) {
			return CheckResult{Reason: ReasonInvalidWord}
		}
	}

	phrase := strings.Join(words, " ")

	checkMu.Lock()
	defer checkMu.Unlock()
	defer bip39.SetWordList(wordlists.English)

	for _, wl := range Languages() {
		if !containsAll(wl, words) {
			continue
		}
		bip39.SetWordList(wl.Words())
		if bip39.IsMnemonicValid(phrase) {
			return CheckResult{Reason: CheckOK, Language: wl.Language}
		}
	}
	return CheckResult{Reason: ReasonChecksum}
}

func containsAll(wl *Wordlist, words []string) bool {
	for _, w := range words {
		if !wl.Contains(w) {
			return false
		}
	}
	return true
}
