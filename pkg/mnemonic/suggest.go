package mnemonic

// Suggestion is the word under the cursor together with its candidate
// completions. A zero Suggestion means no word is being typed.
type Suggestion struct {
	Word    string
	Options []string
}

// Empty reports whether the suggestion carries no candidates.
func (s Suggestion) Empty() bool {
	return s.Word == "" && len(s.Options) == 0
}

// DetectLanguages returns the wordlists still consistent with all typed
// words, treating each word as a prefix. Starting from all languages, the
// set is intersected one word at a time; an intersection that would become
// empty is discarded and the previous non-empty set is kept. The result
// therefore narrows monotonically and is never empty.
func DetectLanguages(items []WordItem) []*Wordlist {
	candidates := Languages()
	for _, it := range items {
		var next []*Wordlist
		for _, wl := range candidates {
			if wl.HasPrefix(it.Word) {
				next = append(next, wl)
			}
		}
		if len(next) == 0 {
			break
		}
		candidates = next
	}
	return candidates
}

// SuggestAt computes completion candidates for the word immediately before
// the cursor. When the cursor is not positioned at or inside a word the
// suggestion is empty. Candidates are gathered from every detected
// language's wordlist, deduplicated, preserving first-seen order.
func SuggestAt(items []WordItem, cursor int) Suggestion {
	current, ok := wordAt(items, cursor)
	if !ok {
		return Suggestion{}
	}

	var options []string
	seen := make(map[string]bool)
	for _, wl := range DetectLanguages(items) {
		for _, candidate := range wl.WordsWithPrefix(current.Word) {
			if !seen[candidate] {
				seen[candidate] = true
				options = append(options, candidate)
			}
		}
	}
	return Suggestion{Word: current.Word, Options: options}
}

// InvalidWords returns the items that should be flagged invalid for
// display. A word fails when it is not a complete member of any wordlist,
// except that the word under the cursor is given leniency as long as it is
// still a plausible in-progress prefix of a real word.
func InvalidWords(items []WordItem, cursor int) []WordItem {
	var invalid []WordItem
	for _, it := range items {
		if IsWordValid(it.Word) {
			continue
		}
		cursorInside := it.Start < cursor && cursor <= it.End
		if cursorInside && IsWordPartiallyValid(it.Word) {
			continue
		}
		invalid = append(invalid, it)
	}
	return invalid
}
