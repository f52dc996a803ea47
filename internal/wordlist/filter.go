package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// AlphabetFilter keeps non-empty words made only of runes from alphabet.
func AlphabetFilter(alphabet string) FilterFunc {
	return func(word string) bool {
		if word == "" {
			return false
		}
		for _, r := range word {
			if !strings.ContainsRune(alphabet, r) {
				return false
			}
		}
		return true
	}
}
