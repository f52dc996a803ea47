// Package rules implements the scoring and penalty rules of the guessing game.
package rules

import (
	"strings"
	"unicode"
)

const (
	defaultAlphabet    = "abcdefghijklmnopqrstuvwxyz"
	defaultVowels      = "aeiou"
	defaultMaxGuesses  = 6
	defaultMaxWarnings = 3
)

// Config holds the fixed constants the rules operate on.
type Config struct {
	Alphabet    string
	Vowels      string
	MaxGuesses  int
	MaxWarnings int
}

// Default returns the standard rule set: 26 lowercase letters, five vowels,
// six guesses and three warnings.
func Default() Config {
	return Config{
		Alphabet:    defaultAlphabet,
		Vowels:      defaultVowels,
		MaxGuesses:  defaultMaxGuesses,
		MaxWarnings: defaultMaxWarnings,
	}
}

// IsLetter reports whether r belongs to the alphabet.
func (c Config) IsLetter(r rune) bool {
	return strings.ContainsRune(c.Alphabet, r)
}

// IsVowel reports whether r is a vowel.
func (c Config) IsVowel(r rune) bool {
	return strings.ContainsRune(c.Vowels, r)
}

// AvailableLetters returns the alphabet minus the guessed letters, in alphabet order.
// Guessed letters are compared case-insensitively.
func (c Config) AvailableLetters(guessed Letters) string {
	var b strings.Builder
	for _, r := range c.Alphabet {
		if guessed.Has(r) || guessed.Has(unicode.ToUpper(r)) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ApplyIncorrectGuess returns the guesses left after a wrong letter.
// A vowel costs two guesses, or the last one when only one remains; a consonant costs one.
// Guesses at or below zero, and runes outside the alphabet, are left unchanged.
func (c Config) ApplyIncorrectGuess(letter rune, guesses int) int {
	if guesses <= 0 || !c.IsLetter(letter) {
		return guesses
	}
	if c.IsVowel(letter) {
		if guesses == 1 {
			return 0
		}
		return guesses - 2
	}
	return guesses - 1
}

// ApplyInvalidGuess consumes a warning, or a guess once warnings are exhausted.
func ApplyInvalidGuess(warnings, guesses int) (int, int) {
	switch {
	case warnings > 0:
		return warnings - 1, guesses
	case guesses > 0:
		return warnings, guesses - 1
	default:
		return warnings, guesses
	}
}

// IsWordGuessed reports whether every character of secret has been guessed.
func IsWordGuessed(secret string, guessed Letters) bool {
	for _, r := range secret {
		if !guessed.Has(r) {
			return false
		}
	}
	return true
}

// RevealPattern renders secret with unguessed characters replaced by "_ ".
func RevealPattern(secret string, guessed Letters) string {
	var b strings.Builder
	for _, r := range secret {
		if guessed.Has(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteString("_ ")
	}
	return b.String()
}

// Score is guesses left times the number of distinct letters in secret, or 0
// when no guesses are left.
func Score(guesses int, secret string) int {
	if guesses <= 0 {
		return 0
	}
	distinct := map[rune]struct{}{}
	for _, r := range secret {
		distinct[r] = struct{}{}
	}
	return guesses * len(distinct)
}
