package rules

// Letters is a set of guessed runes.
type Letters map[rune]struct{}

// NewLetters builds a set from the given runes.
func NewLetters(runes ...rune) Letters {
	l := make(Letters, len(runes))
	for _, r := range runes {
		l[r] = struct{}{}
	}
	return l
}

// Has reports whether r is in the set.
func (l Letters) Has(r rune) bool {
	_, ok := l[r]
	return ok
}

// Add inserts r into the set.
func (l Letters) Add(r rune) {
	l[r] = struct{}{}
}
