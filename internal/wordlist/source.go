package wordlist

import (
	"math/rand"
	"time"
)

// Source picks secret words uniformly from a fixed list.
type Source struct {
	words []string
	rnd   *rand.Rand
}

// NewSource returns a Source seeded with the current time.
func NewSource(words []string) *Source {
	return NewSourceWithRand(words, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSourceWithRand returns a Source drawing from rnd.
func NewSourceWithRand(words []string, rnd *rand.Rand) *Source {
	return &Source{words: words, rnd: rnd}
}

// Len returns the number of candidate words.
func (s *Source) Len() int {
	return len(s.words)
}

// Choose returns a random word. It returns "" when the source is empty.
func (s *Source) Choose() string {
	if len(s.words) == 0 {
		return ""
	}
	return s.words[s.rnd.Intn(len(s.words))]
}
