package wordlist

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadWordsSingleLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("apple banana  Cherry\tdate\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	words, err := LoadWords(path, nil)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	want := []string{"apple", "banana", "cherry", "date"}
	if strings.Join(words, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsMissingFile(t *testing.T) {
	_, err := LoadWords(filepath.Join(t.TempDir(), "missing.txt"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestReadWordsEmpty(t *testing.T) {
	if _, err := ReadWords(strings.NewReader("  \n\n"), nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	filter := AlphabetFilter("abc")
	if _, err := ReadWords(strings.NewReader("xyz 123"), filter); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty after filtering, got %v", err)
	}
}

func TestReadWordsFilters(t *testing.T) {
	words, err := ReadWords(strings.NewReader("cab co-op bad"), AlphabetFilter("abcd"))
	if err != nil {
		t.Fatalf("read words: %v", err)
	}
	if strings.Join(words, ",") != "cab,bad" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestSourceChoose(t *testing.T) {
	words := []string{"one", "two", "three"}
	src := NewSourceWithRand(words, rand.New(rand.NewSource(1)))
	if src.Len() != 3 {
		t.Fatalf("expected 3 words, got %d", src.Len())
	}
	for i := 0; i < 20; i++ {
		w := src.Choose()
		if w != "one" && w != "two" && w != "three" {
			t.Fatalf("unexpected word %q", w)
		}
	}
	if got := NewSource(nil).Choose(); got != "" {
		t.Fatalf("expected empty word from empty source, got %q", got)
	}
}
