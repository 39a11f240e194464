// Package words loads the word list, validates guesses, and selects
// secret words filtered by difficulty.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sort"
	"strings"

	"github.com/wordletrack/wordletrack/internal/game"
)

//go:embed words.txt
var embeddedWords string

// commonLetters are the highest-frequency letters in English text,
// used to score how approachable a word is.
const commonLetters = "etaoinshrdlu"

// difficultyParams bounds the candidate pool for a difficulty level.
// A word qualifies when it has at most maxUnique distinct letters and
// at least minCommonRatio of its letters are common.
type difficultyParams struct {
	minCommonRatio float64
	maxUnique      int
}

// Bank holds the loaded word list indexed for validation and random
// selection. It is immutable after construction and safe for
// concurrent readers; the random source is the caller's to guard.
type Bank struct {
	words    []string
	wordSet  map[string]struct{}
	byLength map[int][]string
	rng      *rand.Rand
}

// Option configures a Bank.
type Option func(*Bank)

// WithRand sets the random source used for word selection. Tests use
// this for deterministic picks.
func WithRand(rng *rand.Rand) Option {
	return func(b *Bank) { b.rng = rng }
}

// New loads the embedded default word list. The WORDLETRACK_WORDS_FILE
// environment variable overrides it with a newline-delimited file.
func New(opts ...Option) (*Bank, error) {
	source := embeddedWords
	if path := os.Getenv("WORDLETRACK_WORDS_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("words: read %s: %w", path, err)
		}
		source = string(data)
	}
	return Load(strings.NewReader(source), opts...)
}

// Load builds a Bank from newline-delimited words. Entries are
// lowercased; blank lines and non-alphabetic entries are skipped.
func Load(r io.Reader, opts ...Option) (*Bank, error) {
	b := &Bank{
		wordSet:  make(map[string]struct{}),
		byLength: make(map[int][]string),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || !alphabetic(word) {
			continue
		}
		if _, dup := b.wordSet[word]; dup {
			continue
		}
		b.words = append(b.words, word)
		b.wordSet[word] = struct{}{}
		b.byLength[len(word)] = append(b.byLength[len(word)], word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("words: scan list: %w", err)
	}
	if len(b.words) == 0 {
		return nil, errors.New("words: list is empty")
	}

	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return b, nil
}

// Len returns the number of loaded words.
func (b *Bank) Len() int { return len(b.words) }

// Lengths returns the word lengths present in the bank, ascending.
func (b *Bank) Lengths() []int {
	lengths := make([]int, 0, len(b.byLength))
	for l := range b.byLength {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

// IsValid reports whether the guess exists in the bank,
// case-insensitive.
func (b *Bank) IsValid(guess string) bool {
	_, ok := b.wordSet[strings.ToLower(guess)]
	return ok
}

// RandomWord picks a secret of the given length matching the
// difficulty filter. Hard applies no filter. When no word of the
// length satisfies the filter, the filter is dropped; when no word of
// the length exists at all, the whole bank is the pool.
func (b *Bank) RandomWord(difficulty game.Difficulty, length int) string {
	pool := b.byLength[length]
	if len(pool) == 0 {
		pool = b.words
	}

	params, filtered := difficultyFilter(difficulty)
	if !filtered {
		return pool[b.rng.IntN(len(pool))]
	}

	suitable := make([]string, 0, len(pool))
	for _, word := range pool {
		if uniqueLetters(word) <= params.maxUnique && commonRatio(word) >= params.minCommonRatio {
			suitable = append(suitable, word)
		}
	}
	if len(suitable) == 0 {
		return pool[b.rng.IntN(len(pool))]
	}
	return suitable[b.rng.IntN(len(suitable))]
}

// difficultyFilter returns the candidate bounds for a difficulty.
// Hard selects from the full pool; unrecognized levels fall back to
// the medium bounds.
func difficultyFilter(difficulty game.Difficulty) (difficultyParams, bool) {
	switch difficulty {
	case game.DifficultyEasy:
		return difficultyParams{minCommonRatio: 0.8, maxUnique: 4}, true
	case game.DifficultyHard:
		return difficultyParams{}, false
	default:
		return difficultyParams{minCommonRatio: 0.4, maxUnique: 5}, true
	}
}

func uniqueLetters(word string) int {
	var seen [26]bool
	n := 0
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'a'
		if idx < 26 && !seen[idx] {
			seen[idx] = true
			n++
		}
	}
	return n
}

func commonRatio(word string) float64 {
	if word == "" {
		return 0
	}
	n := 0
	for i := 0; i < len(word); i++ {
		if strings.IndexByte(commonLetters, word[i]) >= 0 {
			n++
		}
	}
	return float64(n) / float64(len(word))
}

func alphabetic(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}
