package difficulty

import (
	"strings"
	"unicode"
)

const (
	// MinDifficulty and MaxDifficulty bound every estimate.
	MinDifficulty = 1.0
	MaxDifficulty = 5.0

	// compositionalBase is the fixed offset every multi-word item starts with.
	compositionalBase = 2
	// maxExtraWords caps the per-word bonus of multi-word items.
	maxExtraWords = 3

	maxLengthScore    = 4
	maxPhoneticScore  = 4
	maxFrequencyScore = 4
	maxSyllableScore  = 3

	// SingleWordMax is the highest raw sum a single word can score.
	SingleWordMax = maxLengthScore + maxPhoneticScore + maxFrequencyScore + maxSyllableScore
	// MultiWordMax is the highest raw sum a multi-word item can score.
	MultiWordMax = compositionalBase + maxExtraWords + maxPhoneticScore + maxSyllableScore
)

// Scores is the per-factor breakdown behind a difficulty estimate.
type Scores struct {
	MultiWord bool
	// Length is the length score for single words and the compositional
	// score (base offset plus extra words) for multi-word items.
	Length    int
	Phonetic  int
	Frequency int // zero for multi-word items
	Syllable  int
	Max       int
}

// Sum returns the raw total of all factor scores.
func (s Scores) Sum() int {
	return s.Length + s.Phonetic + s.Frequency + s.Syllable
}

// Normalized maps the raw total onto [MinDifficulty, MaxDifficulty].
func (s Scores) Normalized() float64 {
	if s.Max == 0 {
		return MinDifficulty
	}
	d := float64(s.Sum()) / float64(s.Max) * MaxDifficulty
	return clamp(d, MinDifficulty, MaxDifficulty)
}

// Estimator computes static difficulty scores from an item's surface features.
type Estimator struct {
	freq *FrequencyTable
}

// NewEstimator creates an Estimator that looks words up in freq.
// A nil table uses the embedded reference corpus.
func NewEstimator(freq *FrequencyTable) *Estimator {
	if freq == nil {
		freq = DefaultFrequencies()
	}
	return &Estimator{freq: freq}
}

// Estimate returns the difficulty of text in [1, 5].
func (e *Estimator) Estimate(text string) float64 {
	return e.Breakdown(text).Normalized()
}

// Breakdown returns the individual factor scores for text.
func (e *Estimator) Breakdown(text string) Scores {
	words := Words(text)
	if len(words) == 0 {
		return Scores{Length: 1, Phonetic: 2, Frequency: maxFrequencyScore, Syllable: 1, Max: SingleWordMax}
	}

	phonetic := PhoneticScore(strings.Join(words, ""))

	if len(words) == 1 {
		word := words[0]
		return Scores{
			Length:    LengthScore(word),
			Phonetic:  phonetic,
			Frequency: e.FrequencyScore(word),
			Syllable:  SyllableScore(CountSyllables(word), false),
			Max:       SingleWordMax,
		}
	}

	total := 0
	for _, w := range words {
		total += CountSyllables(w)
	}
	return Scores{
		MultiWord: true,
		Length:    CompositionalScore(len(words)),
		Phonetic:  phonetic,
		Syllable:  SyllableScore(total, true),
		Max:       MultiWordMax,
	}
}

// LengthScore scores a single word by its character count.
func LengthScore(word string) int {
	n := len([]rune(word))
	switch {
	case n <= 4:
		return 1
	case n <= 7:
		return 2
	case n <= 10:
		return 3
	default:
		return maxLengthScore
	}
}

// CompositionalScore scores a multi-word item: a base offset plus one point
// per word beyond the first.
func CompositionalScore(wordCount int) int {
	extra := wordCount - 1
	if extra < 0 {
		extra = 0
	}
	if extra > maxExtraWords {
		extra = maxExtraWords
	}
	return compositionalBase + extra
}

// PhoneticScore is 4 when either double-metaphone code of text is longer
// than four characters, 2 otherwise.
func PhoneticScore(text string) int {
	primary, alternate := DoubleMetaphone(text)
	if len(primary) > 4 || len(alternate) > 4 {
		return maxPhoneticScore
	}
	return 2
}

// FrequencyScore scores a single word by how common it is in the reference
// corpus. Unseen words are the hardest.
func (e *Estimator) FrequencyScore(word string) int {
	count, ok := e.freq.Count(word)
	switch {
	case !ok:
		return maxFrequencyScore
	case count > 100:
		return 1
	case count > 50:
		return 2
	default:
		return 3
	}
}

// SyllableScore scores a syllable total. Multi-word items get one extra
// syllable of headroom per band.
func SyllableScore(total int, multiWord bool) int {
	low, mid := 2, 4
	if multiWord {
		low, mid = 3, 5
	}
	switch {
	case total <= low:
		return 1
	case total <= mid:
		return 2
	default:
		return maxSyllableScore
	}
}

// Words splits text into lowercase words with surrounding punctuation
// trimmed. Tokens with no letters are dropped.
func Words(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := fields[:0]
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
