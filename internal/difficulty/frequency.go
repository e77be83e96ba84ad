package difficulty

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

//go:embed frequency.txt
var defaultCorpus string

// FrequencyTable maps lowercase words to their count in a reference corpus.
type FrequencyTable struct {
	counts map[string]int
}

// DefaultFrequencies returns the table parsed from the embedded corpus.
var DefaultFrequencies = sync.OnceValue(func() *FrequencyTable {
	t, err := ParseFrequencies(strings.NewReader(defaultCorpus))
	if err != nil {
		panic(fmt.Sprintf("difficulty: embedded corpus: %v", err))
	}
	return t
})

// ParseFrequencies reads "<word> <count>" lines. Blank lines and lines
// starting with '#' are ignored. Repeated words accumulate.
func ParseFrequencies(r io.Reader) (*FrequencyTable, error) {
	t := &FrequencyTable{counts: make(map[string]int)}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"<word> <count>\", got %q", lineNo, line)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("line %d: invalid count %q", lineNo, fields[1])
		}
		t.counts[strings.ToLower(fields[0])] += n
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read frequencies: %w", err)
	}
	return t, nil
}

// LoadFrequencyFile parses a frequency table from path.
func LoadFrequencyFile(path string) (*FrequencyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frequency file: %w", err)
	}
	defer f.Close()
	return ParseFrequencies(f)
}

// Count returns how often word occurs. ok is false for unseen words.
func (t *FrequencyTable) Count(word string) (count int, ok bool) {
	count, ok = t.counts[strings.ToLower(word)]
	return count, ok
}

// Len returns the number of distinct words in the table.
func (t *FrequencyTable) Len() int {
	return len(t.counts)
}
