package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxWordLen caps tokens accepted by the bulk loader. 45 letters covers
// the longest word found in major English dictionaries
// (pneumonoultramicroscopicsilicovolcanoconiosis). This is loader
// policy, not a structural limit: the tree takes paths of any length
// through Add.
const MaxWordLen = 45

// AddAll reads a line-oriented source holding one word per line and
// adds every word to the set. When assumeLower is true the caller
// guarantees the source is already lowercase and the per-word case
// mapping is skipped. The first malformed or unreadable line aborts the
// load with an error naming the line; words added from earlier lines
// stay in the set.
func (l *Lexicon) AddAll(r io.Reader, assumeLower bool) error {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		token := strings.TrimSpace(scanner.Text())
		if len(token) > MaxWordLen {
			return fmt.Errorf("line %d: %w, token exceeds %d characters", line, ErrInvalidWord, MaxWordLen)
		}
		if assumeLower {
			if !isLower(token) {
				return fmt.Errorf("line %d: %w, expected a lowercase word, got %q", line, ErrInvalidWord, token)
			}
			l.addLowered(token)
			continue
		}
		if err := l.Add(token); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading word source: %w", err)
	}
	return nil
}

// AddFile loads the named file through AddAll.
func (l *Lexicon) AddFile(path string, assumeLower bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening word source: %w", err)
	}
	defer file.Close()
	return l.AddAll(file, assumeLower)
}

func isLower(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}
