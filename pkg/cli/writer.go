package cli

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/khalid-nowaf/lexicon/pkg/lexicon"
)

// Writer dumps the surviving words of a filtered lexicon to a file in
// the chosen directory.
type Writer interface {
	Write(lex *lexicon.Lexicon, directory string) error
}

// TextWriter writes one word per line, the same shape the bulk loader
// reads, so filtered output can be loaded again as a dictionary.
type TextWriter struct {
	Stats *Stats
}

func (w *TextWriter) Write(lex *lexicon.Lexicon, directory string) error {
	file, err := os.Create(filepath.Join(directory, "filtered.txt"))
	if err != nil {
		return err
	}
	defer file.Close()

	out := bufio.NewWriter(file)
	for _, word := range lex.Words() {
		if _, err := out.WriteString(word + "\n"); err != nil {
			return err
		}
		w.Stats.Output++
	}
	return out.Flush()
}

// JSONWriter writes the surviving words as one JSON array.
type JSONWriter struct {
	Stats *Stats
}

func (w *JSONWriter) Write(lex *lexicon.Lexicon, directory string) error {
	file, err := os.Create(filepath.Join(directory, "filtered.json"))
	if err != nil {
		return err
	}
	defer file.Close()

	words := lex.Words()
	w.Stats.Output += len(words)

	encoder := json.NewEncoder(file)
	return encoder.Encode(words)
}
