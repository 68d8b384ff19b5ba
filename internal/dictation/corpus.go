// Package dictation loads sentence corpora and picks the sentences of a
// dictation exercise.
package dictation

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// MaxLines is the number of non-blank input lines considered.
	MaxLines = 500

	// MaxLineLength is the longest sentence kept, in characters, measured
	// after the tag is stripped.
	MaxLineLength = 1000

	// TagSeparator splits an optional "tag|sentence" line.
	TagSeparator = "|"
)

// Corpus is an ordered list of non-empty sentences.
type Corpus []string

// Parse extracts a corpus from line-oriented text. Lines are trimmed and
// blank lines dropped; only the first MaxLines remaining lines are read.
// A line of the form "tag|sentence" keeps the text after the first
// separator. Sentences that end up empty or longer than MaxLineLength are
// discarded.
func Parse(text string) Corpus {
	var corpus Corpus
	read := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if read == MaxLines {
			break
		}
		read++

		if _, sentence, ok := strings.Cut(line, TagSeparator); ok {
			line = strings.TrimSpace(sentence)
		}
		if line == "" || utf8.RuneCountInString(line) > MaxLineLength {
			continue
		}
		corpus = append(corpus, line)
	}
	return corpus
}

// Load reads r to the end and parses it.
func Load(r io.Reader) (Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return Parse(string(data)), nil
}
