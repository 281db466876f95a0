// Package wordlist loads newline separated dictionaries.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// maxLineBytes bounds a single dictionary line.
const maxLineBytes = 1 << 20

// Read returns the words in r, one per line. Surrounding whitespace is
// trimmed and blank lines are skipped. Duplicate lines are kept, the
// caller decides whether they matter.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var words []string
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan word list")
	}
	return words, nil
}

// ReadFile returns the words in the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open word list")
	}
	defer f.Close()
	words, err := Read(f)
	return words, errors.Wrapf(err, "read %s", path)
}
