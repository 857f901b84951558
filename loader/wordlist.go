package loader

import (
	"bufio"
	"bytes"
	"chat-stats/errors"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// WordLists carries the result of loading a directory of word lists.
type WordLists struct {
	Words     []string
	Languages []string
}

// LoadWordLists scans dir in fsys, treating every .txt file as the list of one
// language, and returns the unique words found.
func LoadWordLists(fsys fs.FS, dir string) (*WordLists, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var languages []string
	uniqueWords := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			return nil, errors.ErrOnlyCensoredFiles
		}
		if path.Ext(entry.Name()) != ".txt" {
			continue
		}

		// "fr.txt" -> "fr"
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if err := ScanWords(bytes.NewReader(data), func(word string) {
			uniqueWords[word] = struct{}{}
		}); err != nil {
			return nil, err
		}
	}

	if len(uniqueWords) == 0 {
		return nil, errors.ErrEmptyWords
	}

	words := make([]string, 0, len(uniqueWords))
	for w := range uniqueWords {
		words = append(words, w)
	}
	slices.Sort(words)

	return &WordLists{Words: words, Languages: languages}, nil
}

// ScanWords calls fn with every non blank line of r, trimmed.
// A scanner handles both \n and \r\n line endings.
func ScanWords(r io.Reader, fn func(word string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			fn(line)
		}
	}
	return scanner.Err()
}
