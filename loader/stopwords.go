package loader

import (
	"chat-stats/domain"
	"chat-stats/errors"
	"chat-stats/resources"
	"chat-stats/textproc"
	"io"
	"os"
)

// ReadStopwords reads newline delimited stopwords, trims them and normalizes
// each one with the normalizer applied to the corpus.
func ReadStopwords(r io.Reader, normalizer textproc.Normalizer) (domain.StopwordSet, error) {
	set := domain.NewStopwordSet()
	err := ScanWords(r, func(word string) {
		set.Add(normalizer.Normalize(word))
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// LoadStopwordsFile reads a stopword file from disk.
func LoadStopwordsFile(path string, normalizer textproc.Normalizer) (domain.StopwordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.DataLoadError{Path: path, Err: err}
	}
	defer f.Close()

	set, err := ReadStopwords(f, normalizer)
	if err != nil {
		return nil, &errors.DataLoadError{Path: path, Err: err}
	}
	return set, nil
}

// LoadBundledStopwords reads the stopword list embedded in the binary.
func LoadBundledStopwords(normalizer textproc.Normalizer) (domain.StopwordSet, error) {
	f, err := resources.FS.Open(resources.StopwordsPath)
	if err != nil {
		return nil, &errors.DataLoadError{Path: resources.StopwordsPath, Err: err}
	}
	defer f.Close()

	set, err := ReadStopwords(f, normalizer)
	if err != nil {
		return nil, &errors.DataLoadError{Path: resources.StopwordsPath, Err: err}
	}
	return set, nil
}
