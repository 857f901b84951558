package loader

import (
	"chat-stats/domain"
	chaterrors "chat-stats/errors"
	"chat-stats/textproc"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadStopwords_IgnoresSurroundingWhitespace(t *testing.T) {
	req := require.New(t)
	normalizer := textproc.NewNormalizer()

	clean, err := ReadStopwords(strings.NewReader("the\nwith\nكه\n"), normalizer)
	req.NoError(err)

	messy, err := ReadStopwords(strings.NewReader("  the  \r\n\twith\n\n   \nكه   \n"), normalizer)
	req.NoError(err)

	req.Equal(clean, messy)
	req.Equal(domain.NewStopwordSet("the", "with", "که"), messy)
}

func TestLoadStopwordsFile(t *testing.T) {
	req := require.New(t)
	normalizer := textproc.NewNormalizer()

	path := writeFile(t, "stopwords.txt", "World\n  از \n")
	set, err := LoadStopwordsFile(path, normalizer)
	req.NoError(err)
	req.True(set.Contains("world"))
	req.True(set.Contains("از"))

	_, err = LoadStopwordsFile(filepath.Join(t.TempDir(), "none.txt"), normalizer)
	var loadErr *chaterrors.DataLoadError
	req.True(errors.As(err, &loadErr))
}

func TestLoadBundledStopwords(t *testing.T) {
	req := require.New(t)
	normalizer := textproc.NewNormalizer()

	set, err := LoadBundledStopwords(normalizer)
	req.NoError(err)
	req.Positive(set.Len())
	req.True(set.Contains("از"))
	for _, word := range set.Words() {
		req.Equal(normalizer.Normalize(word), word)
	}
}
