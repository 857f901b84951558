package domain

// AggregationStats describes what happened to the text while building a corpus.
type AggregationStats struct {
	TextMessages     int
	SkippedMessages  int
	RawTokens        int
	KeptTokens       int
	StopwordsRemoved int
	CensoredTokens   int
}

// Corpus is the accumulated text fed to the renderer.
// Tokens keeps the filtered tokens in logical reading order, Text is the
// normalized and display-ready string built from them.
type Corpus struct {
	Text     string
	Tokens   []string
	Language string
	Stats    AggregationStats
}

func (c Corpus) IsEmpty() bool {
	return len(c.Tokens) == 0 || c.Text == ""
}
