package textproc

import (
	"chat-stats/domain"

	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/lang/en"
	"github.com/blugelabs/bluge/analysis/lang/fa"
	"github.com/blugelabs/bluge/analysis/token"
	"github.com/blugelabs/bluge/analysis/tokenizer"
	"github.com/samber/lo"
)

// NewTokenizer returns a UAX#29 word segmenter. Punctuation and whitespace
// never produce tokens.
func NewTokenizer() analysis.Tokenizer {
	return tokenizer.NewUnicodeTokenizer()
}

// NormalizeFilter rewrites every token term with a Normalizer and drops
// the tokens left empty.
type NormalizeFilter struct {
	normalizer Normalizer
}

func NewNormalizeFilter(normalizer Normalizer) *NormalizeFilter {
	return &NormalizeFilter{normalizer: normalizer}
}

func (f *NormalizeFilter) Filter(input analysis.TokenStream) analysis.TokenStream {
	output := make(analysis.TokenStream, 0, len(input))
	for _, tok := range input {
		term := f.normalizer.Normalize(string(tok.Term))
		if term == "" {
			continue
		}
		tok.Term = []byte(term)
		output = append(output, tok)
	}
	return output
}

// NewStopFilter removes the tokens whose term is in the set.
func NewStopFilter(set domain.StopwordSet) analysis.TokenFilter {
	tokens := analysis.NewTokenMap()
	for word := range set {
		tokens.AddToken(word)
	}
	return token.NewStopTokensFilter(tokens)
}

// Terms extracts the token strings in stream order.
func Terms(stream analysis.TokenStream) []string {
	return lo.Map(stream, func(tok *analysis.Token, _ int) string {
		return string(tok.Term)
	})
}

// BuiltinStopwords returns the Persian and English lists shipped with the
// analysis library, normalized the same way as the corpus.
func BuiltinStopwords(normalizer Normalizer) domain.StopwordSet {
	set := domain.NewStopwordSet()
	for _, tokens := range []analysis.TokenMap{fa.StopWords(), en.StopWords()} {
		for word := range tokens {
			set.Add(normalizer.Normalize(word))
		}
	}
	return set
}
