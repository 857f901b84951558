// Package statistics turns a chat export into the corpus the word cloud is
// drawn from.
package statistics

import (
	"chat-stats/domain"
	"chat-stats/moderation"
	"chat-stats/textproc"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blugelabs/bluge/analysis"
)

type CensorMode string

const (
	CensorOff  CensorMode = "off"
	CensorDrop CensorMode = "drop"
	CensorMask CensorMode = "mask"
)

type Options struct {
	// Separator joins the kept tokens. The empty string glues them together.
	Separator string
	// LegacyFilter compares raw tokens against the normalized stopwords
	// instead of normalizing each token first.
	LegacyFilter bool
	CensorMode   CensorMode
}

func DefaultOptions() Options {
	return Options{Separator: " ", CensorMode: CensorOff}
}

type Aggregator struct {
	log        *slog.Logger
	normalizer textproc.Normalizer
	reshaper   textproc.Reshaper
	tokenizer  analysis.Tokenizer
	normalize  analysis.TokenFilter
	stop       analysis.TokenFilter
	moderator  *moderation.Moderator
	options    Options
}

// NewAggregator wires the text pipeline. moderator may be nil when no word is censored.
func NewAggregator(log *slog.Logger, normalizer textproc.Normalizer, reshaper textproc.Reshaper,
	stopwords domain.StopwordSet, moderator *moderation.Moderator, options Options) *Aggregator {
	return &Aggregator{
		log:        log,
		normalizer: normalizer,
		reshaper:   reshaper,
		tokenizer:  textproc.NewTokenizer(),
		normalize:  textproc.NewNormalizeFilter(normalizer),
		stop:       textproc.NewStopFilter(stopwords),
		moderator:  moderator,
		options:    options,
	}
}

// Aggregate builds the corpus from every text message, in document order.
// Messages without plain text are skipped.
func (a *Aggregator) Aggregate(export domain.ChatExport) (domain.Corpus, error) {
	var stats domain.AggregationStats
	var tokens []string

	for _, m := range export.Messages {
		switch msg := m.(type) {
		case domain.TextMessage:
			stats.TextMessages++
			tokens = append(tokens, a.Filter(msg.Text, &stats)...)
		case domain.OtherMessage:
			stats.SkippedMessages++
		}
	}
	stats.KeptTokens = len(tokens)

	text := a.normalizer.Normalize(strings.Join(tokens, a.options.Separator))
	language := textproc.DetectLanguage(text)

	display, err := a.reshaper.Reshape(text)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("reshaping corpus: %w", err)
	}

	a.log.Debug("Corpus aggregated",
		"text_messages", stats.TextMessages,
		"skipped_messages", stats.SkippedMessages,
		"raw_tokens", stats.RawTokens,
		"kept_tokens", stats.KeptTokens,
		"stopwords_removed", stats.StopwordsRemoved,
		"censored_tokens", stats.CensoredTokens,
		"lang", language)

	return domain.Corpus{Text: display, Tokens: tokens, Language: language, Stats: stats}, nil
}

// Filter tokenizes one message and returns the tokens left after stopword
// removal and censoring.
func (a *Aggregator) Filter(text string, stats *domain.AggregationStats) []string {
	stream := a.tokenizer.Tokenize([]byte(text))
	stats.RawTokens += len(stream)

	if !a.options.LegacyFilter {
		stream = a.normalize.Filter(stream)
	}
	before := len(stream)
	stream = a.stop.Filter(stream)
	stats.StopwordsRemoved += before - len(stream)

	return a.censor(textproc.Terms(stream), stats)
}

func (a *Aggregator) censor(tokens []string, stats *domain.AggregationStats) []string {
	if a.moderator == nil || a.options.CensorMode == CensorOff {
		return tokens
	}
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		// Drop only removes whole banned tokens, mask hides banned words inside any token.
		if a.options.CensorMode == CensorDrop {
			if a.moderator.Matches(tok) {
				stats.CensoredTokens++
				continue
			}
			kept = append(kept, tok)
			continue
		}
		masked, found := a.moderator.Censor(tok)
		if len(found) > 0 {
			stats.CensoredTokens++
		}
		kept = append(kept, masked)
	}
	return kept
}
