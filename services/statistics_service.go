package services

import (
	"chat-stats/domain"
	"chat-stats/errors"
	"chat-stats/loader"
	"chat-stats/observability"
	"chat-stats/render"
	"chat-stats/repositories"
	"chat-stats/statistics"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IChatStatistics interface {
	GenerateWordCloud(inputPath, outputDir string) (domain.RunSummary, error)
	Report(inputPath string, n int) (domain.Report, error)
	History(limit int) ([]domain.RunSummary, error)
}

// ChatStatistics runs the loader, the aggregator and the renderer in sequence.
type ChatStatistics struct {
	log        *slog.Logger
	aggregator *statistics.Aggregator
	renderer   *render.Renderer
	history    repositories.IHistoryRepository
	topWords   int
}

// NewChatStatistics builds the service. history may be nil, runs are then not recorded.
func NewChatStatistics(log *slog.Logger, aggregator *statistics.Aggregator, renderer *render.Renderer,
	history repositories.IHistoryRepository, topWords int) *ChatStatistics {
	return &ChatStatistics{
		log:        log,
		aggregator: aggregator,
		renderer:   renderer,
		history:    history,
		topWords:   topWords,
	}
}

// GenerateWordCloud renders the export at inputPath into outputDir/wordcloud.png.
func (s *ChatStatistics) GenerateWordCloud(inputPath, outputDir string) (domain.RunSummary, error) {
	start := time.Now()
	s.log.Info("Loading chat export", "path", inputPath)
	export, err := loader.LoadChatExport(inputPath)
	if err != nil {
		return domain.RunSummary{}, err
	}

	corpus, err := s.aggregator.Aggregate(export)
	if err != nil {
		return domain.RunSummary{}, err
	}
	if corpus.IsEmpty() {
		s.log.Warn("No word left after filtering", "path", inputPath,
			"text_messages", corpus.Stats.TextMessages,
			"stopwords_removed", corpus.Stats.StopwordsRemoved,
			"censored_tokens", corpus.Stats.CensoredTokens)
	} else {
		s.log.Info("Corpus ready", "tokens", len(corpus.Tokens), "lang", corpus.Language)
	}

	path, layout, err := s.renderer.RenderToDir(corpus.Text, outputDir)
	if err != nil {
		return domain.RunSummary{}, err
	}
	if len(layout.Skipped) > 0 {
		s.log.Warn("Some words did not fit in the canvas", "skipped", len(layout.Skipped))
	}

	summary := domain.RunSummary{
		ID:              uuid.New(),
		InputPath:       inputPath,
		OutputPath:      path,
		Language:        corpus.Language,
		TotalMessages:   len(export.Messages),
		TextMessages:    corpus.Stats.TextMessages,
		SkippedMessages: corpus.Stats.SkippedMessages,
		RawTokens:       corpus.Stats.RawTokens,
		KeptTokens:      corpus.Stats.KeptTokens,
		PlacedWords:     len(layout.Placements),
		TopWords:        domain.Top(domain.CountWords(corpus.Tokens), s.topWords),
		Duration:        time.Since(start),
		At:              time.Now().UTC(),
	}
	if stats, err := observability.ReadProcessStats(); err != nil {
		s.log.Warn("Unable to read process memory", "error", err)
	} else {
		summary.RSSBytes = stats.RSSBytes
		s.log.Debug("Process memory",
			"rss_mb", observability.MegaBytes(stats.RSSBytes),
			"heap_alloc_mb", observability.MegaBytes(stats.AllocBytes),
			"gc_cycles", stats.NumGC)
	}

	if s.history != nil {
		if err := s.history.StoreRun(summary); err != nil {
			s.log.Warn("Run not recorded in history", "id", summary.ID, "error", err)
		}
	}
	s.log.Info("Word cloud generated",
		"path", path,
		"placed_words", summary.PlacedWords,
		"duration", summary.Duration,
		"rss_mb", observability.MegaBytes(summary.RSSBytes))
	return summary, nil
}

// Report computes message counts, the most active senders and the most
// frequent words of an export without rendering anything.
func (s *ChatStatistics) Report(inputPath string, n int) (domain.Report, error) {
	export, err := loader.LoadChatExport(inputPath)
	if err != nil {
		return domain.Report{}, err
	}
	corpus, err := s.aggregator.Aggregate(export)
	if err != nil {
		return domain.Report{}, err
	}

	senders := lo.FilterMap(export.Messages, func(m domain.Message, _ int) (string, bool) {
		from := m.Meta().From
		return from, from != ""
	})
	text, other := export.Counts()
	return domain.Report{
		Name:            export.Name,
		TotalMessages:   len(export.Messages),
		TextMessages:    text,
		SkippedMessages: other,
		Language:        corpus.Language,
		TopSenders:      domain.Top(domain.CountWords(senders), n),
		TopWords:        domain.Top(domain.CountWords(corpus.Tokens), n),
		Stats:           corpus.Stats,
	}, nil
}

func (s *ChatStatistics) History(limit int) ([]domain.RunSummary, error) {
	if s.history == nil {
		return nil, errors.ErrHistoryDisabled
	}
	return s.history.ListRuns(limit)
}
