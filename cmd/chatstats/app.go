package main

import (
	"chat-stats/domain"
	"chat-stats/errors"
	"chat-stats/internal"
	"chat-stats/loader"
	"chat-stats/moderation"
	"chat-stats/render"
	"chat-stats/repositories"
	"chat-stats/resources"
	"chat-stats/services"
	"chat-stats/statistics"
	"chat-stats/textproc"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// app holds the wired pipeline of one command invocation.
type app struct {
	log     *slog.Logger
	db      *badger.DB
	service *services.ChatStatistics
}

func newApp(config internal.Config, log *slog.Logger) (*app, error) {
	normalizer := textproc.NewNormalizer()

	stopwords, err := loadStopwords(config, normalizer)
	if err != nil {
		return nil, err
	}
	log.Debug("Stopwords loaded", "count", stopwords.Len())

	options, err := config.AggregatorOptions()
	if err != nil {
		return nil, err
	}
	moderator, err := newModerator(config, options, log)
	if err != nil {
		return nil, err
	}
	aggregator := statistics.NewAggregator(log, normalizer, textproc.NewReshaper(), stopwords, moderator, options)
	renderer := render.NewRenderer(log, config.RenderConfig())

	a := &app{log: log}
	var history repositories.IHistoryRepository
	if config.HistoryDBPath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.HistoryDBPath).WithLoggingLevel(badger.WARNING))
		if err != nil {
			return nil, fmt.Errorf("history database opening failed: %w", err)
		}
		a.db = db
		history = repositories.NewHistoryRepository(db, log)
	}
	a.service = services.NewChatStatistics(log, aggregator, renderer, history, config.TopWords)
	return a, nil
}

func (a *app) Close() {
	if a.db == nil {
		return
	}
	a.log.Debug("Closing BadgerDB...")
	_ = a.db.Close()
}

func loadStopwords(config internal.Config, normalizer textproc.Normalizer) (domain.StopwordSet, error) {
	var stopwords domain.StopwordSet
	var err error
	if config.StopwordsPath != "" {
		stopwords, err = loader.LoadStopwordsFile(config.StopwordsPath, normalizer)
	} else {
		stopwords, err = loader.LoadBundledStopwords(normalizer)
	}
	if err != nil {
		return nil, err
	}
	if config.BuiltinStopwords {
		stopwords.Merge(textproc.BuiltinStopwords(normalizer))
	}
	return stopwords, nil
}

// newModerator returns nil when censoring is off.
func newModerator(config internal.Config, options statistics.Options, log *slog.Logger) (*moderation.Moderator, error) {
	if options.CensorMode == statistics.CensorOff {
		return nil, nil
	}
	mask, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return nil, err
	}

	var fsys fs.FS = resources.FS
	dir := resources.CensoredDir
	if config.CensoredDir != "" {
		fsys, dir = os.DirFS(config.CensoredDir), "."
	}
	lists, err := loader.LoadWordLists(fsys, dir)
	if err != nil {
		return nil, &errors.DataLoadError{Path: dir, Err: err}
	}
	log.Debug("Censored words loaded", "count", len(lists.Words), "languages", lists.Languages)
	return moderation.NewModerator(lists.Words, mask, log)
}
