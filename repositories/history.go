//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=../mocks/mock_history_repository.go -package=mocks
package repositories

import (
	"chat-stats/domain"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const runPrefix = "run:"

type IHistoryRepository interface {
	StoreRun(run domain.RunSummary) error
	ListRuns(limit int) ([]domain.RunSummary, error)
}

type HistoryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewHistoryRepository(db *badger.DB, log *slog.Logger) HistoryRepository {
	return HistoryRepository{db: db, log: log}
}

// StoreRun persists a run under "run:{timestamp_padded}:{uuid}".
// The 19-digit padding keeps lexicographical order chronological and the
// UUID separates two runs recorded in the same nanosecond.
func (h HistoryRepository) StoreRun(run domain.RunSummary) error {
	key := fmt.Sprintf("%s%019d:%s", runPrefix, run.At.UnixNano(), run.ID)
	value, err := fromRunSummary(run)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(value)
	if err != nil {
		return err
	}
	return h.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// ListRuns returns the most recent runs first. limit <= 0 returns them all.
func (h HistoryRepository) ListRuns(limit int) ([]domain.RunSummary, error) {
	var values [][]byte
	err := h.db.View(func(txn *badger.Txn) error {
		prefix := []byte(runPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(append([]byte(runPrefix), 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(values) == limit {
				h.log.Debug(fmt.Sprintf("Maximum of %d runs reached", limit))
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	runs := make([]domain.RunSummary, 0, len(values))
	for _, b := range values {
		var s structpb.Struct
		if err = proto.Unmarshal(b, &s); err != nil {
			return nil, err
		}
		run, err := toRunSummary(&s)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func fromRunSummary(run domain.RunSummary) (*structpb.Struct, error) {
	topWords := lo.Map(run.TopWords, func(wf domain.WordFrequency, _ int) any {
		return map[string]any{"word": wf.Word, "count": wf.Count}
	})
	return structpb.NewStruct(map[string]any{
		"id":               run.ID.String(),
		"input_path":       run.InputPath,
		"output_path":      run.OutputPath,
		"language":         run.Language,
		"total_messages":   run.TotalMessages,
		"text_messages":    run.TextMessages,
		"skipped_messages": run.SkippedMessages,
		"raw_tokens":       run.RawTokens,
		"kept_tokens":      run.KeptTokens,
		"placed_words":     run.PlacedWords,
		"top_words":        topWords,
		"rss_bytes":        run.RSSBytes,
		"duration":         run.Duration.String(),
		"at":               run.At.UTC().Format(time.RFC3339Nano),
	})
}

func toRunSummary(s *structpb.Struct) (domain.RunSummary, error) {
	fields := s.GetFields()
	str := func(name string) string { return fields[name].GetStringValue() }
	num := func(name string) int { return int(fields[name].GetNumberValue()) }

	id, err := uuid.Parse(str("id"))
	if err != nil {
		return domain.RunSummary{}, err
	}
	duration, err := time.ParseDuration(str("duration"))
	if err != nil {
		return domain.RunSummary{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, str("at"))
	if err != nil {
		return domain.RunSummary{}, err
	}
	topWords := lo.Map(fields["top_words"].GetListValue().GetValues(), func(v *structpb.Value, _ int) domain.WordFrequency {
		word := v.GetStructValue().GetFields()
		return domain.WordFrequency{
			Word:  word["word"].GetStringValue(),
			Count: int(word["count"].GetNumberValue()),
		}
	})

	return domain.RunSummary{
		ID:              id,
		InputPath:       str("input_path"),
		OutputPath:      str("output_path"),
		Language:        str("language"),
		TotalMessages:   num("total_messages"),
		TextMessages:    num("text_messages"),
		SkippedMessages: num("skipped_messages"),
		RawTokens:       num("raw_tokens"),
		KeptTokens:      num("kept_tokens"),
		PlacedWords:     num("placed_words"),
		TopWords:        topWords,
		RSSBytes:        uint64(fields["rss_bytes"].GetNumberValue()),
		Duration:        duration,
		At:              at,
	}, nil
}
