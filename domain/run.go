package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunSummary is what a word cloud generation leaves behind in the history.
type RunSummary struct {
	ID              uuid.UUID
	InputPath       string
	OutputPath      string
	Language        string
	TotalMessages   int
	TextMessages    int
	SkippedMessages int
	RawTokens       int
	KeptTokens      int
	PlacedWords     int
	TopWords        []WordFrequency
	RSSBytes        uint64
	Duration        time.Duration
	At              time.Time
}

// Report is the statistics view of one export.
type Report struct {
	Name            string
	TotalMessages   int
	TextMessages    int
	SkippedMessages int
	Language        string
	TopSenders      []WordFrequency
	TopWords        []WordFrequency
	Stats           AggregationStats
}
