package domain

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

type WordFrequency struct {
	Word  string
	Count int
}

// CountWords returns the frequency of every word, most frequent first.
// Ties are broken alphabetically so the order is stable between runs.
func CountWords(words []string) []WordFrequency {
	counts := lo.CountValues(lo.Filter(words, func(w string, _ int) bool { return w != "" }))
	frequencies := lo.MapToSlice(counts, func(word string, count int) WordFrequency {
		return WordFrequency{Word: word, Count: count}
	})
	slices.SortFunc(frequencies, func(a, b WordFrequency) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	return frequencies
}

// Top keeps the n first frequencies. n <= 0 keeps everything.
func Top(frequencies []WordFrequency, n int) []WordFrequency {
	if n <= 0 || n >= len(frequencies) {
		return frequencies
	}
	return frequencies[:n]
}
