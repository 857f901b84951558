package domain

import "slices"

// StopwordSet holds normalized tokens excluded from the corpus.
type StopwordSet map[string]struct{}

func NewStopwordSet(words ...string) StopwordSet {
	set := make(StopwordSet, len(words))
	for _, w := range words {
		set.Add(w)
	}
	return set
}

// Add ignores empty words.
func (s StopwordSet) Add(word string) {
	if word == "" {
		return
	}
	s[word] = struct{}{}
}

func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func (s StopwordSet) Len() int {
	return len(s)
}

// Words returns the set content sorted.
func (s StopwordSet) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// Merge adds every word of other into s.
func (s StopwordSet) Merge(other StopwordSet) {
	for w := range other {
		s[w] = struct{}{}
	}
}
