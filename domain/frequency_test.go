package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountWords_OrdersByCountThenWord(t *testing.T) {
	req := require.New(t)
	frequencies := CountWords([]string{"b", "a", "c", "b", "", "a", "b"})
	req.Equal([]WordFrequency{
		{Word: "b", Count: 3},
		{Word: "a", Count: 2},
		{Word: "c", Count: 1},
	}, frequencies)
}

func TestCountWords_Empty(t *testing.T) {
	require.Empty(t, CountWords(nil))
}

func TestTop(t *testing.T) {
	frequencies := []WordFrequency{{"a", 3}, {"b", 2}, {"c", 1}}
	tests := []struct {
		description string
		n           int
		want        int
	}{
		{"Should keep the n first", 2, 2},
		{"Should keep everything when n is larger", 10, 3},
		{"Should keep everything when n is zero", 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Len(t, Top(frequencies, tt.n), tt.want)
		})
	}
}
