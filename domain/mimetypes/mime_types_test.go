package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		{"JSON", "application/json", ApplicationJSON, true},
		{"JSON with charset", "application/json; charset=utf-8", ApplicationJSON, true},
		{"TrueType font", "font/ttf", FontTTF, true},
		{"Font collection", "font/collection", FontCollection, true},
		{"Mismatch", "text/plain; charset=utf-8", ApplicationJSON, false},
		{"Unknown type", "application/octet-stream", FontTTF, false},
		{"Invalid MIME", "not a mime", ApplicationJSON, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Matches(tt.detected, tt.expected)
			require.Equal(t, tt.want, ok)
		})
	}
}

func TestMatchesAny(t *testing.T) {
	req := require.New(t)

	got, ok := MatchesAny("font/otf", FontTTF, FontOTF)
	req.True(ok)
	req.Equal(FontOTF, got)

	got, ok = MatchesAny("image/png", FontTTF, FontOTF)
	req.False(ok)
	req.Equal(Unknown, got)
}
