package mimetypes

import "mime"

type MIME string

const (
	Unknown         MIME = "unknown"
	ApplicationJSON MIME = "application/json"
	FontTTF         MIME = "font/ttf"
	FontOTF         MIME = "font/otf"
	FontCollection  MIME = "font/collection"
)

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// MatchesAny returns the first expected type matching detected.
func MatchesAny(detected string, expected ...MIME) (MIME, bool) {
	for _, e := range expected {
		if m, ok := Matches(detected, e); ok {
			return m, true
		}
	}
	return Unknown, false
}
