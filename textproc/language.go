package textproc

import "github.com/abadojack/whatlanggo"

// DetectLanguage returns the ISO 639-1 code of the dominant language of
// text, or an empty string when nothing can be said about it.
func DetectLanguage(text string) string {
	if text == "" {
		return ""
	}
	info := whatlanggo.Detect(text)
	if info.Confidence == 0 {
		return ""
	}
	return info.Lang.Iso6391()
}
