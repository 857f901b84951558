// Package loader reads the inputs of a run: the chat export and the word lists.
package loader

import (
	"chat-stats/domain"
	"chat-stats/domain/mimetypes"
	"chat-stats/errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/tidwall/gjson"
)

// telegramDate is the layout of the "date" field of Telegram desktop exports.
const telegramDate = "2006-01-02T15:04:05"

// LoadChatExport reads and validates a chat export file.
// Every failure is reported as an *errors.DataLoadError.
func LoadChatExport(path string) (domain.ChatExport, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.ChatExport{}, &errors.DataLoadError{Path: path, Err: err}
	}
	defer f.Close()

	export, err := ReadChatExport(f)
	if err != nil {
		return domain.ChatExport{}, &errors.DataLoadError{Path: path, Err: err}
	}
	return export, nil
}

// ReadChatExport parses an export of shape {"messages": [{"text": ...}, ...]}.
// Fields other than id, from, date and text are ignored.
func ReadChatExport(r io.Reader) (domain.ChatExport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.ChatExport{}, err
	}
	if !gjson.ValidBytes(data) {
		// The sniffer only reads the head of the file: JSON there means the document breaks further down.
		detected := mimetype.Detect(data).String()
		if _, ok := mimetypes.Matches(detected, mimetypes.ApplicationJSON); ok {
			return domain.ChatExport{}, fmt.Errorf("%w: malformed JSON after the first bytes", errors.ErrNotJSON)
		}
		return domain.ChatExport{}, fmt.Errorf("%w: detected %s", errors.ErrNotJSON, detected)
	}

	root := gjson.ParseBytes(data)
	messages := root.Get("messages")
	if !messages.IsArray() {
		return domain.ChatExport{}, errors.ErrMissingMessages
	}

	export := domain.ChatExport{Name: root.Get("name").String()}
	messages.ForEach(func(_, value gjson.Result) bool {
		export.Messages = append(export.Messages, toMessage(value))
		return true
	})
	return export, nil
}

func toMessage(value gjson.Result) domain.Message {
	header := domain.Header{
		ID:   value.Get("id").Int(),
		From: value.Get("from").String(),
		Date: toDate(value),
	}

	text := value.Get("text")
	if text.Type == gjson.String {
		return domain.TextMessage{Header: header, Text: text.String()}
	}
	return domain.OtherMessage{Header: header, Kind: kindOf(text)}
}

func toDate(value gjson.Result) time.Time {
	if unix := value.Get("date_unixtime"); unix.Exists() {
		return time.Unix(unix.Int(), 0).UTC()
	}
	if date := value.Get("date"); date.Type == gjson.String {
		if t, err := time.Parse(telegramDate, date.String()); err == nil {
			return t
		}
	}
	return time.Time{}
}

func kindOf(text gjson.Result) string {
	switch {
	case !text.Exists():
		return "missing"
	case text.IsArray():
		return "entities"
	default:
		return text.Type.String()
	}
}
