// Package render lays out a corpus as a word cloud and writes it as a PNG.
package render

import (
	"chat-stats/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const OutputFilename = "wordcloud.png"

var validate = validator.New()

// Config drives the layout. Every field is honored as given.
type Config struct {
	Width           int    `validate:"min=16,max=8192"`
	Height          int    `validate:"min=16,max=8192"`
	MaxFontSize     int    `validate:"min=1,gtefield=MinFontSize"`
	MinFontSize     int    `validate:"min=1"`
	MaxWords        int    `validate:"min=1"`
	BackgroundColor string `validate:"required"`
	// FontPath points to a TrueType, OpenType or collection file. Empty means DefaultFont.
	FontPath string
	Seed     int64
	Margin   int `validate:"min=0,max=64"`
}

func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          1200,
		MaxFontSize:     250,
		MinFontSize:     4,
		MaxWords:        200,
		BackgroundColor: "white",
		Seed:            1,
		Margin:          2,
	}
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if _, err := ParseColor(c.BackgroundColor); err != nil {
		return err
	}
	return nil
}
