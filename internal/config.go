package internal

import (
	"chat-stats/render"
	"chat-stats/statistics"
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config is read from the environment, after an optional .env file.
// Command line flags override it.
type Config struct {
	LogLevel         string `env:"LOG_LEVEL,default=INFO"`
	Width            int    `env:"WORDCLOUD_WIDTH,default=800"`
	Height           int    `env:"WORDCLOUD_HEIGHT,default=1200"`
	MaxFontSize      int    `env:"WORDCLOUD_MAX_FONT_SIZE,default=250"`
	MinFontSize      int    `env:"WORDCLOUD_MIN_FONT_SIZE,default=4"`
	MaxWords         int    `env:"WORDCLOUD_MAX_WORDS,default=200"`
	BackgroundColor  string `env:"WORDCLOUD_BACKGROUND_COLOR,default=white"`
	FontPath         string `env:"WORDCLOUD_FONT_PATH"`
	Seed             int64  `env:"WORDCLOUD_SEED,default=1"`
	Margin           int    `env:"WORDCLOUD_MARGIN,default=2"`
	StopwordsPath    string `env:"STOPWORDS_PATH"`
	BuiltinStopwords bool   `env:"BUILTIN_STOPWORDS,default=false"`
	CensoredDir      string `env:"CENSORED_DIR"`
	CensorMode       string `env:"CENSOR_MODE,default=off"`
	CharReplacement  string `env:"CHARACTER_REPLACEMENT,default=*"`
	LegacyFilter     bool   `env:"LEGACY_FILTER,default=false"`
	LegacyJoin       bool   `env:"LEGACY_JOIN,default=false"`
	HistoryDBPath    string `env:"HISTORY_DB_PATH"`
	TopWords         int    `env:"TOP_WORDS,default=10"`
}

func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

func (c Config) RenderConfig() render.Config {
	return render.Config{
		Width:           c.Width,
		Height:          c.Height,
		MaxFontSize:     c.MaxFontSize,
		MinFontSize:     c.MinFontSize,
		MaxWords:        c.MaxWords,
		BackgroundColor: c.BackgroundColor,
		FontPath:        c.FontPath,
		Seed:            c.Seed,
		Margin:          c.Margin,
	}
}

func (c Config) AggregatorOptions() (statistics.Options, error) {
	options := statistics.DefaultOptions()
	if c.LegacyJoin {
		options.Separator = ""
	}
	options.LegacyFilter = c.LegacyFilter

	switch mode := statistics.CensorMode(c.CensorMode); mode {
	case statistics.CensorOff, statistics.CensorDrop, statistics.CensorMask:
		options.CensorMode = mode
	default:
		return statistics.Options{}, fmt.Errorf("CENSOR_MODE must be one of off, drop, mask, got %q", c.CensorMode)
	}
	return options, nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
