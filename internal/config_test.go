package internal

import (
	"chat-stats/render"
	"chat-stats/statistics"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_LoadConfig_Defaults_Match_Render_Defaults(t *testing.T) {
	req := require.New(t)
	t.Chdir(t.TempDir())

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal(render.DefaultConfig(), config.RenderConfig())

	options, err := config.AggregatorOptions()
	req.NoError(err)
	req.Equal(statistics.DefaultOptions(), options)
}

func Test_LoadConfig_From_Environment(t *testing.T) {
	req := require.New(t)
	t.Chdir(t.TempDir())
	t.Setenv("WORDCLOUD_WIDTH", "640")
	t.Setenv("WORDCLOUD_BACKGROUND_COLOR", "#000000")
	t.Setenv("LEGACY_JOIN", "true")
	t.Setenv("CENSOR_MODE", "mask")

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal(640, config.RenderConfig().Width)
	req.Equal("#000000", config.RenderConfig().BackgroundColor)

	options, err := config.AggregatorOptions()
	req.NoError(err)
	req.Equal("", options.Separator)
	req.Equal(statistics.CensorMask, options.CensorMode)
}

func Test_AggregatorOptions_Rejects_Unknown_Censor_Mode(t *testing.T) {
	_, err := Config{CensorMode: "blur"}.AggregatorOptions()
	require.Error(t, err)
}

func Test_CharacterRune(t *testing.T) {
	req := require.New(t)
	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("**")
	req.Error(err)
	_, err = CharacterRune("")
	req.Error(err)
}
