package main

import (
	"chat-stats/internal"
	"fmt"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

func newWordCloudCommand(config *internal.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordcloud <input.json> <output_dir>",
		Short: "Render the words of a chat export as wordcloud.png",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logs.GetLoggerFromString(config.LogLevel)
			app, err := newApp(*config, log)
			if err != nil {
				return err
			}
			defer app.Close()

			summary, err := app.service.GenerateWordCloud(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.New(color.FgGreen).Render("Word cloud written to "+summary.OutputPath))
			printWordTable(cmd.OutOrStdout(), "Word", summary.TopWords)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&config.Width, "width", config.Width, "Image width in pixels")
	flags.IntVar(&config.Height, "height", config.Height, "Image height in pixels")
	flags.IntVar(&config.MaxFontSize, "max-font-size", config.MaxFontSize, "Font size of the most frequent word")
	flags.IntVar(&config.MinFontSize, "min-font-size", config.MinFontSize, "Smallest font size drawn")
	flags.IntVar(&config.MaxWords, "max-words", config.MaxWords, "Maximum number of words drawn")
	flags.StringVar(&config.BackgroundColor, "background-color", config.BackgroundColor, "Color name or #rrggbb")
	flags.StringVar(&config.FontPath, "font", config.FontPath, "TrueType, OpenType or collection font (default: DejaVu Sans)")
	flags.Int64Var(&config.Seed, "seed", config.Seed, "Seed of the layout and colors")
	flags.IntVar(&config.Margin, "margin", config.Margin, "Pixels kept free around each word")
	addTextFlags(cmd, config)
	return cmd
}
