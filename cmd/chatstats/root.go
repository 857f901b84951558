package main

import (
	"chat-stats/internal"

	"github.com/spf13/cobra"
)

func newRootCommand(config *internal.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "chatstats",
		Short:         "Statistics and word clouds for exported chats",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&config.LogLevel, "log-level", config.LogLevel, "DEBUG, INFO, WARN or ERROR")
	root.PersistentFlags().StringVar(&config.HistoryDBPath, "history-db", config.HistoryDBPath, "Badger directory recording the runs (empty disables history)")

	root.AddCommand(
		newWordCloudCommand(config),
		newStatsCommand(config),
		newHistoryCommand(config),
	)
	return root
}

// addTextFlags registers the flags shaping how messages become a corpus.
func addTextFlags(cmd *cobra.Command, config *internal.Config) {
	flags := cmd.Flags()
	flags.StringVar(&config.StopwordsPath, "stopwords", config.StopwordsPath, "Stopword file, one word per line (default: bundled Persian list)")
	flags.BoolVar(&config.BuiltinStopwords, "builtin-stopwords", config.BuiltinStopwords, "Also drop the tokenizer's Persian and English stopwords")
	flags.StringVar(&config.CensorMode, "censored", config.CensorMode, "Censoring of banned words: off, drop or mask")
	flags.StringVar(&config.CensoredDir, "censored-dir", config.CensoredDir, "Directory of banned word lists (default: bundled lists)")
	flags.StringVar(&config.CharReplacement, "mask", config.CharReplacement, "Character masking censored words")
	flags.BoolVar(&config.LegacyFilter, "legacy-filter", config.LegacyFilter, "Compare raw tokens against the stopwords")
	flags.BoolVar(&config.LegacyJoin, "legacy-join", config.LegacyJoin, "Join kept tokens without separator")
	flags.IntVar(&config.TopWords, "top", config.TopWords, "Number of top words reported")
}
