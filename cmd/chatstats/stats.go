package main

import (
	"chat-stats/internal"
	"fmt"
	"strconv"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newStatsCommand(config *internal.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <input.json>",
		Short: "Print message counts, top senders and top words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logs.GetLoggerFromString(config.LogLevel)
			app, err := newApp(*config, log)
			if err != nil {
				return err
			}
			defer app.Close()

			report, err := app.service.Report(args[0], config.TopWords)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, color.New(color.FgCyan).Render(report.Name))
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Messages", "Text", "Other", "Tokens", "Kept", "Stopwords", "Censored", "Lang"})
			table.SetBorder(false)
			table.Append([]string{
				strconv.Itoa(report.TotalMessages),
				strconv.Itoa(report.TextMessages),
				strconv.Itoa(report.SkippedMessages),
				strconv.Itoa(report.Stats.RawTokens),
				strconv.Itoa(report.Stats.KeptTokens),
				strconv.Itoa(report.Stats.StopwordsRemoved),
				strconv.Itoa(report.Stats.CensoredTokens),
				report.Language,
			})
			table.Render()

			printWordTable(out, "Sender", report.TopSenders)
			printWordTable(out, "Word", report.TopWords)
			return nil
		},
	}
	addTextFlags(cmd, config)
	return cmd
}
