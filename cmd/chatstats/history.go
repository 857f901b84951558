package main

import (
	"chat-stats/internal"
	"chat-stats/observability"
	"fmt"
	"strconv"
	"time"

	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newHistoryCommand(config *internal.Config) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the recorded word cloud runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.HistoryDBPath == "" {
				config.HistoryDBPath = database.DefaultPath
			}
			log := logs.GetLoggerFromString(config.LogLevel)
			app, err := newApp(*config, log)
			if err != nil {
				return err
			}
			defer app.Close()

			runs, err := app.service.History(limit)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"At", "Input", "Output", "Lang", "Messages", "Kept", "Placed", "Duration", "RSS (MB)"})
			table.SetAutoWrapText(false)
			table.SetBorder(false)
			for _, run := range runs {
				table.Append([]string{
					run.At.Local().Format("2006-01-02 15:04:05"),
					run.InputPath,
					run.OutputPath,
					run.Language,
					strconv.Itoa(run.TotalMessages),
					strconv.Itoa(run.KeptTokens),
					strconv.Itoa(run.PlacedWords),
					run.Duration.Round(time.Millisecond).String(),
					fmt.Sprintf("%.1f", observability.MegaBytes(run.RSSBytes)),
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of runs listed (0 lists all)")
	return cmd
}
