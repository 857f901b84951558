package main

import (
	"chat-stats/domain"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

func printWordTable(w io.Writer, title string, frequencies []domain.WordFrequency) {
	if len(frequencies) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", title, "Count"})
	table.SetBorder(false)
	for i, wf := range frequencies {
		table.Append([]string{strconv.Itoa(i + 1), wf.Word, strconv.Itoa(wf.Count)})
	}
	table.Render()
}
