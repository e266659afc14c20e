package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"playmate/internal/journal"
)

type historyView struct {
	RunID        string    `json:"run_id"`
	Operation    string    `json:"operation"`
	Status       string    `json:"status"`
	Study        string    `json:"study,omitempty"`
	SourcePath   string    `json:"source_path,omitempty"`
	TemplatePath string    `json:"template_path,omitempty"`
	OutputPath   string    `json:"output_path,omitempty"`
	DroppedLines int       `json:"dropped_lines"`
	Error        string    `json:"error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func newHistoryView(e *journal.Entry) historyView {
	return historyView{
		RunID:        e.RunID,
		Operation:    string(e.Operation),
		Status:       string(e.Status),
		Study:        e.Study,
		SourcePath:   e.SourcePath,
		TemplatePath: e.TemplatePath,
		OutputPath:   e.OutputPath,
		DroppedLines: e.DroppedLines,
		Error:        e.ErrorMessage,
		CreatedAt:    e.CreatedAt,
	}
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool
	var pruneDays int
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent merge, intake, and normalize runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := journal.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if pruneDays > 0 {
				cutoff := time.Now().Add(-time.Duration(pruneDays) * 24 * time.Hour)
				removed, err := store.Prune(context.Background(), cutoff)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Pruned %d runs older than %d days\n", removed, pruneDays)
			}

			if id := strings.TrimSpace(runID); id != "" {
				entry, err := store.Get(context.Background(), id)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, newHistoryView(entry))
				}
				printRunDetail(out, entry)
				return nil
			}

			entries, err := store.List(context.Background(), limit)
			if err != nil {
				return err
			}
			if asJSON {
				views := make([]historyView, 0, len(entries))
				for i := range entries {
					views = append(views, newHistoryView(&entries[i]))
				}
				return writeJSON(cmd, views)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				detail := e.OutputPath
				if e.Failed() {
					detail = e.ErrorMessage
				}
				rows = append(rows, []string{
					shortRunID(e.RunID),
					e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					string(e.Operation),
					e.Study,
					string(e.Status),
					strconv.Itoa(e.DroppedLines),
					detail,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]tableColumn{
					leftCol("Run"), leftCol("When"), leftCol("Operation"), leftCol("Study"),
					leftCol("Status"), rightCol("Dropped"), wrapCol("Output / Error"),
				},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().IntVar(&pruneDays, "prune-days", 0, "Delete runs older than this many days first")
	cmd.Flags().StringVar(&runID, "run", "", "Show every recorded field of one run")
	return cmd
}

func printRunDetail(out io.Writer, e *journal.Entry) {
	fields := [][2]string{
		{"Run ID", e.RunID},
		{"When", e.CreatedAt.Local().Format("2006-01-02 15:04:05")},
		{"Operation", string(e.Operation)},
		{"Status", string(e.Status)},
		{"Study", e.Study},
		{"Source", e.SourcePath},
		{"Template", e.TemplatePath},
		{"Output", e.OutputPath},
		{"Dropped lines", strconv.Itoa(e.DroppedLines)},
		{"Error", e.ErrorMessage},
	}
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		fmt.Fprintf(out, "%-14s %s\n", f[0]+":", f[1])
	}
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
