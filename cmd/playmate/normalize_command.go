package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"playmate/internal/config"
	"playmate/internal/fileutil"
	"playmate/internal/journal"
	"playmate/internal/logging"
)

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	var backup bool

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Rewrite an OPF file in canonical form, dropping malformed lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := ctx.readDocument(args[0])
			if err != nil {
				return err
			}
			target := loaded.path
			if strings.TrimSpace(outPath) != "" {
				if target, err = config.ExpandPath(outPath); err != nil {
					return err
				}
			}
			if backup && target == loaded.path {
				if err := fileutil.CopyFile(loaded.path, loaded.path+".bak"); err != nil {
					return fmt.Errorf("write backup: %w", err)
				}
			}

			runID := journal.NewRunID()
			runCtx := logging.WithRunID(context.Background(), runID)
			entry := journal.Entry{
				RunID:        runID,
				Operation:    journal.OperationNormalize,
				SourcePath:   loaded.path,
				OutputPath:   target,
				DroppedLines: len(loaded.dropped),
			}
			if err := fileutil.WriteOPF(target, loaded.doc); err != nil {
				entry.Status = journal.StatusFailed
				entry.ErrorMessage = err.Error()
				ctx.recordRun(runCtx, entry)
				return err
			}
			ctx.recordRun(runCtx, entry)

			status := newStatusWriter(cmd.OutOrStdout())
			status.dropped(loaded.dropped)
			sev := severityOK
			if len(loaded.dropped) > 0 {
				sev = severityWarn
			}
			status.line("Normalized", sev, "%s (%d columns, %d dropped lines)", target, loaded.doc.Len(), len(loaded.dropped))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to this path instead of replacing the input")
	cmd.Flags().BoolVar(&backup, "backup", false, "Keep a .bak copy when rewriting in place")
	return cmd
}
