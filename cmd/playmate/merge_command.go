package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"playmate/internal/fileutil"
	"playmate/internal/journal"
	"playmate/internal/logging"
	"playmate/internal/merge"
	"playmate/internal/opf"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var studyKind, sourcePath, templatePath, outDir string

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge an intake file into a blank study template",
		Long: "Copies PLAY_ID and missing_child from the intake file into the template,\n" +
			"then pins every study column to the first PLAY_ID cell's onset and offset.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(studyKind) == "" {
				return errors.New("--study is required")
			}
			if strings.TrimSpace(sourcePath) == "" || strings.TrimSpace(templatePath) == "" {
				return errors.New("--source and --template are required")
			}
			registry, err := ctx.registry()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			source, err := ctx.readDocument(sourcePath)
			if err != nil {
				return err
			}
			template, err := ctx.readDocument(templatePath)
			if err != nil {
				return err
			}

			runID := journal.NewRunID()
			runCtx := logging.WithRunID(context.Background(), runID)
			entry := journal.Entry{
				RunID:        runID,
				Operation:    journal.OperationMerge,
				Study:        strings.ToUpper(strings.TrimSpace(studyKind)),
				SourcePath:   source.path,
				TemplatePath: template.path,
				DroppedLines: len(source.dropped) + len(template.dropped),
			}
			fail := func(err error) error {
				entry.Status = journal.StatusFailed
				entry.ErrorMessage = err.Error()
				ctx.recordRun(runCtx, entry)
				return err
			}

			engine := merge.NewEngine(registry, logger)
			res, err := engine.Run(runCtx, studyKind, source.doc, template.doc)
			if err != nil {
				return fail(err)
			}
			dir, err := ctx.outputDir(outDir, source.path)
			if err != nil {
				return fail(err)
			}
			target := fileutil.OutputPath(dir, res.Document.Name)
			entry.OutputPath = target
			if err := fileutil.WriteOPF(target, res.Document); err != nil {
				return fail(err)
			}
			ctx.recordRun(runCtx, entry)

			out := cmd.OutOrStdout()
			status := newStatusWriter(out)
			status.dropped(combinedDropped(source, template))
			status.info("Anchor", "%s - %s", res.Anchor.Onset, res.Anchor.Offset)
			status.info("Study columns", "%d placeholders, %d realigned", res.Placeholders, res.Realigned)
			status.ok("Merged", "%s", target)
			fmt.Fprintf(out, "Run ID: %s\n", runID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&studyKind, "study", "s", "", "Study kind, as listed by playmate studies")
	cmd.Flags().StringVar(&sourcePath, "source", "", "Completed intake OPF file")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Blank study template OPF file")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: paths.output_dir or the source directory)")
	return cmd
}

// combinedDropped lists the lines dropped from both inputs, source first.
func combinedDropped(docs ...*loadedDocument) []opf.Diagnostic {
	parts := make([][]opf.Diagnostic, 0, len(docs))
	for _, d := range docs {
		parts = append(parts, d.dropped)
	}
	return concatSlices(parts...)
}
