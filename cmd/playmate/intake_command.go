package main

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"playmate/internal/fileutil"
	"playmate/internal/intake"
	"playmate/internal/journal"
	"playmate/internal/logging"
)

func newIntakeCommand(ctx *commandContext) *cobra.Command {
	var templatePath, id, birthdate, testDate, lang, name, outDir string

	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Stamp participant identity into an intake template's PLAY_ID column",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(templatePath) == "" {
				return errors.New("--template is required")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			participant, err := intake.ParseParticipant(id, birthdate, testDate, lang, cfg.Intake.DateLayout)
			if err != nil {
				return err
			}
			template, err := ctx.readDocument(templatePath)
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			runID := journal.NewRunID()
			runCtx := logging.WithRunID(context.Background(), runID)
			logger = logging.WithContext(runCtx, logging.NewComponentLogger(logger, "intake"))
			entry := journal.Entry{
				RunID:        runID,
				Operation:    journal.OperationIntake,
				TemplatePath: template.path,
				DroppedLines: len(template.dropped),
			}
			fail := func(err error) error {
				entry.Status = journal.StatusFailed
				entry.ErrorMessage = err.Error()
				ctx.recordRun(runCtx, entry)
				return err
			}

			doc := template.doc
			cell, err := intake.Stamp(doc, participant, cfg.Intake.DateLayout)
			if err != nil {
				return fail(err)
			}
			doc.Name = strings.TrimSpace(name)
			if doc.Name == "" {
				doc.Name = intake.DocumentName(participant)
			}
			dir, err := ctx.outputDir(outDir, template.path)
			if err != nil {
				return fail(err)
			}
			target := fileutil.OutputPath(dir, doc.Name)
			entry.OutputPath = target
			if err := fileutil.WriteOPF(target, doc); err != nil {
				return fail(err)
			}
			ctx.recordRun(runCtx, entry)
			logger.Info("stamped intake file",
				logging.Document(doc.Name),
				logging.String("cell", cell.String()),
				logging.String("output", target))

			status := newStatusWriter(cmd.OutOrStdout())
			status.dropped(template.dropped)
			status.info("PLAY_ID", "%s", cell)
			status.ok("Written", "%s", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Intake template OPF file")
	cmd.Flags().StringVar(&id, "id", "", "Participant ID (PLAY_ prefix added when missing)")
	cmd.Flags().StringVar(&birthdate, "birthdate", "", "Birthdate (intake.date_layout or YYYY-MM-DD)")
	cmd.Flags().StringVar(&testDate, "test-date", "", "Test date (intake.date_layout or YYYY-MM-DD)")
	cmd.Flags().StringVar(&lang, "language", "", "Session language, e.g. English")
	cmd.Flags().StringVar(&name, "name", "", "Output document name (default: the PLAY_ID)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: paths.output_dir or the template directory)")
	return cmd
}
