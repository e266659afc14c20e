package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"playmate/internal/merge"
)

func newStudiesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "studies",
		Short: "List configured study kinds and their columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := ctx.registry()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderStudies(registry.Studies()))
			return nil
		},
	}
}

func renderStudies(studies []merge.Study) string {
	rows := make([][]string, 0, len(studies))
	for _, s := range studies {
		rows = append(rows, []string{string(s.Kind), s.Suffix, strings.Join(s.Columns, ", ")})
	}
	return renderTable([]tableColumn{leftCol("Kind"), leftCol("Suffix"), wrapCol("Columns")}, rows)
}
