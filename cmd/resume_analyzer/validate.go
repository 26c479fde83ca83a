package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/schemas"
)

var validateSchemas = map[string]string{
	"analysis": schemas.AnalysisResultSchema,
	"match":    schemas.MatchResultSchema,
}

func newValidateCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a saved analysis or match JSON file",
		Long:  "Checks a JSON file written by analyze --out or match --out against the embedded result schema.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaName, ok := validateSchemas[kind]
			if !ok {
				return fmt.Errorf("unknown --schema %q (want analysis or match)", kind)
			}
			if err := schemas.ValidateFile(schemaName, args[0]); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "schema", "analysis", "result kind: analysis or match")
	return cmd
}
