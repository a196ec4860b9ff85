package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/friber/move-to-go/internal/importer"
	"github.com/friber/move-to-go/internal/service"
)

func (a *app) load(cmd *cobra.Command, path string) (*importer.Result, error) {
	result, err := importer.Load(path)
	if err != nil {
		return nil, err
	}
	for _, w := range result.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}
	return result, nil
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate every entity of an import document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			reports := service.ValidateAll(result.Entities())
			invalid := 0
			for _, r := range reports {
				if !r.Valid {
					invalid++
				}
			}

			if a.jsonOutput() {
				if err := printJSON(cmd.OutOrStdout(), reports); err != nil {
					return err
				}
			} else {
				tw := table.NewWriter()
				tw.SetOutputMirror(cmd.OutOrStdout())
				tw.AppendHeader(table.Row{"Type", "Integration ID", "Result"})
				for _, r := range reports {
					res := "ok"
					if !r.Valid {
						res = r.Message
					}
					tw.AppendRow(table.Row{r.TypeName, r.IntegrationID, res})
				}
				tw.Render()
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d entities are invalid", invalid, len(reports))
			}
			return nil
		},
	}
}

func (a *app) serializeCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "serialize <file>",
		Short: "Print the schema payloads of an import document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			payloads, err := service.SerializeAll(result.Entities())
			if err != nil {
				return err
			}

			if output == "" {
				return printJSON(cmd.OutOrStdout(), payloads)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			return printJSON(f, payloads)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}
