package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	statusadapter "github.com/hrvstr/drp/internal/adapters/render/status"
	"github.com/hrvstr/drp/internal/application"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the stored presence form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := app.settings.Get(cmd.Context())
			if err != nil {
				return err
			}

			snapshot := application.StatusFromSettings(settings)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snapshot)
			}

			rendered, err := app.statusRenderer(snapshot, statusadapter.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the snapshot as JSON")

	return cmd
}
