package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPresetCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage named presence presets",
	}

	cmd.AddCommand(
		newPresetListCmd(app),
		newPresetApplyCmd(app),
	)

	return cmd
}

func newPresetListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := app.settings.ListPresets(cmd.Context())
			if err != nil {
				return err
			}

			if len(names) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no presets")
				return nil
			}

			for _, name := range names {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

func newPresetApplyCmd(app *app) *cobra.Command {
	var push bool

	cmd := &cobra.Command{
		Use:   "apply <name>",
		Short: "Merge a preset into the stored form",
		Long:  "apply merges the named preset into the stored form: fields the preset declares overwrite the stored values, everything else is left untouched. The preset is applied exactly once.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.settings.ApplyPreset(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "preset %q applied\n", args[0])

			if push {
				return pushPresence(cmd, app, settings, false)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&push, "push", false, "publish the merged form after applying")

	return cmd
}
