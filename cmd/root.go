package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "drp",
		Short:         "Discord Rich Presence (drp): compose and publish a custom presence",
		Long:          "drp composes a Discord Rich Presence activity (status lines, images, buttons, party, timestamp) and publishes it to the locally running Discord client over its IPC socket. Field values persist between runs and named presets can be merged in.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newPushCmd(app),
		newSetCmd(app),
		newStatusCmd(app),
		newPresetCmd(app),
	)

	return rootCmd
}
