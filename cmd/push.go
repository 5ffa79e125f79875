package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hrvstr/drp/internal/application"
	"github.com/hrvstr/drp/internal/domain"
	"github.com/hrvstr/drp/internal/ports"
)

func newPushCmd(app *app) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Connect and publish the stored presence",
		Long:  "push connects to the local Discord client, publishes the stored form, and holds the connection open until interrupted; the presence disappears when the connection closes. Pass --once to publish and exit immediately.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := app.settings.Get(cmd.Context())
			if err != nil {
				return err
			}

			return pushPresence(cmd, app, settings, once)
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "publish and exit immediately instead of holding the connection")

	return cmd
}

func pushPresence(cmd *cobra.Command, app *app, settings domain.Settings, once bool) error {
	session := application.NewSession(app.transport, ports.SystemClock{}, settings.Form)

	err := runConnectSpinner(cmd.Context(), cmd.OutOrStdout(), "Connecting to Discord...", session.Connect)
	if err != nil {
		return err
	}
	if err := session.Update(cmd.Context()); err != nil {
		_ = session.Disconnect()
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "presence published")

	if !once {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "holding connection open, interrupt to stop")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
	}

	return session.Disconnect()
}
