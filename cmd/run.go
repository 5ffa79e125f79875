package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrvstr/drp/internal/adapters/tui"
	"github.com/hrvstr/drp/internal/application"
	"github.com/hrvstr/drp/internal/ports"
)

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive presence form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := app.settings.Get(cmd.Context())
			if err != nil {
				return err
			}

			session := application.NewSession(app.transport, ports.SystemClock{}, settings.Form)

			if settings.Autoconnect && settings.Form.ClientID != "" {
				if err := session.Connect(cmd.Context()); err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "autoconnect: %v\n", err)
				} else if err := session.Update(cmd.Context()); err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "autoconnect push: %v\n", err)
				}
			}

			defer func() {
				if session.Connected() {
					_ = session.Disconnect()
				}
			}()

			return tui.Run(session, app.repo, settings)
		},
	}
}
