package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hrvstr/drp/internal/domain"
)

const dateLayout = "2006-01-02"

func newSetCmd(app *app) *cobra.Command {
	var (
		clientID    string
		details     string
		state       string
		partySize   int
		partyMax    int
		timestamp   string
		date        string
		largeKey    string
		largeText   string
		smallKey    string
		smallText   string
		btn1Label   string
		btn1URL     string
		btn2Label   string
		btn2URL     string
		autoconnect bool
		darkMode    bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Edit stored presence fields",
		Long:  "set updates individual fields of the stored presence form. Only flags you pass are changed; everything else keeps its value.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()

			var mode domain.TimestampMode
			if flags.Changed("timestamp") {
				mode = domain.TimestampMode(timestamp)
				if !mode.Valid() {
					return fmt.Errorf("unknown timestamp mode %q (valid: %v)", timestamp, domain.TimestampModes())
				}
			}

			var customDate time.Time
			if flags.Changed("date") {
				parsed, err := time.Parse(dateLayout, date)
				if err != nil {
					return fmt.Errorf("parse date %q: %w", date, err)
				}
				customDate = parsed
			}

			_, err := app.settings.Apply(cmd.Context(), func(s *domain.Settings) {
				if flags.Changed("client-id") {
					s.Form.ClientID = domain.ClientID(clientID)
				}
				if flags.Changed("details") {
					s.Form.Details = details
				}
				if flags.Changed("state") {
					s.Form.State = state
				}
				if flags.Changed("party") {
					s.Form.PartySize = partySize
				}
				if flags.Changed("party-max") {
					s.Form.PartyMax = partyMax
				}
				if flags.Changed("timestamp") {
					s.Form.TimestampMode = mode
				}
				if flags.Changed("date") {
					s.Form.CustomDate = customDate
				}
				if flags.Changed("large-image") {
					s.Form.LargeImage.Key = largeKey
				}
				if flags.Changed("large-text") {
					s.Form.LargeImage.Text = largeText
				}
				if flags.Changed("small-image") {
					s.Form.SmallImage.Key = smallKey
				}
				if flags.Changed("small-text") {
					s.Form.SmallImage.Text = smallText
				}
				if flags.Changed("button1-label") {
					s.Form.Buttons[0].Label = btn1Label
				}
				if flags.Changed("button1-url") {
					s.Form.Buttons[0].URL = btn1URL
				}
				if flags.Changed("button2-label") {
					s.Form.Buttons[1].Label = btn2Label
				}
				if flags.Changed("button2-url") {
					s.Form.Buttons[1].URL = btn2URL
				}
				if flags.Changed("autoconnect") {
					s.Autoconnect = autoconnect
				}
				if flags.Changed("darkmode") {
					s.DarkMode = darkMode
				}
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "settings updated")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&clientID, "client-id", "", "Discord application id the presence is attributed to")
	flags.StringVar(&details, "details", "", "first status line")
	flags.StringVar(&state, "state", "", "second status line")
	flags.IntVar(&partySize, "party", 0, "current party size (0 disables the party block)")
	flags.IntVar(&partyMax, "party-max", 1, "party capacity")
	flags.StringVar(&timestamp, "timestamp", "", "timestamp mode (none, day-start, custom-date, since-start, since-update)")
	flags.StringVar(&date, "date", "", "custom date for the custom-date timestamp mode (YYYY-MM-DD)")
	flags.StringVar(&largeKey, "large-image", "", "large image asset key")
	flags.StringVar(&largeText, "large-text", "", "large image hover text")
	flags.StringVar(&smallKey, "small-image", "", "small image asset key")
	flags.StringVar(&smallText, "small-text", "", "small image hover text")
	flags.StringVar(&btn1Label, "button1-label", "", "first button label")
	flags.StringVar(&btn1URL, "button1-url", "", "first button URL")
	flags.StringVar(&btn2Label, "button2-label", "", "second button label")
	flags.StringVar(&btn2URL, "button2-url", "", "second button URL")
	flags.BoolVar(&autoconnect, "autoconnect", false, "connect and publish on startup of the interactive form")
	flags.BoolVar(&darkMode, "darkmode", false, "render with the dark color palette")

	return cmd
}
