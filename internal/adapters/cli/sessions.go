package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSessionsCommand creates the sessions command
func NewSessionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List the tracking sessions recorded for a commander",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveCommander()
			if err != nil {
				return err
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			sessions, err := app.sessionRepo.ListByCommander(cmd.Context(), name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintf(out, "No sessions recorded for %s\n", name)
				return nil
			}

			for _, session := range sessions {
				fmt.Fprintf(out, "%s  %s  %d events  %s\n",
					session.StartedAt.Format("2006-01-02 15:04:05"),
					session.ID,
					session.Events,
					session.Source)
			}
			return nil
		},
	}
}
