package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking/queries"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the believed state of a tracked commander",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			if all {
				handler := queries.NewListCommandersHandler(app.commanderRepo)
				statuses, err := handler.Handle(cmd.Context(), &queries.ListCommandersQuery{})
				if err != nil {
					return err
				}
				if len(statuses) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No commanders tracked yet")
					return nil
				}
				for _, status := range statuses {
					printStatus(cmd, status)
				}
				return nil
			}

			name, err := resolveCommander()
			if err != nil {
				return err
			}

			handler := queries.NewGetStatusHandler(app.commanderRepo)
			status, err := handler.Handle(cmd.Context(), &queries.GetStatusQuery{Name: name})
			if err != nil {
				return err
			}

			printStatus(cmd, status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show every tracked commander")

	return cmd
}

func printStatus(cmd *cobra.Command, status *queries.CommanderStatus) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "CMDR %s\n", status.Name)
	fmt.Fprintf(out, "  Ship:      %s\n", status.Ship)
	fmt.Fprintf(out, "  Location:  %s\n", emptyAs(status.Location, "Unknown"))
	fmt.Fprintf(out, "  Mode:      %s\n", emptyAs(status.GameMode, "Unknown"))
	fmt.Fprintf(out, "  Wing:      %s\n", membersOrNone(status.Wing))
	fmt.Fprintf(out, "  Friends:   %s\n", membersOrNone(status.Friends))
	fmt.Fprintf(out, "  Last seen: %s\n", status.Timestamp)

	if status.BadNeighborhood {
		fmt.Fprintln(out, "  ! anarchy or lawless system")
	}
	if status.PartialStatus {
		fmt.Fprintln(out, "  ~ status incomplete, more events needed")
	}
}

func membersOrNone(members []string) string {
	if len(members) == 0 {
		return "none"
	}
	return strings.Join(members, ", ")
}

func emptyAs(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
