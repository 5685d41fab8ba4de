package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cmdrwatch/cmdrwatch/internal/infrastructure/config"
)

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user preferences",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "set-default <commander>",
		Short: "Set the default commander used when --commander is omitted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}

			if err := handler.SetDefaultCommander(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Default commander set to %s\n", args[0])
			return nil
		},
	})

	return configCmd
}
