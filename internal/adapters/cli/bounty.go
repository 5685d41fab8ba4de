package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking/queries"
	"github.com/cmdrwatch/cmdrwatch/internal/infrastructure/config"
)

// NewBountyCommand creates the bounty command
func NewBountyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bounty <credits>",
		Short: "Format a bounty value and check its significance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid bounty value %q: %w", args[0], err)
			}

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			handler := queries.NewAssessBountyHandler(cfg.Intel.BountyThreshold)
			assessment, err := handler.Handle(cmd.Context(), &queries.AssessBountyQuery{Value: value})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s cr\n", assessment.Label)
			if assessment.Significant {
				fmt.Fprintf(out, "significant (threshold %d cr)\n", cfg.Intel.BountyThreshold)
			} else {
				fmt.Fprintf(out, "not significant (threshold %d cr)\n", cfg.Intel.BountyThreshold)
			}
			return nil
		},
	}
}
