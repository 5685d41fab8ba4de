package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmdrwatch/cmdrwatch/internal/adapters/journal"
	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking/commands"
	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking/queries"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/shared"
)

// NewReplayCommand creates the replay command
func NewReplayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <journal-file>",
		Short: "Replay a journal file through the tracker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open journal file: %w", err)
			}
			defer file.Close()

			events, parseFails, err := journal.ReadAll(file)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				return fmt.Errorf("no parseable events in %s", path)
			}

			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			name := commanderFlag
			if name == "" {
				name = commanderFromEvents(events)
			}
			if name == "" {
				return fmt.Errorf("no LoadGame event in %s: pass --commander", path)
			}

			applied, err := runReplay(cmd.Context(), app, name, path, events)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Replayed %d events (%d applied, %d unparseable lines)\n",
				len(events), applied, parseFails)

			handler := queries.NewGetStatusHandler(app.commanderRepo)
			status, err := handler.Handle(cmd.Context(), &queries.GetStatusQuery{Name: name})
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}
}

func runReplay(ctx context.Context, app *appContext, name, source string, events []*journal.Event) (int, error) {
	discover := commands.NewDiscoverCommanderHandler(app.commanderRepo)
	discovered, err := discover.Handle(ctx, &commands.DiscoverCommanderCommand{Name: name})
	if err != nil {
		return 0, err
	}

	startSession := commands.NewStartSessionHandler(app.sessionRepo, shared.NewRealClock())
	started, err := startSession.Handle(ctx, &commands.StartSessionCommand{Commander: name, Source: source})
	if err != nil {
		return 0, err
	}

	apply := commands.NewApplyEventHandler(app.commanderRepo)
	applied := 0
	for _, event := range events {
		resp, err := apply.Handle(ctx, &commands.ApplyEventCommand{Cmdr: discovered.Cmdr, Event: event})
		if err != nil {
			// A single bad event should not abort the whole replay
			if verbose {
				fmt.Fprintf(os.Stderr, "skipping %s event: %v\n", event.Name, err)
			}
			continue
		}
		if resp.Changed {
			applied++
		}
	}

	started.Session.Events = applied
	if err := app.sessionRepo.Save(ctx, started.Session); err != nil {
		return applied, err
	}

	return applied, nil
}

// commanderFromEvents finds the commander name announced by the first
// LoadGame event
func commanderFromEvents(events []*journal.Event) string {
	for _, event := range events {
		if event.Name != journal.EventLoadGame {
			continue
		}
		var payload journal.LoadGameEvent
		if err := event.Decode(&payload); err != nil {
			continue
		}
		return payload.Commander
	}
	return ""
}
