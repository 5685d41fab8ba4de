package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cmdrwatch/cmdrwatch/internal/adapters/journal"
	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking/commands"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/shared"
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	var journalFile string
	var fromStart bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the live journal and keep the tracked state current",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			defer app.Close()

			path := journalFile
			if path == "" {
				path, err = newestJournalFile(app.cfg.Journal.Dir)
				if err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", path)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			discover := commands.NewDiscoverCommanderHandler(app.commanderRepo)
			apply := commands.NewApplyEventHandler(app.commanderRepo)
			startSession := commands.NewStartSessionHandler(app.sessionRepo, shared.NewRealClock())

			var cmdr *commander.Commander
			if commanderFlag != "" {
				discovered, err := discover.Handle(ctx, &commands.DiscoverCommanderCommand{Name: commanderFlag})
				if err != nil {
					return err
				}
				cmdr = discovered.Cmdr
			}

			sessionStarted := false
			tailer := journal.NewTailer(path, app.cfg.Journal.PollsPerSecond, !fromStart)
			return tailer.Follow(ctx, func(event *journal.Event) error {
				// The LoadGame event identifies the commander when no flag
				// was given; everything before it is skipped.
				if cmdr == nil {
					if event.Name != journal.EventLoadGame {
						return nil
					}
					var payload journal.LoadGameEvent
					if err := event.Decode(&payload); err != nil {
						return nil
					}
					discovered, err := discover.Handle(ctx, &commands.DiscoverCommanderCommand{Name: payload.Commander})
					if err != nil {
						return err
					}
					cmdr = discovered.Cmdr
				}

				if !sessionStarted {
					if _, err := startSession.Handle(ctx, &commands.StartSessionCommand{
						Commander: cmdr.Name(),
						Source:    "live",
					}); err != nil {
						return err
					}
					sessionStarted = true
				}

				resp, err := apply.Handle(ctx, &commands.ApplyEventCommand{Cmdr: cmdr, Event: event})
				if err != nil {
					if verbose {
						fmt.Fprintf(os.Stderr, "skipping %s event: %v\n", event.Name, err)
					}
					return nil
				}
				if resp.Changed && verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n",
						event.Timestamp, event.Name, cmdr.Location().PrettyPrint())
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&journalFile, "file", "", "Journal file to follow (default: newest in the journal directory)")
	cmd.Flags().BoolVar(&fromStart, "from-start", false, "Replay the file from the beginning before following")

	return cmd
}

// newestJournalFile finds the most recently modified Journal*.log in dir
func newestJournalFile(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "Journal*.log"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no journal files found in %s", dir)
	}

	sort.Slice(matches, func(i, j int) bool {
		fi, errI := os.Stat(matches[i])
		fj, errJ := os.Stat(matches[j])
		if errI != nil || errJ != nil {
			return matches[i] > matches[j]
		}
		return fi.ModTime().After(fj.ModTime())
	})

	return matches[0], nil
}
