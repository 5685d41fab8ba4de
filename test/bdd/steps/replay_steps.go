package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	"gorm.io/gorm"

	"github.com/cmdrwatch/cmdrwatch/internal/adapters/journal"
	"github.com/cmdrwatch/cmdrwatch/internal/adapters/persistence"
	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking/commands"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
	"github.com/cmdrwatch/cmdrwatch/internal/infrastructure/database"
)

type replayContext struct {
	db      *gorm.DB
	repo    *persistence.GormCommanderRepository
	current *commander.Commander
}

func (rc *replayContext) reset() error {
	if rc.db != nil {
		_ = database.Close(rc.db)
	}
	rc.db = nil
	rc.repo = nil
	rc.current = nil
	return nil
}

func InitializeReplayScenario(ctx *godog.ScenarioContext) {
	rc := &replayContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, rc.reset()
	})

	ctx.Step(`^the database is initialized$`, rc.theDatabaseIsInitialized)
	ctx.Step(`^the journal lines are applied:$`, rc.theJournalLinesAreApplied)
	ctx.Step(`^the persisted commander "([^"]*)" should have ship "([^"]*)"$`, rc.thePersistedCommanderShouldHaveShip)
	ctx.Step(`^the persisted commander "([^"]*)" should be at "([^"]*)"$`, rc.thePersistedCommanderShouldBeAt)
	ctx.Step(`^the persisted commander "([^"]*)" should be in a bad neighborhood$`, rc.thePersistedCommanderShouldBeInABadNeighborhood)
	ctx.Step(`^the persisted commander "([^"]*)" should not be in a bad neighborhood$`, rc.thePersistedCommanderShouldNotBeInABadNeighborhood)
	ctx.Step(`^the persisted commander "([^"]*)" should be in open play$`, rc.thePersistedCommanderShouldBeInOpenPlay)
	ctx.Step(`^the persisted commander "([^"]*)" should have wing members:$`, rc.thePersistedCommanderShouldHaveWingMembers)
}

func (rc *replayContext) theDatabaseIsInitialized() error {
	db, err := database.NewTestConnection()
	if err != nil {
		return fmt.Errorf("failed to initialize test database: %w", err)
	}
	rc.db = db
	rc.repo = persistence.NewGormCommanderRepository(db)
	return nil
}

func (rc *replayContext) theJournalLinesAreApplied(table *godog.Table) error {
	if rc.repo == nil {
		return fmt.Errorf("database not initialized")
	}

	ctx := context.Background()
	discover := commands.NewDiscoverCommanderHandler(rc.repo)
	apply := commands.NewApplyEventHandler(rc.repo)

	for _, row := range table.Rows[1:] {
		line := getCellValueFromTable(table, row, "line")
		event, err := journal.ParseEvent([]byte(line))
		if err != nil {
			return fmt.Errorf("failed to parse journal line %q: %w", line, err)
		}

		if event.Name == journal.EventLoadGame {
			var payload journal.LoadGameEvent
			if err := event.Decode(&payload); err != nil {
				return err
			}
			discovered, err := discover.Handle(ctx, &commands.DiscoverCommanderCommand{Name: payload.Commander})
			if err != nil {
				return err
			}
			rc.current = discovered.Cmdr
		}

		if rc.current == nil {
			return fmt.Errorf("no LoadGame event seen before %s", event.Name)
		}

		if _, err := apply.Handle(ctx, &commands.ApplyEventCommand{Cmdr: rc.current, Event: event}); err != nil {
			return fmt.Errorf("failed to apply %s event: %w", event.Name, err)
		}
	}

	return nil
}

func (rc *replayContext) findPersisted(name string) (*commander.Commander, error) {
	if rc.repo == nil {
		return nil, fmt.Errorf("database not initialized")
	}
	return rc.repo.FindByName(context.Background(), name)
}

func (rc *replayContext) thePersistedCommanderShouldHaveShip(name, expected string) error {
	cmdr, err := rc.findPersisted(name)
	if err != nil {
		return err
	}
	ship, ok := cmdr.Ship()
	if !ok {
		return fmt.Errorf("expected ship %q, but no ship is known", expected)
	}
	if ship != expected {
		return fmt.Errorf("expected ship %q, got %q", expected, ship)
	}
	return nil
}

func (rc *replayContext) thePersistedCommanderShouldBeAt(name, expected string) error {
	cmdr, err := rc.findPersisted(name)
	if err != nil {
		return err
	}
	if actual := cmdr.Location().PrettyPrint(); actual != expected {
		return fmt.Errorf("expected location %q, got %q", expected, actual)
	}
	return nil
}

func (rc *replayContext) thePersistedCommanderShouldBeInABadNeighborhood(name string) error {
	cmdr, err := rc.findPersisted(name)
	if err != nil {
		return err
	}
	if !cmdr.InBadNeighborhood() {
		return fmt.Errorf("expected %s to be in a bad neighborhood", name)
	}
	return nil
}

func (rc *replayContext) thePersistedCommanderShouldNotBeInABadNeighborhood(name string) error {
	cmdr, err := rc.findPersisted(name)
	if err != nil {
		return err
	}
	if cmdr.InBadNeighborhood() {
		return fmt.Errorf("expected %s not to be in a bad neighborhood", name)
	}
	return nil
}

func (rc *replayContext) thePersistedCommanderShouldBeInOpenPlay(name string) error {
	cmdr, err := rc.findPersisted(name)
	if err != nil {
		return err
	}
	if !cmdr.InOpen() {
		return fmt.Errorf("expected %s to be in open play, mode is %q", name, cmdr.GameMode())
	}
	return nil
}

func (rc *replayContext) thePersistedCommanderShouldHaveWingMembers(name string, table *godog.Table) error {
	cmdr, err := rc.findPersisted(name)
	if err != nil {
		return err
	}
	expected := tableColumn(table, "name")
	actual := cmdr.Wing()
	if strings.Join(actual, ",") != strings.Join(expected, ",") {
		return fmt.Errorf("expected wing %v, got %v", expected, actual)
	}
	return nil
}
