package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
)

type commanderContext struct {
	cmdr      *commander.Commander
	applied   bool
	updateErr error
}

func (cc *commanderContext) reset() {
	cc.cmdr = nil
	cc.applied = false
	cc.updateErr = nil
}

func InitializeCommanderScenario(ctx *godog.ScenarioContext) {
	cc := &commanderContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a commander named "([^"]*)"$`, cc.aCommanderNamed)
	ctx.Step(`^the commander plays in "([^"]*)" mode$`, cc.theCommanderPlaysInMode)
	ctx.Step(`^the commander wings up with:$`, cc.theCommanderWingsUpWith)

	// When steps
	ctx.Step(`^the commander is killed$`, cc.theCommanderIsKilled)
	ctx.Step(`^the commander is resurrected$`, cc.theCommanderIsResurrected)
	ctx.Step(`^a fresh session begins$`, cc.aFreshSessionBegins)
	ctx.Step(`^the journal announces ship "([^"]*)" at "([^"]*)"$`, cc.theJournalAnnouncesShipAt)
	ctx.Step(`^the journal places the commander in system "([^"]*)" at "([^"]*)"$`, cc.theJournalPlacesTheCommanderInSystemAt)
	ctx.Step(`^the journal places the commander at "([^"]*)" at "([^"]*)"$`, cc.theJournalPlacesTheCommanderAtAt)

	// Then steps
	ctx.Step(`^the game mode should be unset$`, cc.theGameModeShouldBeUnset)
	ctx.Step(`^the game mode should be "([^"]*)"$`, cc.theGameModeShouldBe)
	ctx.Step(`^the wing should be empty$`, cc.theWingShouldBeEmpty)
	ctx.Step(`^the wing should contain exactly:$`, cc.theWingShouldContainExactly)
	ctx.Step(`^the commander state should be tracked from birth$`, cc.theCommanderStateShouldBeTrackedFromBirth)
	ctx.Step(`^the update should be applied$`, cc.theUpdateShouldBeApplied)
	ctx.Step(`^the update should not be applied$`, cc.theUpdateShouldNotBeApplied)
	ctx.Step(`^the update should fail$`, cc.theUpdateShouldFail)
	ctx.Step(`^the believed ship should be "([^"]*)"$`, cc.theBelievedShipShouldBe)
	ctx.Step(`^the believed timestamp should be "([^"]*)"$`, cc.theBelievedTimestampShouldBe)
	ctx.Step(`^the pretty printed location should be "([^"]*)"$`, cc.thePrettyPrintedLocationShouldBe)
}

func (cc *commanderContext) aCommanderNamed(name string) error {
	cc.cmdr = commander.NewCommander(name)
	return nil
}

func (cc *commanderContext) theCommanderPlaysInMode(mode string) error {
	if cc.cmdr == nil {
		return fmt.Errorf("no commander available")
	}
	cc.cmdr.SetGameMode(commander.GameMode(mode))
	return nil
}

func (cc *commanderContext) theCommanderWingsUpWith(table *godog.Table) error {
	if cc.cmdr == nil {
		return fmt.Errorf("no commander available")
	}
	cc.cmdr.JoinWing(tableColumn(table, "name"))
	return nil
}

func (cc *commanderContext) theCommanderIsKilled() error {
	if cc.cmdr == nil {
		return fmt.Errorf("no commander available")
	}
	cc.cmdr.Killed()
	return nil
}

func (cc *commanderContext) theCommanderIsResurrected() error {
	if cc.cmdr == nil {
		return fmt.Errorf("no commander available")
	}
	cc.cmdr.Resurrect()
	return nil
}

func (cc *commanderContext) aFreshSessionBegins() error {
	if cc.cmdr == nil {
		return fmt.Errorf("no commander available")
	}
	cc.cmdr.Inception()
	return nil
}

func (cc *commanderContext) theJournalAnnouncesShipAt(ship, timestamp string) error {
	if cc.cmdr == nil {
		return fmt.Errorf("no commander available")
	}
	cc.applied, cc.updateErr = cc.cmdr.UpdateShipIfObsolete(ship, timestamp)
	return nil
}

func (cc *commanderContext) theJournalPlacesTheCommanderInSystemAt(system, timestamp string) error {
	if cc.cmdr == nil {
		return fmt.Errorf("no commander available")
	}
	cc.applied, cc.updateErr = cc.cmdr.UpdateStarSystemIfObsolete(system, timestamp)
	return nil
}

func (cc *commanderContext) theJournalPlacesTheCommanderAtAt(place, timestamp string) error {
	if cc.cmdr == nil {
		return fmt.Errorf("no commander available")
	}
	cc.applied, cc.updateErr = cc.cmdr.UpdatePlaceIfObsolete(place, timestamp)
	return nil
}

func (cc *commanderContext) theGameModeShouldBeUnset() error {
	if cc.cmdr.GameMode() != commander.GameModeUnset {
		return fmt.Errorf("expected unset game mode, got %q", cc.cmdr.GameMode())
	}
	return nil
}

func (cc *commanderContext) theGameModeShouldBe(expected string) error {
	if cc.cmdr.GameMode() != commander.GameMode(expected) {
		return fmt.Errorf("expected game mode %q, got %q", expected, cc.cmdr.GameMode())
	}
	return nil
}

func (cc *commanderContext) theWingShouldBeEmpty() error {
	if wing := cc.cmdr.Wing(); len(wing) != 0 {
		return fmt.Errorf("expected empty wing, got %v", wing)
	}
	return nil
}

func (cc *commanderContext) theWingShouldContainExactly(table *godog.Table) error {
	expected := tableColumn(table, "name")
	actual := cc.cmdr.Wing()
	if strings.Join(actual, ",") != strings.Join(expected, ",") {
		return fmt.Errorf("expected wing %v, got %v", expected, actual)
	}
	return nil
}

func (cc *commanderContext) theCommanderStateShouldBeTrackedFromBirth() error {
	if !cc.cmdr.FromBirth() {
		return fmt.Errorf("expected the commander state to be tracked from birth")
	}
	return nil
}

func (cc *commanderContext) theUpdateShouldBeApplied() error {
	if cc.updateErr != nil {
		return fmt.Errorf("update failed: %v", cc.updateErr)
	}
	if !cc.applied {
		return fmt.Errorf("expected the update to be applied, but it was not")
	}
	return nil
}

func (cc *commanderContext) theUpdateShouldNotBeApplied() error {
	if cc.updateErr != nil {
		return fmt.Errorf("update failed: %v", cc.updateErr)
	}
	if cc.applied {
		return fmt.Errorf("expected the update not to be applied, but it was")
	}
	return nil
}

func (cc *commanderContext) theUpdateShouldFail() error {
	if cc.updateErr == nil {
		return fmt.Errorf("expected the update to fail, but it succeeded")
	}
	return nil
}

func (cc *commanderContext) theBelievedShipShouldBe(expected string) error {
	ship, ok := cc.cmdr.Ship()
	if !ok {
		return fmt.Errorf("expected ship %q, but no ship is known", expected)
	}
	if ship != expected {
		return fmt.Errorf("expected ship %q, got %q", expected, ship)
	}
	return nil
}

func (cc *commanderContext) theBelievedTimestampShouldBe(expected string) error {
	if actual := cc.cmdr.Timestamp(); actual != expected {
		return fmt.Errorf("expected timestamp %q, got %q", expected, actual)
	}
	return nil
}

func (cc *commanderContext) thePrettyPrintedLocationShouldBe(expected string) error {
	if actual := cc.cmdr.Location().PrettyPrint(); actual != expected {
		return fmt.Errorf("expected location %q, got %q", expected, actual)
	}
	return nil
}
