package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking/queries"
)

type bountyContext struct {
	threshold  int64
	assessment *queries.BountyAssessment
	err        error
}

func (bc *bountyContext) reset() {
	bc.threshold = 0
	bc.assessment = nil
	bc.err = nil
}

func InitializeBountyScenario(ctx *godog.ScenarioContext) {
	bc := &bountyContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		bc.reset()
		return ctx, nil
	})

	ctx.Step(`^a bounty significance threshold of (\d+) credits$`, bc.aBountySignificanceThresholdOfCredits)
	ctx.Step(`^I assess a bounty of (-?\d+) credits$`, bc.iAssessABountyOfCredits)
	ctx.Step(`^the formatted label should be "([^"]*)"$`, bc.theFormattedLabelShouldBe)
	ctx.Step(`^the bounty should be reported as significant$`, bc.theBountyShouldBeSignificant)
	ctx.Step(`^the bounty should be reported as not significant$`, bc.theBountyShouldNotBeSignificant)
	ctx.Step(`^the assessment should fail$`, bc.theAssessmentShouldFail)
}

func (bc *bountyContext) aBountySignificanceThresholdOfCredits(threshold int64) error {
	bc.threshold = threshold
	return nil
}

func (bc *bountyContext) iAssessABountyOfCredits(value int64) error {
	handler := queries.NewAssessBountyHandler(bc.threshold)
	bc.assessment, bc.err = handler.Handle(context.Background(), &queries.AssessBountyQuery{Value: value})
	return nil
}

func (bc *bountyContext) theFormattedLabelShouldBe(expected string) error {
	if bc.err != nil {
		return fmt.Errorf("assessment failed: %v", bc.err)
	}
	if bc.assessment.Label != expected {
		return fmt.Errorf("expected label %q, got %q", expected, bc.assessment.Label)
	}
	return nil
}

func (bc *bountyContext) theBountyShouldBeSignificant() error {
	if bc.err != nil {
		return fmt.Errorf("assessment failed: %v", bc.err)
	}
	if !bc.assessment.Significant {
		return fmt.Errorf("expected bounty of %d to be significant", bc.assessment.Value)
	}
	return nil
}

func (bc *bountyContext) theBountyShouldNotBeSignificant() error {
	if bc.err != nil {
		return fmt.Errorf("assessment failed: %v", bc.err)
	}
	if bc.assessment.Significant {
		return fmt.Errorf("expected bounty of %d not to be significant", bc.assessment.Value)
	}
	return nil
}

func (bc *bountyContext) theAssessmentShouldFail() error {
	if bc.err == nil {
		return fmt.Errorf("expected the assessment to fail, but it succeeded")
	}
	return nil
}
