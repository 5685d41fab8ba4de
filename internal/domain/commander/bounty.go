package commander

import (
	"fmt"

	"github.com/cmdrwatch/cmdrwatch/internal/domain/shared"
)

// Bounty is an immutable value object wrapping a bounty amount in credits
// together with the externally supplied significance threshold. The
// threshold is a policy value sourced from configuration, never computed
// here.
type Bounty struct {
	value     int64
	threshold int64
}

// NewBounty creates a Bounty with validation
func NewBounty(value, threshold int64) (*Bounty, error) {
	if value < 0 {
		return nil, shared.NewValidationError("value", "bounty cannot be negative")
	}
	if threshold < 0 {
		return nil, shared.NewValidationError("threshold", "threshold cannot be negative")
	}

	return &Bounty{value: value, threshold: threshold}, nil
}

// Value returns the raw bounty amount in credits
func (b *Bounty) Value() int64 {
	return b.value
}

// IsSignificant reports whether the bounty meets the configured threshold
func (b *Bounty) IsSignificant() bool {
	return b.value >= b.threshold
}

// PrettyPrint renders the bounty as a short human-scale label
// (e.g. "999", "1.0 k", "10 k", "1.0 m", "10 b").
//
// The one-decimal millions tier starts strictly above 1,000,000; exactly
// 1,000,000 is handled separately and renders "1.0 m", not "1000 k".
func (b *Bounty) PrettyPrint() string {
	switch {
	case b.value >= 10000000000:
		return fmt.Sprintf("%d b", b.value/1000000000)
	case b.value >= 1000000000:
		return fmt.Sprintf("%.1f b", float64(b.value)/1000000000.0)
	case b.value >= 10000000:
		return fmt.Sprintf("%d m", b.value/1000000)
	case b.value > 1000000:
		return fmt.Sprintf("%.1f m", float64(b.value)/1000000.0)
	case b.value == 1000000:
		return fmt.Sprintf("%.1f m", float64(b.value)/1000000.0)
	case b.value >= 10000:
		return fmt.Sprintf("%d k", b.value/1000)
	case b.value >= 1000:
		return fmt.Sprintf("%.1f k", float64(b.value)/1000.0)
	default:
		return fmt.Sprintf("%d", b.value)
	}
}

func (b *Bounty) String() string {
	return fmt.Sprintf("Bounty(%d cr)", b.value)
}
