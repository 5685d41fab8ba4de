package commander_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
)

func TestBounty_PrettyPrint_Boundaries(t *testing.T) {
	cases := []struct {
		value    int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0 k"},
		{9999, "10.0 k"},
		{10000, "10 k"},
		{999999, "999 k"},
		{1000000, "1.0 m"}, // exactly one million renders with one decimal
		{1000001, "1.0 m"},
		{9999999, "10.0 m"},
		{10000000, "10 m"},
		{1000000000, "1.0 b"},
		{9999999999, "10.0 b"},
		{10000000000, "10 b"},
		{42000000000, "42 b"},
	}

	for _, tc := range cases {
		bounty, err := commander.NewBounty(tc.value, 0)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, bounty.PrettyPrint(), "value %d", tc.value)
	}
}

func TestBounty_IsSignificant(t *testing.T) {
	cases := []struct {
		value       int64
		threshold   int64
		significant bool
	}{
		{0, 10000, false},
		{9999, 10000, false},
		{10000, 10000, true},
		{500000, 10000, true},
		{0, 0, true},
	}

	for _, tc := range cases {
		bounty, err := commander.NewBounty(tc.value, tc.threshold)
		require.NoError(t, err)
		assert.Equal(t, tc.significant, bounty.IsSignificant(), "value %d threshold %d", tc.value, tc.threshold)
	}
}

func TestBounty_RejectsNegativeValues(t *testing.T) {
	_, err := commander.NewBounty(-1, 0)
	assert.Error(t, err)

	_, err = commander.NewBounty(100, -1)
	assert.Error(t, err)
}
