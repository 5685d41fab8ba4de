package commander_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
)

func strPtr(s string) *string {
	return &s
}

func TestCanonicalize_KnownShips(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"sidewinder", "Sidewinder"},
		{"SIDEWINDER", "Sidewinder"},
		{"CobraMkIII", "Cobra Mk III"},
		{"ferdelance", "Fer-de-Lance"},
		{"viper_mkiv", "Viper Mk IV"},
		{"type9_military", "Type-10 Defender"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, commander.Canonicalize(strPtr(tc.input)), "input %q", tc.input)
	}
}

func TestCanonicalize_UnknownShipLowercased(t *testing.T) {
	assert.Equal(t, "mystery barge", commander.Canonicalize(strPtr("Mystery Barge")))
}

func TestCanonicalize_UnsetVehicle(t *testing.T) {
	assert.Equal(t, "Unknown", commander.Canonicalize(nil))
}

func TestLoadShipNames_RejectedAfterTableInstalled(t *testing.T) {
	// Force the fallback table into place, as a too-early Canonicalize would
	commander.Canonicalize(strPtr("sidewinder"))

	path := filepath.Join(t.TempDir(), "shipnames.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sidewinder":"Winder"}`), 0644))

	err := commander.LoadShipNames(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, commander.ErrShipNamesInstalled)

	// The already-installed table stays in effect
	assert.Equal(t, "Sidewinder", commander.Canonicalize(strPtr("sidewinder")))
}

func TestCanonicalize_Idempotent(t *testing.T) {
	inputs := []string{
		"sidewinder",
		"Sidewinder",
		"CobraMkIII",
		"Type-6 Transporter",
		"Mystery Barge",
		"",
	}

	for _, input := range inputs {
		once := commander.Canonicalize(strPtr(input))
		twice := commander.Canonicalize(strPtr(once))
		assert.Equal(t, once, twice, "input %q", input)
	}
}
