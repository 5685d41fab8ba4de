package commander

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// ErrShipNamesInstalled signals that a ship-name table was already installed
// (by an earlier LoadShipNames call or by the first Canonicalize falling back
// to the built-in table), so the configured resource cannot take effect.
var ErrShipNamesInstalled = errors.New("ship name table already installed")

// UnknownVehicle is the label returned when no vehicle has been observed
const UnknownVehicle = "Unknown"

// canonicalShipNames maps lower-cased journal ship identifiers to their
// canonical display names. Installed once before first use and read-only
// afterwards, so it may be shared across concurrent readers.
var (
	canonicalShipNames map[string]string
	shipNamesOnce      sync.Once
)

// LoadShipNames loads the canonical ship-name table from a JSON resource.
// Must be called before the first Canonicalize call; when it is never
// called (or called with an empty path) the built-in table is used.
// Returns ErrShipNamesInstalled when a table is already in place, so a
// misordered initialization does not silently drop the configured resource.
func LoadShipNames(path string) error {
	if path == "" {
		shipNamesOnce.Do(func() { canonicalShipNames = buildTable(defaultShipNames) })
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read ship names table: %w", err)
	}

	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("failed to parse ship names table: %w", err)
	}

	installed := false
	shipNamesOnce.Do(func() {
		canonicalShipNames = buildTable(table)
		installed = true
	})
	if !installed {
		return fmt.Errorf("cannot install %s: %w", path, ErrShipNamesInstalled)
	}
	return nil
}

// buildTable normalizes lookup keys to lower case and maps every canonical
// display form back to itself, which keeps Canonicalize idempotent even when
// the resource only lists journal identifiers.
func buildTable(source map[string]string) map[string]string {
	table := make(map[string]string, len(source)*2)
	for key, canonical := range source {
		table[strings.ToLower(key)] = canonical
	}
	for _, canonical := range source {
		table[strings.ToLower(canonical)] = canonical
	}
	return table
}

// Canonicalize normalizes a free-form vehicle identifier to its canonical
// display form. A nil identifier (no vehicle observed) yields the fixed
// UnknownVehicle label; an identifier missing from the table yields the
// lower-cased input.
func Canonicalize(name *string) string {
	if name == nil {
		return UnknownVehicle
	}

	shipNamesOnce.Do(func() { canonicalShipNames = buildTable(defaultShipNames) })

	lowered := strings.ToLower(*name)
	if canonical, ok := canonicalShipNames[lowered]; ok {
		return canonical
	}

	return lowered
}

// defaultShipNames covers the journal identifiers of the flyable ships,
// used when no external table resource is configured.
var defaultShipNames = map[string]string{
	"adder":                    "Adder",
	"anaconda":                 "Anaconda",
	"asp":                      "Asp Explorer",
	"asp_scout":                "Asp Scout",
	"belugaliner":              "Beluga Liner",
	"cobramkiii":               "Cobra Mk III",
	"cobramkiv":                "Cobra Mk IV",
	"cutter":                   "Imperial Cutter",
	"diamondback":              "Diamondback Scout",
	"diamondbackxl":            "Diamondback Explorer",
	"dolphin":                  "Dolphin",
	"eagle":                    "Eagle",
	"empire_courier":           "Imperial Courier",
	"empire_eagle":             "Imperial Eagle",
	"empire_trader":            "Imperial Clipper",
	"federation_corvette":      "Federal Corvette",
	"federation_dropship":      "Federal Dropship",
	"federation_dropship_mkii": "Federal Assault Ship",
	"federation_gunship":       "Federal Gunship",
	"ferdelance":               "Fer-de-Lance",
	"hauler":                   "Hauler",
	"independant_trader":       "Keelback",
	"orca":                     "Orca",
	"python":                   "Python",
	"sidewinder":               "Sidewinder",
	"type6":                    "Type-6 Transporter",
	"type7":                    "Type-7 Transporter",
	"type9":                    "Type-9 Heavy",
	"type9_military":           "Type-10 Defender",
	"viper":                    "Viper Mk III",
	"viper_mkiv":               "Viper Mk IV",
	"vulture":                  "Vulture",
}
