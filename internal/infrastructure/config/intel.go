package config

// IntelConfig holds the policy values feeding the commander tracker
type IntelConfig struct {
	// Bounty significance threshold in credits
	BountyThreshold int64 `mapstructure:"bounty_threshold" validate:"gte=0"`

	// Path to the canonical ship-name table resource (JSON). Empty means
	// the built-in table.
	ShipNamesPath string `mapstructure:"ship_names_path"`
}
