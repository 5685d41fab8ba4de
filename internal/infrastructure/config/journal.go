package config

// JournalConfig holds settings for reading the game's journal files
type JournalConfig struct {
	// Directory containing the journal files
	Dir string `mapstructure:"dir"`

	// Maximum file polls per second when tailing a live journal
	PollsPerSecond float64 `mapstructure:"polls_per_second" validate:"gt=0"`
}
