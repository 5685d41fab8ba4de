package persistence

import "time"

// CommanderModel represents the commanders table: one row per tracked
// commander holding the latest believed state. Set-valued fields are stored
// as JSON arrays in text columns (SQLite compatible).
type CommanderModel struct {
	Name         string  `gorm:"column:name;primaryKey;not null"`
	Ship         *string `gorm:"column:ship"`
	StarSystem   *string `gorm:"column:star_system"`
	Place        *string `gorm:"column:place"`
	Security     *string `gorm:"column:security"`
	GameMode     string  `gorm:"column:game_mode"`
	PreviousMode string  `gorm:"column:previous_mode"`
	Wing         string  `gorm:"column:wing;type:text"`
	PreviousWing string  `gorm:"column:previous_wing;type:text"`
	Friends      string  `gorm:"column:friends;type:text"`
	FromBirth    bool    `gorm:"column:from_birth;not null;default:false"`
	LastUpdate   string  `gorm:"column:last_update"` // journal wire timestamp
}

func (CommanderModel) TableName() string {
	return "commanders"
}

// TrackingSessionModel represents the tracking_sessions table: one row per
// replay or live-watch run, for correlating where a snapshot came from.
type TrackingSessionModel struct {
	ID        string    `gorm:"column:id;primaryKey;not null"`
	Commander string    `gorm:"column:commander;not null"`
	Source    string    `gorm:"column:source;not null"` // journal file path or "live"
	StartedAt time.Time `gorm:"column:started_at;not null"`
	Events    int       `gorm:"column:events;default:0"`
}

func (TrackingSessionModel) TableName() string {
	return "tracking_sessions"
}
