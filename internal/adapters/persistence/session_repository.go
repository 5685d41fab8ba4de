package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cmdrwatch/cmdrwatch/internal/application/tracking"
)

// GormSessionRepository implements tracking.SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Save persists a tracking session (upsert by ID)
func (r *GormSessionRepository) Save(ctx context.Context, session *tracking.Session) error {
	model := &TrackingSessionModel{
		ID:        session.ID,
		Commander: session.Commander,
		Source:    session.Source,
		StartedAt: session.StartedAt,
		Events:    session.Events,
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save tracking session: %w", result.Error)
	}
	return nil
}

// ListByCommander retrieves the sessions recorded for a commander, newest first
func (r *GormSessionRepository) ListByCommander(ctx context.Context, name string) ([]*tracking.Session, error) {
	var models []TrackingSessionModel
	result := r.db.WithContext(ctx).Where("commander = ?", name).Order("started_at desc").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list tracking sessions: %w", result.Error)
	}

	sessions := make([]*tracking.Session, 0, len(models))
	for _, model := range models {
		sessions = append(sessions, &tracking.Session{
			ID:        model.ID,
			Commander: model.Commander,
			Source:    model.Source,
			StartedAt: model.StartedAt,
			Events:    model.Events,
		})
	}

	return sessions, nil
}
