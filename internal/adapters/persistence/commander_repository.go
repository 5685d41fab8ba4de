package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/shared"
)

// GormCommanderRepository implements commander.Repository using GORM
type GormCommanderRepository struct {
	db *gorm.DB
}

// NewGormCommanderRepository creates a new GORM commander repository
func NewGormCommanderRepository(db *gorm.DB) *GormCommanderRepository {
	return &GormCommanderRepository{db: db}
}

// Save persists the commander's current snapshot (upsert by name)
func (r *GormCommanderRepository) Save(ctx context.Context, cmdr *commander.Commander) error {
	model, err := snapshotToModel(cmdr.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to convert commander to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save commander: %w", result.Error)
	}
	return nil
}

// FindByName retrieves a commander by name
func (r *GormCommanderRepository) FindByName(ctx context.Context, name string) (*commander.Commander, error) {
	var model CommanderModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, shared.NewCommanderError(name, "not tracked")
		}
		return nil, fmt.Errorf("failed to find commander: %w", result.Error)
	}

	return modelToCommander(&model)
}

// ListAll retrieves every tracked commander
func (r *GormCommanderRepository) ListAll(ctx context.Context) ([]*commander.Commander, error) {
	var models []CommanderModel
	result := r.db.WithContext(ctx).Order("name").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list commanders: %w", result.Error)
	}

	commanders := make([]*commander.Commander, 0, len(models))
	for i := range models {
		cmdr, err := modelToCommander(&models[i])
		if err != nil {
			continue // Skip rows that no longer deserialize
		}
		commanders = append(commanders, cmdr)
	}

	return commanders, nil
}

// Delete removes a commander's snapshot
func (r *GormCommanderRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&CommanderModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete commander: %w", result.Error)
	}
	return nil
}

func snapshotToModel(snap commander.Snapshot) (*CommanderModel, error) {
	wing, err := json.Marshal(snap.Wing)
	if err != nil {
		return nil, err
	}
	previousWing, err := json.Marshal(snap.PreviousWing)
	if err != nil {
		return nil, err
	}
	friends, err := json.Marshal(snap.Friends)
	if err != nil {
		return nil, err
	}

	return &CommanderModel{
		Name:         snap.Name,
		Ship:         snap.Ship,
		StarSystem:   snap.StarSystem,
		Place:        snap.Place,
		Security:     snap.Security,
		GameMode:     string(snap.GameMode),
		PreviousMode: string(snap.PreviousMode),
		Wing:         string(wing),
		PreviousWing: string(previousWing),
		Friends:      string(friends),
		FromBirth:    snap.FromBirth,
		LastUpdate:   snap.Timestamp,
	}, nil
}

func modelToCommander(model *CommanderModel) (*commander.Commander, error) {
	snap := commander.Snapshot{
		Name:         model.Name,
		Ship:         model.Ship,
		StarSystem:   model.StarSystem,
		Place:        model.Place,
		Security:     model.Security,
		GameMode:     commander.GameMode(model.GameMode),
		PreviousMode: commander.GameMode(model.PreviousMode),
		FromBirth:    model.FromBirth,
		Timestamp:    model.LastUpdate,
	}

	if err := unmarshalMembers(model.Wing, &snap.Wing); err != nil {
		return nil, fmt.Errorf("failed to decode wing: %w", err)
	}
	if err := unmarshalMembers(model.PreviousWing, &snap.PreviousWing); err != nil {
		return nil, fmt.Errorf("failed to decode previous wing: %w", err)
	}
	if err := unmarshalMembers(model.Friends, &snap.Friends); err != nil {
		return nil, fmt.Errorf("failed to decode friends: %w", err)
	}

	return commander.RestoreCommander(snap)
}

func unmarshalMembers(data string, members *[]string) error {
	if data == "" {
		return nil
	}
	return json.Unmarshal([]byte(data), members)
}
