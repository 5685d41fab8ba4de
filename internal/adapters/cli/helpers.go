package cli

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cmdrwatch/cmdrwatch/internal/adapters/persistence"
	"github.com/cmdrwatch/cmdrwatch/internal/domain/commander"
	"github.com/cmdrwatch/cmdrwatch/internal/infrastructure/config"
	"github.com/cmdrwatch/cmdrwatch/internal/infrastructure/database"
)

// appContext wires the configuration, database and repositories a command
// needs. Commands build it in RunE and close it when done.
type appContext struct {
	cfg           *config.Config
	db            *gorm.DB
	commanderRepo *persistence.GormCommanderRepository
	sessionRepo   *persistence.GormSessionRepository
}

func newAppContext() (*appContext, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if err := commander.LoadShipNames(cfg.Intel.ShipNamesPath); err != nil {
		return nil, fmt.Errorf("failed to load ship names table: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Debug logging opts into verbose output and SQL tracing
	if cfg.Logging.Level == "debug" {
		verbose = true
		db.Logger = logger.Default.LogMode(logger.Info)
	}

	return &appContext{
		cfg:           cfg,
		db:            db,
		commanderRepo: persistence.NewGormCommanderRepository(db),
		sessionRepo:   persistence.NewGormSessionRepository(db),
	}, nil
}

func (a *appContext) Close() {
	_ = database.Close(a.db)
}

// resolveCommander picks the commander name from the --commander flag or the
// user's configured default
func resolveCommander() (string, error) {
	if commanderFlag != "" {
		return commanderFlag, nil
	}

	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return "", err
	}

	userCfg, err := handler.Load()
	if err != nil {
		return "", err
	}

	if userCfg.DefaultCommander == "" {
		return "", fmt.Errorf("no commander specified: pass --commander or run 'cmdrwatch config set-default <name>'")
	}

	return userCfg.DefaultCommander, nil
}
