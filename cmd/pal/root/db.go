package root

import (
	"context"
	"errors"

	"planetpal/internal/config"
	"planetpal/internal/engine"
	"planetpal/internal/logging"
	"planetpal/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return nil, nil, err
	}

	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
		_ = log.Sync()
	}
	return engine.NewService(ctx, storage.NewStore(db), log), cleanup, nil
}

// actingProfile resolves the --profile flag, defaulting to the first profile.
func actingProfile(svc *engine.Service) (*storage.Profile, error) {
	if profileFlag != "" {
		return svc.Profile(profileFlag)
	}
	profiles := svc.Profiles()
	if len(profiles) == 0 {
		return nil, errors.New("no profiles yet — create one with: pal profile add <name> --age <age>")
	}
	return &profiles[0], nil
}
