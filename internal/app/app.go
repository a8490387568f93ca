package app

import (
	"context"
	"docmanagement/internal/cache/redis"
	"docmanagement/internal/config"
	"docmanagement/internal/dbs/postgres"
	cachesessionrepo "docmanagement/internal/repositories/cache/session"
	documentrepo "docmanagement/internal/repositories/db/document"
	folderrepo "docmanagement/internal/repositories/db/folder"
	authservice "docmanagement/internal/services/auth"
	documentservice "docmanagement/internal/services/document"
	folderservice "docmanagement/internal/services/folder"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

type App struct {
	AuthService     AuthService
	FolderService   FolderService
	DocumentService DocumentService

	db    *sqlx.DB
	cache *redis.Client
}

func NewApp(ctx context.Context, log *slog.Logger, dbCfg config.DB, cacheConfig config.Cache) (*App, error) {
	db, err := postgres.New(ctx, postgres.Config{
		Addr:     dbCfg.Addr,
		Port:     dbCfg.Port,
		User:     dbCfg.User,
		Password: dbCfg.Password,
		DB:       dbCfg.DB,
		SSLMode:  dbCfg.SSLMode})
	if err != nil {
		log.Error("failed connect to db", "err", err)
		return nil, fmt.Errorf("failed connect to db: %w", err)
	}

	cache, err := redis.New(ctx, redis.Config{Addr: cacheConfig.Addr, Password: cacheConfig.Password, DB: cacheConfig.DB})
	if err != nil {
		log.Error("failed connect to cache", "err", err)
		_ = db.Close()
		return nil, fmt.Errorf("failed connect to cache: %w", err)
	}

	tx := postgres.NewTransactor(db)

	sessionCacheRepo := cachesessionrepo.New(cache)

	authService := authservice.New(log, sessionCacheRepo)

	folderRepo := folderrepo.NewRepository(db)

	folderService := folderservice.New(log, folderRepo, tx)

	docRepo := documentrepo.NewRepository(db)

	documentService := documentservice.New(log, docRepo, folderRepo, tx)

	return &App{
		AuthService:     authService,
		FolderService:   folderService,
		DocumentService: documentService,
		db:              db,
		cache:           cache,
	}, nil
}

func (a *App) Close() error {
	return errors.Join(a.db.Close(), a.cache.Close())
}
