package main

import (
	"gorm.io/gorm"

	"github.com/cinefind/cinefind/internal/cache"
	"github.com/cinefind/cinefind/internal/config"
	"github.com/cinefind/cinefind/internal/database"
	"github.com/cinefind/cinefind/internal/handlers"
	"github.com/cinefind/cinefind/internal/services"
	"github.com/cinefind/cinefind/pkg/logger"
)

var (
	Logger           logger.Logger
	Cfg              *config.Config
	DB               *gorm.DB
	appCache         cache.Cache
	memoryCache      *cache.LRUCache
	handler          *handlers.Handler
	serviceContainer *services.Container
)

func InitializeLogger() {
	Logger = logger.New()
}

func InitializeConfig() {
	var err error
	Cfg, err = config.Load()
	if err != nil {
		Logger.Fatalf("[App] failed to load configuration: %v", err)
	}
}

func InitializeDatabase() {
	var err error
	DB, err = database.Open(Cfg.DatabasePath)
	if err != nil {
		Logger.Fatalf("[App] failed to initialize database: %v", err)
	}

	Logger.Infof("[App] catalog database initialized at %s", Cfg.DatabasePath)
}

func InitializeCache() {
	switch Cfg.CacheBackend {
	case "bolt":
		boltCache, err := cache.NewBolt(Cfg.CachePath)
		if err != nil {
			Logger.Fatalf("[App] failed to initialize bolt cache: %v", err)
		}
		appCache = boltCache
		Logger.Infof("[App] bolt cache initialized at %s", Cfg.CachePath)
	default:
		memoryCache = cache.NewLRU(Cfg.CacheSize)
		appCache = memoryCache
		Logger.Infof("[App] in-memory cache initialized (capacity %d)", Cfg.CacheSize)
	}
}

func InitializeServices() {
	store := database.NewStore(DB, appCache, Logger)
	tmdbService := services.NewTMDB(Cfg.TMDBAPIKey, appCache, Logger)

	serviceContainer = &services.Container{
		TMDB:    tmdbService,
		Store:   store,
		Cache:   appCache,
		Logger:  Logger,
		Search:  services.NewSearchService(store, appCache, tmdbService, Logger, Cfg.DefaultLanguage),
		Catalog: services.NewCatalogService(store, Logger, Cfg.ReferenceLanguage),
		Sync:    services.NewSyncService(tmdbService, store, Logger, Cfg.SyncLanguages, Cfg.SyncPages),
	}

	handler = handlers.New(serviceContainer, Cfg)

	Logger.Infof("[App] services initialized successfully")
}
