package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/cinefind/cinefind/internal/middleware"
)

func main() {
	InitializeLogger()
	InitializeConfig()
	InitializeDatabase()
	InitializeCache()
	InitializeServices()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if memoryCache != nil {
		memoryCache.StartCleanup(ctx)
	}

	if Cfg.SyncOnStart {
		go func() {
			if err := serviceContainer.Sync.Run(); err != nil {
				Logger.Errorf("[App] startup sync failed: %v", err)
			}
		}()
	}

	r := gin.Default()
	r.Use(middleware.Gzip())
	r.Use(middleware.CORS())

	handler.RegisterRoutes(r)

	Logger.Infof("[App] listening on port %s", Cfg.Port)
	if err := r.Run(":" + Cfg.Port); err != nil {
		Logger.Fatalf("[App] server exited: %v", err)
	}
}
