package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"finops/internal/config"
	"finops/internal/credcache"
	"finops/internal/httpapi"
	"finops/internal/jobrunner"
	"finops/internal/logger"
	"finops/internal/scheduler"
	"finops/internal/store"
)

// initConfig initializes configuration
func (app *Application) initConfig() error {
	if err := config.Init(); err != nil {
		return err
	}
	app.config = config.GlobalConfig
	return nil
}

// initLogger initializes logging
func (app *Application) initLogger() error {
	if err := logger.Init(); err != nil {
		return err
	}
	app.registerCleanup(func() {
		logger.Sync()
	})
	return nil
}

// initMySQL initializes the MySQL-backed repository
func (app *Application) initMySQL() error {
	repo, err := store.NewRepository(app.config.Database.DSN)
	if err != nil {
		return err
	}

	app.repo = repo
	app.registerCleanup(func() {
		if err := repo.Close(); err != nil {
			logger.ErrorCtx(app.ctx, "mysql connection close error: %v", err)
		}
		logger.InfoCtx(app.ctx, "MySQL connection has been closed")
	})

	return nil
}

// initRedis initializes the Redis client backing the STS credential cache
func (app *Application) initRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     app.config.Redis.Addr,
		Password: app.config.Redis.Password,
		DB:       app.config.Redis.DB,
	})

	app.redisClient = client
	app.credCache = credcache.New(client)
	app.registerCleanup(func() {
		if err := client.Close(); err != nil {
			logger.ErrorCtx(app.ctx, "redis connection close error: %v", err)
		}
		logger.InfoCtx(app.ctx, "Redis connection has been closed")
	})

	return nil
}

// initJobRunner wires the job runner against the repository, config, and
// credential cache
func (app *Application) initJobRunner() error {
	app.runner = jobrunner.NewRunner(app.repo, app.config, app.credCache)
	return nil
}

// initScheduler wires the cron-driven tick against the job runner
func (app *Application) initScheduler() error {
	app.scheduler = scheduler.New(app.repo, app.runner, app.config.Scheduler.CronExpr)
	return nil
}

// initHTTPServer initializes the HTTP server
func (app *Application) initHTTPServer() error {
	r := httpapi.NewRouter(app.repo)

	gin.SetMode(app.config.Server.Mode)
	app.ginEngine = gin.New()
	r.Setup(app.ginEngine)

	app.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: app.ginEngine,
	}

	return nil
}
