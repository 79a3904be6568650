package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/cache"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/config"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/database"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/router"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/service"
	"github.com/Poodle-E-Learning-Platform/E-Learning-Platform/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/Poodle-E-Learning-Platform/E-Learning-Platform/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("failed to run migrations: %v", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %v", err)
	}
	defer rdb.Close()

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	revoked := service.NewRedisRevocationStore(rdb)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, rdb, revoked)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":"+cfg.Port)
}
