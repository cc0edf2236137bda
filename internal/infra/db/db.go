package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/botfarm-io/botfarm/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrUnavailable means neither the application database nor the
// administrative one could be reached; startup cannot continue.
var ErrUnavailable = errors.New("database unavailable")

// New connects to the application database, creating it through the
// administrative credential set if it does not exist yet.
func New(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	d, err := open(cfg.Database.DSN(), cfg.DB)
	if err == nil {
		return d, nil
	}

	// The application database may simply not exist yet. Bootstrap it with
	// the administrative credentials; if those are unreachable too, give up.
	admin, adminErr := open(cfg.DefaultDatabase.DSN(), cfg.DB)
	if adminErr != nil {
		return nil, fmt.Errorf("%w: app db: %v, default db: %v", ErrUnavailable, err, adminErr)
	}
	defer closeDB(admin)

	log.Sugar().Infow("creating application database", "name", cfg.Database.Name)
	stmt := fmt.Sprintf(`CREATE DATABASE %q`, cfg.Database.Name)
	if err := admin.Exec(stmt).Error; err != nil {
		return nil, fmt.Errorf("create database %s: %w", cfg.Database.Name, err)
	}

	d, err = open(cfg.Database.DSN(), cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect after create: %w", err)
	}
	return d, nil
}

func open(dsn string, pool config.DBCfg) (*gorm.DB, error) {
	d, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpen)
	sqlDB.SetMaxIdleConns(pool.MaxIdle)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return d, nil
}

func closeDB(d *gorm.DB) {
	if sqlDB, err := d.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
