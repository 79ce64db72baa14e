package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saulo-duarte/planner-miniapp/internal/config"
	"github.com/saulo-duarte/planner-miniapp/internal/goal"
	"github.com/saulo-duarte/planner-miniapp/internal/habit"
	"github.com/saulo-duarte/planner-miniapp/internal/notification"
	"github.com/saulo-duarte/planner-miniapp/internal/schedule"
	"github.com/saulo-duarte/planner-miniapp/internal/task"
	"github.com/saulo-duarte/planner-miniapp/internal/user"
)

// Connect opens the database named by the backend settings and migrates the
// schema of every entity the REST contract serves.
func Connect(ctx context.Context, settings config.BackendSettings) (*gorm.DB, error) {
	log := config.WithContext(ctx).WithField("driver", settings.Driver)

	var dialector gorm.Dialector
	switch settings.Driver {
	case "postgres":
		dialector = postgres.Open(settings.DSN)
	case "mysql":
		dialector = mysql.Open(settings.DSN)
	case "sqlite":
		dialector = sqlite.Open(settings.DSN)
	default:
		return nil, fmt.Errorf("%w: unsupported database driver %q", config.ErrInvalidSettings, settings.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.WithError(err).Error("Failed to open database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if settings.Driver == "sqlite" {
		// single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		log.WithError(err).Error("Database is unreachable")
		return nil, err
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&user.User{},
		&user.Statistic{},
		&task.Task{},
		&habit.Habit{},
		&goal.Goal{},
		&schedule.Schedule{},
		&notification.Setting{},
	); err != nil {
		log.WithError(err).Error("Failed to migrate schema")
		return nil, err
	}

	log.Info("Database connected")
	return db, nil
}
