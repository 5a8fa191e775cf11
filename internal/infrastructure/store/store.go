// Package store contains the persistence implementations behind the
// message.Store and room.Directory interfaces: a GORM/SQLite pair for
// durable deployments and a mutex-based in-memory pair for tests and
// ephemeral runs.
package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"chat-server/internal/domain/message"
	"chat-server/internal/domain/room"
)

// Open opens the SQLite database at path and applies schema migrations.
func Open(ctx context.Context, path string, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", path, err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&room.Room{}, &message.Message{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	log.Info().Str("path", path).Msg("applied chat schema migrations")
	return db, nil
}
