//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"chat-server/internal/config"
	"chat-server/internal/domain/chat"
	"chat-server/internal/domain/message"
	"chat-server/internal/domain/room"
	"chat-server/internal/infrastructure/hashing"
	"chat-server/internal/infrastructure/store"
	"chat-server/internal/interfaces/httpserver"
	"chat-server/internal/interfaces/httpserver/handlers"
	"chat-server/internal/interfaces/wsserver"
)

// ProviderSet is the wire provider set for the application.
var ProviderSet = wire.NewSet(
	// Infrastructure providers
	ProvideMessageStore,
	ProvideDirectory,
	ProvideHasher,

	// Realtime core providers
	chat.NewRegistry,
	chat.NewBroadcaster,

	// Domain providers
	ProvideRoomService,

	// Interface providers
	wsserver.New,
	handlers.NewProvider,
	httpserver.New,

	// Application
	NewApplication,
)

// ProvideMessageStore provides a message store.
func ProvideMessageStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (message.Store, error) {
	if cfg.DatabasePath == "" {
		return store.NewMemoryMessageStore(), nil
	}
	db, err := store.Open(ctx, cfg.DatabasePath, log)
	if err != nil {
		return nil, err
	}
	return store.NewGormMessageStore(db), nil
}

// ProvideDirectory provides a room directory.
func ProvideDirectory(ctx context.Context, cfg *config.Config, log zerolog.Logger) (room.Directory, error) {
	if cfg.DatabasePath == "" {
		return store.NewMemoryDirectory(), nil
	}
	db, err := store.Open(ctx, cfg.DatabasePath, log)
	if err != nil {
		return nil, err
	}
	return store.NewGormDirectory(db), nil
}

// ProvideHasher provides the bcrypt password capability.
func ProvideHasher(cfg *config.Config) room.Hasher {
	return hashing.NewBcrypt(cfg.BcryptCost)
}

// ProvideRoomService provides the room directory service.
func ProvideRoomService(
	directory room.Directory,
	messages message.Store,
	registry *chat.Registry,
	hasher room.Hasher,
	log zerolog.Logger,
) *room.Service {
	return room.NewService(directory, messages, registry, hasher, log)
}

// CreateApplication creates the application with all dependencies wired.
func CreateApplication(
	ctx context.Context,
	cfg *config.Config,
	log zerolog.Logger,
) (*Application, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
