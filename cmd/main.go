package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	authservice "github.com/debduthira/valorant-prs/auth/service"
	"github.com/debduthira/valorant-prs/auth/storage"
	authpostgres "github.com/debduthira/valorant-prs/auth/storage/postgres"
	authsqlite "github.com/debduthira/valorant-prs/auth/storage/sqlite"
	"github.com/debduthira/valorant-prs/internal/config"
	"github.com/debduthira/valorant-prs/internal/logger"
	"github.com/debduthira/valorant-prs/internal/service"
	matchsqlite "github.com/debduthira/valorant-prs/internal/storage/sqlite"
	"github.com/debduthira/valorant-prs/internal/web"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var serverConfigPath string
	var authConfigPath string
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "path to server config")
	flag.StringVar(&authConfigPath, "auth-config", "configs/auth.toml", "path to auth config")
	flag.Parse()

	cfg, err := config.New(serverConfigPath, authConfigPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	ctx := context.Background()
	authStorage, err := newAuthStorage(ctx, log, cfg.Auth)
	if err != nil {
		return err
	}
	authService := authservice.New(cfg.Auth, authStorage)

	matchStorage, err := matchsqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}
	statsService := service.New(log, matchStorage)

	server, err := web.New(statsService, cfg.Server, authService)
	if err != nil {
		return err
	}
	log.WithFields(map[string]interface{}{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("server starting")
	return server.Serve()
}

func newAuthStorage(ctx context.Context, log *logrus.Logger, cfg authservice.Config) (storage.AuthStorage, error) {
	switch cfg.Storage {
	case "", "sqlite":
		return authsqlite.New(log, cfg)
	case "postgres":
		return authpostgres.New(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown auth storage %q", cfg.Storage)
	}
}
