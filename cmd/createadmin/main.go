// Command createadmin inserts an admin account directly into the
// credential store. It is the only way to create an admin, the web
// registration surface always produces players.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	authservice "github.com/debduthira/valorant-prs/auth/service"
	"github.com/debduthira/valorant-prs/auth/storage"
	authpostgres "github.com/debduthira/valorant-prs/auth/storage/postgres"
	authsqlite "github.com/debduthira/valorant-prs/auth/storage/sqlite"
	"github.com/debduthira/valorant-prs/internal/config"
	"github.com/debduthira/valorant-prs/internal/logger"

	_ "github.com/mattn/go-sqlite3"
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
	var authStorage storage.AuthStorage
	if cfg.Auth.Storage == "postgres" {
		authStorage, err = authpostgres.New(ctx, cfg.Auth)
	} else {
		authStorage, err = authsqlite.New(log, cfg.Auth)
	}
	if err != nil {
		return err
	}
	authService := authservice.New(cfg.Auth, authStorage)

	in := bufio.NewReader(os.Stdin)
	fmt.Print("Enter admin username: ")
	username, err := in.ReadString('\n')
	if err != nil {
		return err
	}
	fmt.Print("Enter admin password: ")
	password, err := in.ReadString('\n')
	if err != nil {
		return err
	}
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return fmt.Errorf("username and password must not be empty")
	}

	if err := authService.CreateAdmin(ctx, username, password); err != nil {
		return err
	}
	fmt.Printf("Admin %q created successfully\n", username)
	return nil
}
