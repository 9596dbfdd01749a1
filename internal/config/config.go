package config

import (
	authservice "github.com/debduthira/valorant-prs/auth/service"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Debug      bool   `toml:"debug_mode"`
	SqliteFile string `toml:"sqlite_file"`
}

type Config struct {
	Server Server
	Auth   authservice.Config
}

func New(serverPath string, authPath string) (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile(serverPath, &serverCfg)
	if err != nil {
		return Config{}, err
	}

	var authCfg authservice.Config
	_, err = toml.DecodeFile(authPath, &authCfg)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Server: serverCfg,
		Auth:   authCfg,
	}, nil
}
