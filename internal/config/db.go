package config

import (
	"errors"
	"net/url"
)

type DbConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"db-name"`
	Address  string `mapstructure:"address"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.DbName == "" {
		return errors.New("db-name cannot be empty")
	}

	if cfg.Address == "" {
		return errors.New("database address cannot be empty")
	}

	u, err := url.Parse(cfg.Address)
	if err != nil {
		return errors.New("invalid database address")
	}

	if u.Scheme != "mongodb" && u.Scheme != "mongodb+srv" {
		return errors.New("database address must use mongodb:// or mongodb+srv:// scheme")
	}

	return nil
}
