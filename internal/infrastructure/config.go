package infrastructure

import (
	"errors"
	"os"

	adaptermiddleware "casting-agency/internal/adapters/http/middleware"
)

type Config struct {
	TableName   string
	Region      string
	AuthDomain  string
	APIAudience string
	AuthMode    adaptermiddleware.Mode
	Port        string
}

func LoadConfig() (Config, error) {
	authMode, err := adaptermiddleware.ParseAuthMode()
	if err != nil {
		return Config{}, err
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	cfg := Config{
		TableName:   os.Getenv("TABLE_NAME"),
		Region:      os.Getenv("AWS_REGION"),
		AuthDomain:  os.Getenv("AUTH_DOMAIN"),
		APIAudience: os.Getenv("API_AUDIENCE"),
		AuthMode:    authMode,
		Port:        port,
	}
	if cfg.TableName == "" || cfg.Region == "" {
		return Config{}, errors.New("missing required environment variables")
	}
	if cfg.AuthMode == adaptermiddleware.ModeBearer && (cfg.AuthDomain == "" || cfg.APIAudience == "") {
		return Config{}, errors.New("AUTH_DOMAIN and API_AUDIENCE are required for bearer auth mode")
	}
	return cfg, nil
}
