package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/sozercan/web-data-gen/internal/datagen"
	"github.com/sozercan/web-data-gen/internal/logx"
)

type Config struct {
	Server  ServerConfig
	DataGen DataGenConfig
	Log     logx.Config
}

type ServerConfig struct {
	Port        string        `envconfig:"SERVER_PORT" default:"8000"`
	Host        string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	// Zero: a submission may wait on the generator indefinitely.
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"0s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

type DataGenConfig struct {
	// Origin relative endpoints resolve against. Empty means this server.
	Origin string `envconfig:"DATAGEN_ORIGIN"`
	// Candidate endpoints in attempt order. Empty means datagen.DefaultEndpoints.
	Endpoints []string `envconfig:"DATAGEN_ENDPOINTS"`
	// Drops the public CORS relay from the candidates.
	DisableRelay bool `envconfig:"DATAGEN_DISABLE_RELAY" default:"false"`
	// Where the same-origin proxy path forwards to.
	ProxyTarget string `envconfig:"DATAGEN_PROXY_TARGET" default:"https://qs4ng286xa.execute-api.us-east-1.amazonaws.com/omnis-web-data-gen-latest"`
}

// CandidateEndpoints applies the defaults and the relay switch.
func (c DataGenConfig) CandidateEndpoints() []string {
	endpoints := c.Endpoints
	if len(endpoints) == 0 {
		endpoints = datagen.DefaultEndpoints
	}
	if c.DisableRelay {
		return datagen.WithoutRelay(endpoints)
	}
	out := make([]string, len(endpoints))
	copy(out, endpoints)
	return out
}

// SelfOrigin is the origin this server answers on, for clients running in
// the same process.
func (c ServerConfig) SelfOrigin() string {
	host := c.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + host + ":" + c.Port
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
