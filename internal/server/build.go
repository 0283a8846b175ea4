package server

import (
	"log/slog"

	"github.com/sozercan/web-data-gen/internal/config"
	"github.com/sozercan/web-data-gen/internal/datagen"
	"github.com/sozercan/web-data-gen/internal/submit"
)

// Build wires the delivery client and workflow described by cfg into a Server.
// Relative candidates resolve against this server unless an origin is set.
func Build(cfg config.Config, logger *slog.Logger) (*Server, error) {
	origin := cfg.DataGen.Origin
	if origin == "" {
		origin = cfg.Server.SelfOrigin()
	}

	client, err := datagen.NewClient(origin)
	if err != nil {
		return nil, err
	}

	workflow := submit.New(client, cfg.DataGen.CandidateEndpoints(), logger)
	return New(cfg, workflow)
}
