package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr      string
	SeedUsers bool
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("TALLY_ADDR"),
			Destination: &s.Addr,
		},
		&cli.BoolFlag{
			Name:        "seed-users",
			Usage:       "Seed the in-memory user list with sample users",
			Sources:     cli.EnvVars("TALLY_SEED_USERS"),
			Destination: &s.SeedUsers,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Bool("seed_users", s.SeedUsers),
	)
}
