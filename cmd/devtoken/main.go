// Command devtoken prints an access token for a user, signed with the
// configured JWT secret. It is meant for local runs against seeded memory
// storage; the production identity service issues real tokens.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdugdh24/mentorship-backend/internal/config"
	"github.com/gdugdh24/mentorship-backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := run(cfg, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "devtoken: %v\n", err)
		os.Exit(2)
	}
}

func run(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("devtoken", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	user := fs.String("user", "", "user id (UUID) to put in the token")
	ttl := fs.Duration("ttl", time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if env := cfg.Server.Env; env != "local" && env != "dev" {
		return fmt.Errorf("refusing to issue tokens in env %q", env)
	}
	userID, err := uuid.Parse(*user)
	if err != nil {
		return fmt.Errorf("-user: %w", err)
	}

	token, err := auth.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.Issuer).Issue(userID, *ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
