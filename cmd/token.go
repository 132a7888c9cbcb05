package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"threatwatch/internal/config"
	"threatwatch/pkg/jwt"
)

// IssueToken prints a signed status API token for an operator.
func IssueToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := fs.String("subject", "", "operator the token is issued to")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *subject == "" {
		return fmt.Errorf("token: -subject is required")
	}

	secret, err := config.NewTokenSecret()
	if err != nil {
		return err
	}

	token, err := jwt.NewJWTService([]byte(secret)).Issue(jwt.TokenInfo{
		Subject: *subject,
		Scope:   jwt.ScopeStatusRead,
		TTL:     *ttl,
	})
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	_, err = fmt.Fprintln(os.Stdout, token)
	return err
}
