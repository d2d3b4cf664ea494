// Command ledger_token mints bearer tokens for operators and integrations
// that post to the ledger. It signs with the same JWT_SECRET and JWT_ISSUER
// the backend reads, so run it with the backend's environment or .env file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/platform/config"
	"github.com/SscSPs/bookkeeping_core/internal/utils"
)

func main() {
	actorID := flag.String("actor", "", "actor ID recorded as created_by on everything this token posts")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	newSecret := flag.Bool("new-secret", false, "print a fresh random JWT_SECRET and exit")
	secretBytes := flag.Int("secret-bytes", utils.MinSigningSecretBytes, "random bytes in a -new-secret secret")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *newSecret {
		secret, err := utils.NewSigningSecret(*secretBytes)
		if err != nil {
			logger.Error("Failed to generate secret", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Println(secret)
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := utils.IssueActorToken(*actorID, cfg.JWTSecret, cfg.JWTIssuer, *ttl)
	if err != nil {
		logger.Error("Failed to issue token", slog.String("actor", *actorID), slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
