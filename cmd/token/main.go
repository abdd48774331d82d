package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/auth"
	"github.com/joho/godotenv"
)

// token mints a bearer token for local testing against the API.
func main() {
	cfgPath := flag.String("config", "", "config file (defaults to $CONFIG_PATH or config.yaml)")
	userID := flag.Int64("user", 0, "user id placed in the sub claim")
	userEmail := flag.String("email", "", "address the ticket e-mails go to")
	flag.Parse()

	if *userID <= 0 {
		fmt.Fprintln(os.Stderr, "usage: token -user <id> [-email <address>] [-config <path>]")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	path := *cfgPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config.yaml"
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	token, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()).Issue(*userID, *userEmail)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
}
