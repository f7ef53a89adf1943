package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	KVDSN string

	// Listing visibility: when true, the public catalog hides products
	// belonging to unverified sellers.
	VerifiedOnly bool

	// SMTP settings for the email notification channel. Empty host means
	// notifications are logged instead of mailed.
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
}

func Load() Config {
	// .env is optional; real env always wins
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("KV_DSN")
	if dsn == "" {
		dsn = "tradepost.db" // sqlite file in project root
	}
	verifiedOnly := os.Getenv("VERIFIED_SELLERS_ONLY") == "true"

	cfg := Config{
		Port:         port,
		KVDSN:        dsn,
		VerifiedOnly: verifiedOnly,
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     os.Getenv("SMTP_PORT"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPass:     os.Getenv("SMTP_PASS"),
	}
	log.Printf("[config] PORT=%s KV_DSN=%s VERIFIED_SELLERS_ONLY=%v SMTP=%v",
		cfg.Port, cfg.KVDSN, cfg.VerifiedOnly, cfg.SMTPHost != "")
	return cfg
}
