package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string
	TempUnit string // F|C, instrument unit for roast drop temperature
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		Timezone: get("TZ", "UTC"),
		DBPath:   get("DB_PATH", "roastlog.db"),
		TempUnit: strings.ToUpper(get("TEMP_UNIT", "F")),
	}
	if cfg.TempUnit != "F" && cfg.TempUnit != "C" {
		log.Printf("[cfg] TEMP_UNIT %q not recognized, falling back to F", cfg.TempUnit)
		cfg.TempUnit = "F"
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
