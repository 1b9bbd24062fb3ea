package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string

	CacheCapacity int
	CacheTTL      time.Duration

	Workbook     string
	WorkbookHash string
	SyncSchedule string
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "menu.db"),
		Port:          getEnv("PORT", "8000"),
		CacheCapacity: getEnvInt("CACHE_CAPACITY", 10000),
		CacheTTL:      time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		Workbook:      getEnv("MENU_WORKBOOK", "admin/Menu.xlsx"),
		WorkbookHash:  getEnv("MENU_WORKBOOK_HASH", "admin/Menu.xlsx.hash"),
		SyncSchedule:  getEnv("SYNC_SCHEDULE", "@every 15s"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return n
}
