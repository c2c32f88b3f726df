package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const sampleProductURL = "https://www.bcracingeu.com/bc-6kg-taper-spring-95-62-180-006v-0033777.html"

var (
	Driver            string
	ChromeDriverPath  string
	Headless          bool
	PageLoadTimeout   time.Duration
	NavigationTimeout time.Duration
	MaxImages         int
	ArtifactsDir      string
	DefaultURL        string
	LogLevel          string
	AWSRegion         string
	AWSBucketName     string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Driver = getEnv("SCRAPER_DRIVER", "selenium")
	ChromeDriverPath = getEnv("CHROMEDRIVER_PATH", "/usr/local/bin/chromedriver")
	Headless = getBool("HEADLESS", true)
	PageLoadTimeout = getDuration("PAGE_LOAD_TIMEOUT", 15*time.Second)
	// chromedriver's own page-load budget; separate from the readiness wait
	NavigationTimeout = getDuration("NAVIGATION_TIMEOUT", 300*time.Second)
	MaxImages = getInt("MAX_IMAGES", 6)
	ArtifactsDir = getEnv("ARTIFACTS_DIR", "artifacts")
	DefaultURL = getEnv("DEFAULT_URL", sampleProductURL)
	LogLevel = getEnv("LOG_LEVEL", "info")

	AWSRegion = getEnv("AWS_REGION", "eu-central-1")
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
