package common

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config is the process configuration, read from the environment after an
// optional .env file.
type Config struct {
	ListenAddress  string
	DebugAddress   string
	RedisUrl       string
	RedisPassword  string
	RedisDB        int
	RabbitUrl      string
	RabbitVHost    string
	TopicPrefix    string
	Currency       string
	MaxMarkupRatio decimal.Decimal
	PromotionsFile string
	QueryCacheTTL  time.Duration
	Timeouts       TimeoutConfig
}

func DefaultConfig() Config {
	return Config{
		ListenAddress:  ":8080",
		DebugAddress:   ":8081",
		TopicPrefix:    "storefront",
		Currency:       "USD",
		MaxMarkupRatio: decimal.Zero,
		QueryCacheTTL:  5 * time.Minute,
		Timeouts: TimeoutConfig{
			ReadHeader: 5 * time.Second,
			Read:       15 * time.Second,
			Write:      15 * time.Second,
			Idle:       60 * time.Second,
			Shutdown:   15 * time.Second,
			Hook:       5 * time.Second,
		},
	}
}

// LoadConfig loads envFiles (missing files are ignored) and overrides the
// defaults with whatever is set in the environment.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		} else if err == nil {
			log.Printf("loaded environment from %s", f)
		}
	}
	cfg := DefaultConfig()
	setString(&cfg.ListenAddress, "LISTEN_ADDRESS")
	setString(&cfg.DebugAddress, "DEBUG_ADDRESS")
	setString(&cfg.RedisUrl, "REDIS_URL")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.RabbitUrl, "RABBIT_URL")
	setString(&cfg.RabbitVHost, "RABBIT_HOST")
	setString(&cfg.TopicPrefix, "TOPIC_PREFIX")
	setString(&cfg.Currency, "CURRENCY")
	setString(&cfg.PromotionsFile, "PROMOTIONS_FILE")
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, err
		}
		cfg.RedisDB = db
	}
	if v := os.Getenv("MAX_MARKUP_RATIO"); v != "" {
		ratio, err := decimal.NewFromString(v)
		if err != nil {
			return Config{}, err
		}
		if ratio.IsNegative() {
			return Config{}, errors.New("MAX_MARKUP_RATIO must be non-negative")
		}
		cfg.MaxMarkupRatio = ratio
	}
	if v := os.Getenv("QUERY_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, err
		}
		cfg.QueryCacheTTL = ttl
	}
	cfg.Timeouts = LoadTimeoutConfig(cfg.Timeouts)
	return cfg, nil
}

func setString(target *string, env string) {
	if v := os.Getenv(env); v != "" {
		*target = v
	}
}
