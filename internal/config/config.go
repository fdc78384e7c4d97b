package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment    string // ENV: production, development, etc.
	Port           string
	LogLevel       string
	Store          string // STORE: mongo (default) or memory
	MongoURI       string
	MongoDatabase  string
	RedisURI       string // empty disables the users cache
	CacheTTL       time.Duration
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	TrustProxy     bool // read the client IP from X-Forwarded-For
	RequestTimeout time.Duration
}

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"

	defaultDatabase = "exercise-tracker"
)

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))
	mongoURI := getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/"+defaultDatabase))

	store := strings.ToLower(strings.TrimSpace(getEnv("STORE", StoreMongo)))
	if store != StoreMemory {
		store = StoreMongo
	}

	origins := parseOrigins(getEnv("ALLOWED_ORIGINS", "*"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Environment:    env,
		Port:           getEnv("PORT", "3000"),
		LogLevel:       getEnv("LOG_LEVEL", ""),
		Store:          store,
		MongoURI:       mongoURI,
		MongoDatabase:  getEnv("MONGO_DB", DatabaseFromURI(mongoURI, defaultDatabase)),
		RedisURI:       getEnv("REDIS_URI", ""),
		CacheTTL:       getDuration("CACHE_TTL", 5*time.Minute),
		AllowedOrigins: origins,
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 20),
		TrustProxy:     getBool("TRUST_PROXY", false),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 5*time.Second),
	}
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DatabaseFromURI extracts the database name from a mongodb:// or
// mongodb+srv:// connection string, or returns fallback when it has none.
func DatabaseFromURI(uri, fallback string) string {
	rest := uri
	if i := strings.Index(rest, "://"); i != -1 {
		rest = rest[i+3:]
	}
	i := strings.Index(rest, "/")
	if i == -1 {
		return fallback
	}
	name := rest[i+1:]
	if j := strings.IndexAny(name, "?#"); j != -1 {
		name = name[:j]
	}
	if name == "" {
		return fallback
	}
	return name
}

func parseOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return defaultValue
}
