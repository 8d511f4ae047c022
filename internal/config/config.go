package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	AppEnv        string
	AppPort       string
	PublicBaseURL string

	DBDriver   string
	SQLitePath string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs         int
	SettingsCacheTTLSecs int

	UploadDir      string
	MaxUploadBytes int64

	ContractIDMaxAttempts int

	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	AdminTokenTTLMins int

	KafkaBrokers      []string
	OutboxTopicPrefix string
	OutboxRelaySecs   int
	OutboxBatchSize   int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

// Load reads ./.env when present (real env vars win) and then the environment.
func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		AppEnv:        getenv("APP_ENV", "development"),
		AppPort:       getenv("APP_PORT", "8080"),
		PublicBaseURL: strings.TrimRight(getenv("PUBLIC_BASE_URL", ""), "/"),

		DBDriver:   getenv("DB_DRIVER", DriverMySQL),
		SQLitePath: getenv("SQLITE_PATH", "bankloan.db"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "bankloan"),
		MySQLUser: getenv("MYSQL_USER", "bankloan"),
		MySQLPass: getenv("MYSQL_PASS", "bankloan"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getint("REDIS_DB", 0),

		IdempTTLSecs:         getint("IDEMPOTENCY_TTL_SECONDS", 300),
		SettingsCacheTTLSecs: getint("SETTINGS_CACHE_TTL_SECONDS", 60),

		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: int64(getint("MAX_UPLOAD_BYTES", 10<<20)),

		ContractIDMaxAttempts: getint("CONTRACT_ID_MAX_ATTEMPTS", 10),

		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         getenv("JWT_SECRET", "dev-insecure-secret-change"),
		AdminTokenTTLMins: getint("ADMIN_TOKEN_TTL_MINUTES", 480),

		OutboxTopicPrefix: getenv("OUTBOX_TOPIC_PREFIX", "bankloan."),
		OutboxRelaySecs:   getint("OUTBOX_RELAY_INTERVAL_SECONDS", 5),
		OutboxBatchSize:   getint("OUTBOX_BATCH_SIZE", 100),
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				c.KafkaBrokers = append(c.KafkaBrokers, b)
			}
		}
	}
	return c
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing SQLITE_PATH")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want mysql or sqlite)", c.DBDriver)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.UploadDir == "" {
		return errors.New("missing UPLOAD_DIR")
	}
	if c.ContractIDMaxAttempts < 1 {
		return errors.New("CONTRACT_ID_MAX_ATTEMPTS must be >= 1")
	}
	if c.IsProduction() && (c.JWTSecret == "dev-insecure-secret-change" || c.AdminPasswordHash == "") {
		return errors.New("JWT_SECRET and ADMIN_PASSWORD_HASH must be set in production")
	}
	return nil
}

func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) SettingsCacheTTL() time.Duration {
	return time.Duration(c.SettingsCacheTTLSecs) * time.Second
}

func (c *Config) AdminTokenTTL() time.Duration {
	return time.Duration(c.AdminTokenTTLMins) * time.Minute
}

func (c *Config) OutboxRelayInterval() time.Duration {
	return time.Duration(c.OutboxRelaySecs) * time.Second
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return c.SQLitePath
	}
	return c.MySQLDSN()
}
