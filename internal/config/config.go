package config

import (
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

type Config struct {
	Addr string

	DBDriver  string
	DBPath    string
	DBUser    string
	DBPass    string
	DBHost    string
	DBPort    string
	DBName    string
	DBSSLMode string

	CORSOrigins     []string
	LogLevel        string
	LogFormat       string
	DefaultCurrency string
	SeedDev         bool
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func New() Config {
	c := Config{
		Addr:            getenv("ADDR", ":8080"),
		DBDriver:        strings.ToLower(getenv("DB_DRIVER", "sqlite")),
		DBPath:          getenv("DB_PATH", "finance.db"),
		DBUser:          getenv("DB_USER", "fintrack"),
		DBPass:          getenv("DB_PASS", ""),
		DBHost:          getenv("DB_HOST", "127.0.0.1"),
		DBPort:          os.Getenv("DB_PORT"),
		DBName:          getenv("DB_NAME", "fintrack"),
		DBSSLMode:       getenv("DB_SSLMODE", "disable"),
		CORSOrigins:     splitList(getenv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:8501")),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "console"),
		DefaultCurrency: strings.ToUpper(getenv("DEFAULT_CURRENCY", "INR")),
		SeedDev:         os.Getenv("SEED_DEV") == "1",
	}
	if c.DBPort == "" {
		switch c.DBDriver {
		case "mysql":
			c.DBPort = "3306"
		case "postgres", "postgresql":
			c.DBPort = "5432"
		}
	}
	return c
}

// DSN returns the connection string for the configured driver. DB_DSN wins
// over the individual settings.
func (c Config) DSN() string {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		return dsn
	}
	switch c.DBDriver {
	case "mysql":
		return c.MySQLDSN()
	case "postgres", "postgresql":
		return c.PostgresDSN()
	}
	return c.DBPath
}

func (c Config) MySQLDSN() string {
	mc := mysql.NewConfig()
	mc.User = c.DBUser
	mc.Passwd = c.DBPass
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.DBHost, c.DBPort)
	mc.DBName = c.DBName
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// PostgresDSN builds a postgres:// URL so credentials with spaces, quotes
// or '@' survive intact.
func (c Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}, "TimeZone": {"UTC"}}.Encode(),
	}
	if c.DBPass != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPass)
	} else if c.DBUser != "" {
		u.User = url.User(c.DBUser)
	}
	return u.String()
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
