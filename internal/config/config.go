package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// ConnectorNet is the network name the Cloud SQL dialer is registered under
// with the MySQL driver.
const ConnectorNet = "cloudsqlconn"

type Config struct {
	// Connection type: exactly one of these selects how the pool dials.
	InstanceConnectionName string
	InstanceHost           string
	PrivateIP              bool

	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBTimeout      string
	DBReadTimeout  string
	DBWriteTimeout string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	ReviewLockTimeout int

	Addr            string
	BaseURL         string
	CORSOrigins     []string
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout time.Duration
	// RequestTimeout is the deadline put on every request's context.
	RequestTimeout time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		InstanceConnectionName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		InstanceHost:           os.Getenv("INSTANCE_HOST"),
		PrivateIP:              os.Getenv("PRIVATE_IP") != "",

		DBPort:         getenv("DB_PORT", "3306"),
		DBName:         os.Getenv("DB_NAME"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASS"),
		DBTimeout:      getenv("DB_TIMEOUT", "5s"),
		DBReadTimeout:  getenv("DB_READ_TIMEOUT", "5s"),
		DBWriteTimeout: getenv("DB_WRITE_TIMEOUT", "5s"),

		MaxOpenConns:    atoi(getenv("DB_MAX_OPEN_CONNS", "50"), 50),
		MaxIdleConns:    atoi(getenv("DB_MAX_IDLE_CONNS", "10"), 10),
		ConnMaxLifetime: duration(getenv("DB_CONN_MAX_LIFETIME", "2h"), 2*time.Hour),

		ReviewLockTimeout: atoi(getenv("REVIEW_LOCK_TIMEOUT", "5"), 5),

		Addr:            getenv("ADDR", ":8080"),
		BaseURL:         strings.TrimRight(os.Getenv("BASE_URL"), "/"),
		CORSOrigins:     splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
		ShutdownTimeout: duration(getenv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),

		ReadHeaderTimeout: duration(getenv("READ_HEADER_TIMEOUT", "10s"), 10*time.Second),
		RequestTimeout:    duration(getenv("REQUEST_TIMEOUT", "30s"), 30*time.Second),

		LogLevel:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getenv("LOG_FORMAT", "text")),
	}
}

// Validate fails fast when the pool cannot be built from this configuration.
func (c Config) Validate() error {
	if c.InstanceConnectionName == "" && c.InstanceHost == "" {
		return errors.New("missing database connection type: define INSTANCE_CONNECTION_NAME or INSTANCE_HOST")
	}
	for _, kv := range [][2]string{{"DB_USER", c.DBUser}, {"DB_PASS", c.DBPassword}, {"DB_NAME", c.DBName}} {
		if kv[1] == "" {
			return errors.Errorf("missing required environment variable %s", kv[0])
		}
	}
	return nil
}

// UseConnector reports whether the pool dials through the Cloud SQL connector.
func (c Config) UseConnector() bool { return c.InstanceConnectionName != "" }

func (c Config) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.DBUser
	cfg.Passwd = c.DBPassword
	cfg.DBName = c.DBName
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	if c.UseConnector() {
		// The address is ignored by the registered dialer.
		cfg.Net = ConnectorNet
		cfg.Addr = "localhost:3306"
	} else {
		cfg.Net = "tcp"
		cfg.Addr = c.InstanceHost + ":" + c.DBPort
	}
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	cfg.Params["charset"] = "utf8mb4"
	cfg.Params["timeout"] = c.DBTimeout
	cfg.Params["readTimeout"] = c.DBReadTimeout
	cfg.Params["writeTimeout"] = c.DBWriteTimeout
	return cfg.FormatDSN()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func duration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
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
