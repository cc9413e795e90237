package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DestinationSheets = "sheets"
	DestinationXlsx   = "xlsx"

	TokenStoreFile  = "file"
	TokenStoreRedis = "redis"
)

type Config struct {
	LogLevel string   `env:"LOG_LEVEL" envDefault:"info"`
	Timezone string   `env:"TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`
	Symbols  []string `env:"SYMBOLS" envSeparator:"," envDefault:"nvl,tvn,ksb"`
	API      API
	Sheets   Sheets
	Auth     Auth
	Redis    Redis
	Server   Server
	Jobs     Jobs
	Telegram Telegram
}

type API struct {
	Debug      bool          `env:"API_DEBUG" envDefault:"false"`
	Timeout    time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	Provider   string        `env:"QUOTE_PROVIDER" envDefault:"tcbs"`
	TcbsApi    TcbsApi
	MoexApi    MoexApi
	PolygonApi PolygonApi
}

type TcbsApi struct {
	Url string `env:"TCBS_API_URL" envDefault:"https://apipubaws.tcbs.com.vn"`
}

type MoexApi struct {
	Url string `env:"MOEX_API_URL" envDefault:"https://iss.moex.com"`
}

type PolygonApi struct {
	ApiKey string `env:"POLYGON_API_KEY" envDefault:""`
}

type Sheets struct {
	Destination   string `env:"DESTINATION" envDefault:"sheets"`
	SpreadsheetID string `env:"SPREADSHEET_ID" envDefault:""`
	Range         string `env:"SHEETS_RANGE" envDefault:"livePrice"`
	XlsxPath      string `env:"XLSX_PATH" envDefault:"quotes.xlsx"`
}

type Auth struct {
	// CredentialsJSON takes precedence over CredentialsFile when set.
	CredentialsJSON string `env:"GCP_CREDENTIALS_JSON_CONTENT" envDefault:""`
	CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" envDefault:"credentials.json"`
	TokenStore      string `env:"TOKEN_STORE" envDefault:"file"`
	TokenFile       string `env:"GOOGLE_TOKEN_FILE" envDefault:"token.json"`
	TokenRedisKey   string `env:"TOKEN_REDIS_KEY" envDefault:"quotes_sheet_sync:google_token"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Server struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Jobs struct {
	// SyncCrontab is empty when the sync is triggered only over HTTP.
	SyncCrontab string `env:"SYNC_CRONTAB" envDefault:""`
}

type Telegram struct {
	Token  string `env:"TELEGRAM_TOKEN" envDefault:""`
	ChatID int64  `env:"TELEGRAM_CHAT_ID" envDefault:"0"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg, err := Load()
	if err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}

func Load() (*Config, error) {
	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location falls back to UTC when the timezone can't be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
