package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Migration MigrationConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Pricing   PricingConfig
	Sweeper   SweeperConfig
	Redis     RedisConfig
	Tracing   TracingConfig
	Admin     AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type MigrationConfig struct {
	OnStart bool `envconfig:"MIGRATE_ON_START" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Admin-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"1h"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// PricingConfig feeds pricing.NewPolicy. Table keys are house counts, values are prices.
type PricingConfig struct {
	Table           map[int]int `envconfig:"PRICING_TABLE" default:"1:10,2:20,3:30,4:40,5:40,6:48,7:56,8:64,9:72,10:80,15:120,20:160,25:200,30:240,35:280,40:320,45:360,50:400"`
	PerUnitRate     int         `envconfig:"PRICING_PER_UNIT_RATE" default:"8"`
	MinDurationDays int         `envconfig:"PRICING_MIN_DURATION_DAYS" default:"1"`
	MaxQuantity     int         `envconfig:"PRICING_MAX_QUANTITY" default:"100"`
}

type SweeperConfig struct {
	Enabled  bool   `envconfig:"SWEEPER_ENABLED" default:"true"`
	Schedule string `envconfig:"SWEEPER_SCHEDULE" default:"@every 5m"`
}

type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	AreaTTL  time.Duration `envconfig:"REDIS_AREA_TTL" default:"10m"`
}

type TracingConfig struct {
	Enabled     bool   `envconfig:"TRACING_ENABLED" default:"false"`
	Endpoint    string `envconfig:"TRACING_ENDPOINT" default:"http://localhost:14268/api/traces"`
	ServiceName string `envconfig:"TRACING_SERVICE_NAME" default:"roomfinder"`
	Environment string `envconfig:"TRACING_ENVIRONMENT" default:"development"`
}

type AdminConfig struct {
	Token string `envconfig:"ADMIN_TOKEN" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func DefaultPricingTable() map[int]int {
	return map[int]int{
		1: 10, 2: 20, 3: 30, 4: 40, 5: 40, 6: 48, 7: 56, 8: 64, 9: 72, 10: 80,
		15: 120, 20: 160, 25: 200, 30: 240, 35: 280, 40: 320, 45: 360, 50: 400,
	}
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-unit-tests-only",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "24h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Pricing: PricingConfig{
			Table:           DefaultPricingTable(),
			PerUnitRate:     8,
			MinDurationDays: 1,
			MaxQuantity:     100,
		},
		Sweeper: SweeperConfig{
			Enabled:  false,
			Schedule: "@every 5m",
		},
		Tracing: TracingConfig{
			ServiceName: "roomfinder-test",
			Environment: "test",
		},
		Admin: AdminConfig{
			Token: "test-admin-token",
		},
	}
}
