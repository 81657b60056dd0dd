package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tfdeleon/bdnetworking/internal/domain"
	"github.com/tfdeleon/bdnetworking/pkg/types"
)

// Config is the service configuration loaded from config.toml.
// String values support ${ENV_VAR} placeholders so secrets can stay
// out of the file.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Booking   BookingConfig   `toml:"booking"`
	Calendar  CalendarConfig  `toml:"google_calendar"`
	Recaptcha RecaptchaConfig `toml:"recaptcha"`
	Mailer    MailerConfig    `toml:"mailer"`
	Database  DatabaseConfig  `toml:"database"`
	Metrics   MetricsConfig   `toml:"metrics"`
	CORS      CORSConfig      `toml:"cors"`
	Admin     AdminConfig     `toml:"admin"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// BookingConfig is the working-hours policy. It is configuration, not
// hard-coded logic: start, end, granularity and zone can all vary.
type BookingConfig struct {
	WorkStart           string `toml:"work_start"`
	WorkEnd             string `toml:"work_end"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	Timezone            string `toml:"timezone"`
}

type CalendarConfig struct {
	CalendarID   string `toml:"calendar_id"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURL  string `toml:"redirect_url"`
	TokensJSON   string `toml:"tokens_json"`
	Timeout      int    `toml:"timeout"`
}

type RecaptchaConfig struct {
	Enabled   bool   `toml:"enabled"`
	SecretKey string `toml:"secret_key"`
	VerifyURL string `toml:"verify_url"`
	Timeout   int    `toml:"timeout"`
}

type MailerConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

type AdminConfig struct {
	Token string `toml:"token"`
}

// Load reads, env-expands and validates the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Support ${ENV_VAR} placeholders for secrets.
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := toml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 3001
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Booking.WorkStart == "" {
		c.Booking.WorkStart = domain.DefaultWorkStart
	}
	if c.Booking.WorkEnd == "" {
		c.Booking.WorkEnd = domain.DefaultWorkEnd
	}
	if c.Booking.SlotDurationMinutes == 0 {
		c.Booking.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = domain.DefaultTimezone
	}
	if c.Calendar.CalendarID == "" {
		c.Calendar.CalendarID = "primary"
	}
	if c.Calendar.Timeout == 0 {
		c.Calendar.Timeout = 10
	}
	if c.Recaptcha.VerifyURL == "" {
		c.Recaptcha.VerifyURL = "https://www.google.com/recaptcha/api/siteverify"
	}
	if c.Recaptcha.Timeout == 0 {
		c.Recaptcha.Timeout = 5
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "bdnetworking_booking"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
}

func (c *Config) validate() error {
	if _, err := c.WorkingHours(); err != nil {
		return err
	}
	if c.Recaptcha.Enabled && c.Recaptcha.SecretKey == "" {
		return fmt.Errorf("config: recaptcha enabled but secret_key is empty")
	}
	if c.Mailer.Enabled && (c.Mailer.Host == "" || c.Mailer.From == "") {
		return fmt.Errorf("config: mailer enabled but host/from are not set")
	}
	if c.Database.Enabled && c.Database.DBName == "" {
		return fmt.Errorf("config: database enabled but dbname is empty")
	}
	return nil
}

// WorkingHours builds the domain policy from the booking section.
func (c *Config) WorkingHours() (domain.WorkingHours, error) {
	loc, err := time.LoadLocation(c.Booking.Timezone)
	if err != nil {
		return domain.WorkingHours{}, fmt.Errorf("config: load timezone %q: %w", c.Booking.Timezone, err)
	}

	policy := domain.WorkingHours{
		Start:               types.TimeString(c.Booking.WorkStart),
		End:                 types.TimeString(c.Booking.WorkEnd),
		SlotDurationMinutes: c.Booking.SlotDurationMinutes,
		Location:            loc,
	}
	if err := policy.Validate(); err != nil {
		return domain.WorkingHours{}, fmt.Errorf("config: %w", err)
	}
	return policy, nil
}

// DSN builds the Postgres connection string for the journal database.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
