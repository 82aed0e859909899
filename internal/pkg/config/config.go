package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, credentials, etc.)
// - default: Values common across all environments (timezone, intervals, etc.)
// - optional: Collaborator credentials. Adapters fail closed with a configuration
//   error on first use and /api/health reports what is missing.
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        LogConfig
	Google     GoogleConfig
	Stripe     StripeConfig
	Mail       MailConfig
	Directory  DirectoryConfig
	Settlement SettlementConfig
	Reconcile  ReconcileConfig
	MQ         MQConfig
	DB         DBConfig
	Admin      AdminConfig
	Tracing    TracingConfig
}

type ServerConfig struct {
	Port      string `envconfig:"PORT" default:"3001"`
	PublicURL string `envconfig:"PUBLIC_URL" default:"http://localhost:3000"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Madrid"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type GoogleConfig struct {
	ServiceAccountEmail string `envconfig:"GOOGLE_SERVICE_ACCOUNT_EMAIL"`
	PrivateKey          string `envconfig:"GOOGLE_PRIVATE_KEY"`
	SpreadsheetID       string `envconfig:"SPREADSHEET_ID"`
	SheetName           string `envconfig:"SHEET_NAME" default:"Bookings"`
	DefaultCalendarID   string `envconfig:"GOOGLE_CALENDAR_ID"`
}

// PEMKey restores newlines that were escaped to fit the key into one env line.
func (c GoogleConfig) PEMKey() []byte {
	return []byte(strings.ReplaceAll(c.PrivateKey, `\n`, "\n"))
}

func (c GoogleConfig) Configured() bool {
	return c.ServiceAccountEmail != "" && c.PrivateKey != ""
}

type StripeConfig struct {
	SecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	WebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
	Currency      string `envconfig:"STRIPE_CURRENCY" default:"eur"`
	SuccessPath   string `envconfig:"STRIPE_SUCCESS_PATH" default:"/booking-success?session_id={CHECKOUT_SESSION_ID}"`
	CancelPath    string `envconfig:"STRIPE_CANCEL_PATH" default:"/"`
}

type MailConfig struct {
	Host       string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	Port       int    `envconfig:"SMTP_PORT" default:"587"`
	User       string `envconfig:"EMAIL_USER"`
	Password   string `envconfig:"EMAIL_PASSWORD"`
	FromName   string `envconfig:"EMAIL_FROM_NAME" default:"Tutorly Booking"`
	AdminEmail string `envconfig:"ADMIN_EMAIL"`
}

func (c MailConfig) Configured() bool {
	return c.User != "" && c.Password != ""
}

type DirectoryConfig struct {
	Path string `envconfig:"TUTOR_DIRECTORY_FILE" default:"config/directory.yaml"`
}

type SettlementConfig struct {
	LockTTL       time.Duration `envconfig:"SETTLEMENT_LOCK_TTL" default:"5m"`
	SweepInterval time.Duration `envconfig:"SETTLEMENT_SWEEP_INTERVAL" default:"1m"`
	LeadTime      time.Duration `envconfig:"BOOKING_LEAD_TIME" default:"24h"`
	TimeZone      string        `envconfig:"BOOKING_TIMEZONE" default:"Europe/Madrid"`
}

func (c SettlementConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

type ReconcileConfig struct {
	Enabled      bool          `envconfig:"RECONCILE_ENABLED" default:"true"`
	PollInterval time.Duration `envconfig:"RECONCILE_POLL_INTERVAL" default:"1m"`
	Lookback     time.Duration `envconfig:"RECONCILE_LOOKBACK" default:"1h"`
}

type MQConfig struct {
	URL      string `envconfig:"RABBIT_URL"`
	Exchange string `envconfig:"BOOKING_EXCHANGE" default:"booking.exchange"`
	Queue    string `envconfig:"FANOUT_QUEUE" default:"tutor-fanout.q"`
}

func (c MQConfig) Enabled() bool {
	return c.URL != ""
}

type DBConfig struct {
	DSN string `envconfig:"DB_DSN"`
}

func (c DBConfig) Enabled() bool {
	return c.DSN != ""
}

type AdminConfig struct {
	JWTSecret string        `envconfig:"ADMIN_JWT_SECRET"`
	TokenTTL  time.Duration `envconfig:"ADMIN_TOKEN_TTL" default:"12h"`
}

type TracingConfig struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"tutor-booking"`
	Environment string `envconfig:"ENV" default:"dev"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:      "8889", // Test port
			PublicURL: "http://localhost:3000",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Madrid",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Stripe: StripeConfig{
			Currency:    "eur",
			SuccessPath: "/booking-success?session_id={CHECKOUT_SESSION_ID}",
			CancelPath:  "/",
		},
		Settlement: SettlementConfig{
			LockTTL:       5 * time.Minute,
			SweepInterval: time.Minute,
			LeadTime:      24 * time.Hour,
			TimeZone:      "Europe/Madrid",
		},
		Reconcile: ReconcileConfig{
			Enabled:      false,
			PollInterval: time.Minute,
			Lookback:     time.Hour,
		},
		Admin: AdminConfig{
			JWTSecret: "test-admin-secret",
			TokenTTL:  time.Hour,
		},
	}
}
