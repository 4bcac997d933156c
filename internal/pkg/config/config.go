package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, gateway keys), security settings
// - default: Values common across all environments (timezone, currency, caps), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	Redis        RedisConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Cookie       CookieConfig
	Checkout     CheckoutConfig
	Razorpay     RazorpayConfig
	Stripe       StripeConfig
	Mail         MailConfig
	Credit       CreditConfig
	ExchangeRate ExchangeRateConfig
	Jobs         JobsConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Stripe-Signature,X-Job-Token"`
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
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type CheckoutConfig struct {
	Currency          string `envconfig:"CURRENCY" default:"INR"`
	MinorUnitValue    int64  `envconfig:"CURRENCY_SMALLEST_UNIT_VALUE" default:"100"`
	CreditCapPercent  string `envconfig:"CHECKOUT_CREDIT_CAP_PERCENT" default:"10"`
	WindowPolicy      string `envconfig:"CHECKOUT_WINDOW_POLICY" default:"strict"`
	GatewayTimeoutSec int    `envconfig:"CHECKOUT_GATEWAY_TIMEOUT_SEC" default:"15"`
}

type RazorpayConfig struct {
	KeyID          string `envconfig:"RAZORPAY_KEY_ID"`
	KeySecret      string `envconfig:"RAZORPAY_KEY_SECRET"`
	SuccessPageURL string `envconfig:"RAZORPAY_PAYMENT_SUCCESS_PAGE_URL" default:"http://localhost:3000/payment/success"`
}

type StripeConfig struct {
	SecretKey      string `envconfig:"STRIPE_SECRET_KEY"`
	WebhookSecret  string `envconfig:"STRIPE_WEBHOOK_SECRET"`
	SuccessPageURL string `envconfig:"STRIPE_PAYMENT_SUCCESS_PAGE_URL" default:"http://localhost:3000/payment/success"`
	CancelPageURL  string `envconfig:"STRIPE_PAYMENT_CANCEL_PAGE_URL" default:"http://localhost:3000/payment/cancel"`
}

type MailConfig struct {
	Enabled      bool   `envconfig:"MAIL_ENABLED" default:"false"`
	Host         string `envconfig:"SMTP_HOST" default:"localhost"`
	Port         int    `envconfig:"SMTP_PORT" default:"587"`
	Username     string `envconfig:"SMTP_USERNAME"`
	Password     string `envconfig:"SMTP_PASSWORD"`
	From         string `envconfig:"MAIL_FROM" default:"no-reply@localhost"`
	OperatorAddr string `envconfig:"DOMAIN_EMAIL" default:"admin@localhost"`
	TeamName     string `envconfig:"MAIL_TEAM_NAME" default:"The Course Team"`
	VerifyURL    string `envconfig:"VERIFY_EMAIL_URL" default:"http://localhost:3000/verify-email"`
}

type CreditConfig struct {
	DefaultAmount     string `envconfig:"DEFAULT_INCASH_AMOUNT" default:"500"`
	DefaultExpiryDays int    `envconfig:"DEFAULT_INCASH_EXPIRY_DAYS" default:"90"`
}

type ExchangeRateConfig struct {
	APIURL   string        `envconfig:"EXCHANGE_RATE_API_URL" default:"https://v6.exchangerate-api.com/v6/latest/USD"`
	CacheTTL time.Duration `envconfig:"EXCHANGE_RATE_CACHE_TTL" default:"24h"`
	Timeout  time.Duration `envconfig:"EXCHANGE_RATE_TIMEOUT" default:"10s"`
}

type JobsConfig struct {
	Token string `envconfig:"JOB_TOKEN" required:"true"`
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
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Redis: RedisConfig{URL: "redis://localhost:16379/0"},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{SameSite: "Lax"},
		Checkout: CheckoutConfig{
			Currency:          "INR",
			MinorUnitValue:    100,
			CreditCapPercent:  "10",
			WindowPolicy:      "strict",
			GatewayTimeoutSec: 5,
		},
		Razorpay: RazorpayConfig{
			KeyID:          "rzp_test_key",
			KeySecret:      "rzp_test_secret",
			SuccessPageURL: "http://localhost/success",
		},
		Stripe: StripeConfig{
			SecretKey:      "sk_test_key",
			WebhookSecret:  "whsec_test",
			SuccessPageURL: "http://localhost/success",
			CancelPageURL:  "http://localhost/cancel",
		},
		Mail: MailConfig{
			From:         "no-reply@example.com",
			OperatorAddr: "ops@example.com",
			TeamName:     "Test Team",
			VerifyURL:    "http://localhost/verify-email",
		},
		Credit: CreditConfig{
			DefaultAmount:     "500",
			DefaultExpiryDays: 90,
		},
		ExchangeRate: ExchangeRateConfig{
			CacheTTL: time.Hour,
			Timeout:  time.Second,
		},
		Jobs: JobsConfig{Token: "job-token"},
	}
}
