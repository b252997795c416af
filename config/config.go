package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Mail transports understood by the notifier
const (
	TransportSMTP     = "smtp"
	TransportSendGrid = "sendgrid"
)

// DefaultQueryTimeout bounds each database call when QUERY_TIMEOUT is unset
const DefaultQueryTimeout = 10 * time.Second

// Config holds the project config values
type Config struct {
	Env          string        `env:"ENV" envDefault:"local" validate:"oneof=local development production"`
	DatabaseURL  string        `env:"DB_URI" validate:"required"`
	DatabaseName string        `env:"DB_NAME" validate:"required"`
	Collection   string        `env:"MODERATOR_CODES_COLLECTION" envDefault:"moderatorCodes"`
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" validate:"gt=0"`
	// StrictExit makes a failed store or mail call exit non-zero.
	// Off by default, matching the historical behavior of always exiting 0.
	StrictExit bool `env:"STRICT_EXIT" envDefault:"false"`
	Mail       MailConfig
}

// MailConfig holds the sender identity and the credentials of the selected transport
type MailConfig struct {
	Transport      string `env:"MAIL_TRANSPORT" envDefault:"smtp" validate:"oneof=smtp sendgrid"`
	From           string `env:"MAIL_FROM" validate:"required,email"`
	FromName       string `env:"MAIL_FROM_NAME" envDefault:"Community Contribution Platform"`
	SMTPHost       string `env:"SMTP_HOST" envDefault:"smtp.gmail.com" validate:"required_if=Transport smtp"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587" validate:"required_if=Transport smtp"`
	SMTPUsername   string `env:"SMTP_USERNAME" validate:"required_if=Transport smtp"`
	SMTPPassword   string `env:"SMTP_PASSWORD" validate:"required_if=Transport smtp"`
	SendGridAPIKey string `env:"SENDGRID_API_KEY" validate:"required_if=Transport sendgrid"`
}

// New sets up all config related services. Values come from the environment,
// optionally seeded from a .env file in the working directory.
func New() (*Config, error) {
	dotenvErr := godotenv.Load()

	conf := Config{QueryTimeout: DefaultQueryTimeout}
	if err := env.Parse(&conf); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	//setup zap logger and replace default logger
	if _, err := setLogger(conf.Env); err != nil {
		return nil, err
	}
	if dotenvErr != nil {
		zap.S().Debugw("no .env file loaded, relying on process environment", "error", dotenvErr)
	}

	if err := Validate(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks that every value the selected transport needs is present
func Validate(conf *Config) error {
	err := validator.New().Struct(conf)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]error, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Errorf("%s failed %q validation", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("invalid configuration: %w", errors.Join(msgs...))
	}
	return fmt.Errorf("invalid configuration: %w", err)
}
