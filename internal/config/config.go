package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strings"
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
	Env                  string        // application environment (e.g. "dev", "production")
	Port                 string        // HTTP port to listen on
	BcryptCost           int           // bcrypt cost for password hashing
	SessionTTL           time.Duration // lifetime of a login session
	SessionSweepInterval time.Duration // how often expired sessions are reclaimed
	TicketPriceCents     int64         // fixed unit price of a screening ticket
	SeedDemo             bool          // load demo accounts and films at start-up
	LogLevel             string        // zap level name
	LogDev               bool          // human-readable development logging
	RabbitURL            string        // broker URL; empty disables ticket events
	TicketConsumer       bool          // run the ticket.purchased consumer in-process
	TicketLogDir         string        // directory of the consumer's tickets.log
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	env := must("APP_ENV")
	return Config{
		Env:                  env,
		Port:                 must("APP_PORT"),
		BcryptCost:           envInt("BCRYPT_COST", 10),
		SessionTTL:           envDur("SESSION_TTL", 24*time.Hour),
		SessionSweepInterval: envDur("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		TicketPriceCents:     int64(envInt("TICKET_PRICE_CENTS", 1500)),
		SeedDemo:             envBool("SEED_DEMO", !isProduction(env)),
		LogLevel:             envStr("LOG_LEVEL", ""),
		LogDev:               envBool("LOG_DEV", false),
		RabbitURL:            rabbitURL(),
		TicketConsumer:       envBool("TICKET_CONSUMER_ENABLED", false),
		TicketLogDir:         envStr("TICKET_LOG_DIR", "logs"),
	}
}

// Production reports whether the service runs in a production
// environment.  Cookies are only marked Secure there.
func (c Config) Production() bool { return isProduction(c.Env) }

func isProduction(env string) bool {
	switch strings.ToLower(env) {
	case "prod", "production":
		return true
	}
	return false
}

// rabbitURL accepts the AMQP_URL spelling as well.
func rabbitURL() string {
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		return v
	}
	return os.Getenv("AMQP_URL")
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
