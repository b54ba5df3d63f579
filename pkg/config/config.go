package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env and optionally a file).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Session SessionConfig
	State   StateConfig
	Sim     SimConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig settings for the HTTP server.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SessionConfig settings for the persisted session token.
type SessionConfig struct {
	Secret   string
	Issuer   string
	TTLHours int
}

// TTL returns the token lifetime as a duration.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// StateConfig settings for durable client-side state records.
type StateConfig struct {
	Dir string // directory holding <namespace>.json files
}

// SimConfig delays for the simulated external calls (login, register, payment).
// Zero disables the delay; tests inject their own wait function anyway.
type SimConfig struct {
	LoginDelayMS    int
	RegisterDelayMS int
	PaymentDelayMS  int
}

// LoginDelay returns the simulated login latency.
func (c SimConfig) LoginDelay() time.Duration {
	return time.Duration(c.LoginDelayMS) * time.Millisecond
}

// RegisterDelay returns the simulated registration latency.
func (c SimConfig) RegisterDelay() time.Duration {
	return time.Duration(c.RegisterDelayMS) * time.Millisecond
}

// PaymentDelay returns the simulated payment-processing latency.
func (c SimConfig) PaymentDelay() time.Duration {
	return time.Duration(c.PaymentDelayMS) * time.Millisecond
}

// Load reads configuration from environment variables (and optionally a file).
// Env vars take priority. Expected names: APP_ENV, HTTP_PORT, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional: config file (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore error when the file does not exist

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "aplusmed-marketplace"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Session: SessionConfig{
			Secret:   getString(v, "SESSION_SECRET", "dev-only-secret"),
			Issuer:   getString(v, "SESSION_ISSUER", "aplusmed-marketplace"),
			TTLHours: getInt(v, "SESSION_TTL_HOURS", 24*7),
		},
		State: StateConfig{
			Dir: getString(v, "STATE_DIR", "./state"),
		},
		Sim: SimConfig{
			LoginDelayMS:    getInt(v, "SIM_LOGIN_DELAY_MS", 800),
			RegisterDelayMS: getInt(v, "SIM_REGISTER_DELAY_MS", 1000),
			PaymentDelayMS:  getInt(v, "SIM_PAYMENT_DELAY_MS", 2000),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
