package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Checkout CheckoutConfig
	Logging  LoggingConfig
}

type CheckoutConfig struct {
	TestMode         bool
	MerchantID       string
	SecretKey        string
	BaseURL          string
	HTTPTimeout      time.Duration
	RequireHTTPSURLs bool
}

type LoggingConfig struct {
	Level    string
	Encoding string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("CHECKOUT_TEST_MODE", true)
	viper.SetDefault("CHECKOUT_BASE_URL", "https://api.checkout.fi")
	viper.SetDefault("CHECKOUT_HTTP_TIMEOUT", "10s")
	viper.SetDefault("CHECKOUT_REQUIRE_HTTPS_URLS", false)
	viper.SetDefault("LOG_LEVEL", "info")

	httpTimeout, err := parseDurationWithDefault(viper.GetString("CHECKOUT_HTTP_TIMEOUT"), 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKOUT_HTTP_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Checkout: CheckoutConfig{
			TestMode:         viper.GetBool("CHECKOUT_TEST_MODE"),
			MerchantID:       viper.GetString("CHECKOUT_MERCHANT_ID"),
			SecretKey:        viper.GetString("CHECKOUT_SECRET_KEY"),
			BaseURL:          viper.GetString("CHECKOUT_BASE_URL"),
			HTTPTimeout:      httpTimeout,
			RequireHTTPSURLs: viper.GetBool("CHECKOUT_REQUIRE_HTTPS_URLS"),
		},
		Logging: LoggingConfig{
			Level:    viper.GetString("LOG_LEVEL"),
			Encoding: viper.GetString("LOG_ENCODING"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.validateCheckout(); err != nil {
		return fmt.Errorf("checkout config: %w", err)
	}
	return nil
}

func (c *Config) validateCheckout() error {
	if c.Checkout.BaseURL == "" {
		return fmt.Errorf("base url is required")
	}
	if !strings.HasPrefix(c.Checkout.BaseURL, "https://") && !strings.HasPrefix(c.Checkout.BaseURL, "http://") {
		return fmt.Errorf("base url must be an http(s) url")
	}
	if c.Checkout.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be greater than 0")
	}
	if !c.Checkout.TestMode {
		if c.Checkout.MerchantID == "" {
			return fmt.Errorf("merchant id is required in live mode")
		}
		if c.Checkout.SecretKey == "" {
			return fmt.Errorf("secret key is required in live mode")
		}
	}
	return nil
}

func parseDurationWithDefault(s string, defaultVal time.Duration) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(s)
}
