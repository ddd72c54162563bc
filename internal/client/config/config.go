package config

import "time"

// Config holds runtime settings for the admin console.
type Config struct {
	// ContentOrigin serves login, account and the image collections.
	ContentOrigin string
	// TransactionOrigin serves the transaction collection.
	TransactionOrigin string
	DatabasePath      string
	// RequestTimeout bounds every API call; 0 disables it.
	RequestTimeout time.Duration
}

func (c *Config) LoadDefaults() {
	c.ContentOrigin = "https://backendd-fundunity.vercel.app"
	c.TransactionOrigin = "https://backendd-fundunity.onrender.com"
	c.DatabasePath = "cmsdash.db"
	c.RequestTimeout = 0
}

// LoadConfig applies defaults, then the JSON file, then flags. Later
// sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
