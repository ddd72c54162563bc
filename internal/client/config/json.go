package config

import (
	"encoding/json"
	"os"

	"github.com/fundunity/cmsdash/internal/flagx"
	"github.com/fundunity/cmsdash/internal/timex"
)

// JsonConfig is the on-disk form of Config.
type JsonConfig struct {
	ContentOrigin     string          `json:"content_origin"`
	TransactionOrigin string          `json:"transaction_origin"`
	DatabasePath      string          `json:"database_path"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with the file named by -c/-config, if any. Absent
// keys keep their current value. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ContentOrigin != "" {
		cfg.ContentOrigin = jc.ContentOrigin
	}
	if jc.TransactionOrigin != "" {
		cfg.TransactionOrigin = jc.TransactionOrigin
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
