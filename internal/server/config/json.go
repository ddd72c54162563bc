package config

import (
	"encoding/json"
	"os"

	"github.com/fundunity/cmsdash/internal/flagx"
	"github.com/fundunity/cmsdash/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "1h" or
// integer nanoseconds.
type JsonConfig struct {
	HTTPAddr              string          `json:"http_addr"`
	DatabaseDSN           *string         `json:"database_dsn"`
	SecretKey             string          `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	ImageStore            string          `json:"image_store"`
	UploadDir             string          `json:"upload_dir"`
	PublicBaseURL         string          `json:"public_base_url"`
	S3RootUser            string          `json:"s3_root_user"`
	S3RootPassword        string          `json:"s3_root_password"`
	S3Bucket              string          `json:"s3_bucket"`
	S3Region              string          `json:"s3_region"`
	S3BaseEndpoint        string          `json:"s3_base_endpoint"`
	AdminEmail            string          `json:"admin_email"`
	AdminPassword         string          `json:"admin_password"`
	MaxImageWidth         int             `json:"max_image_width"`
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson overlays Config with the file given by -c/-config. Keys that
// are absent keep their current value; read or decode errors panic.
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

	setIf(&cfg.HTTPAddr, jc.HTTPAddr)
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	setIf(&cfg.SecretKey, jc.SecretKey)
	if jc.TokenValidityDuration != nil {
		cfg.TokenValidityDuration = jc.TokenValidityDuration.Duration
	}
	setIf(&cfg.ImageStore, jc.ImageStore)
	setIf(&cfg.UploadDir, jc.UploadDir)
	setIf(&cfg.PublicBaseURL, jc.PublicBaseURL)
	setIf(&cfg.S3RootUser, jc.S3RootUser)
	setIf(&cfg.S3RootPassword, jc.S3RootPassword)
	setIf(&cfg.S3Bucket, jc.S3Bucket)
	setIf(&cfg.S3Region, jc.S3Region)
	setIf(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setIf(&cfg.AdminEmail, jc.AdminEmail)
	setIf(&cfg.AdminPassword, jc.AdminPassword)
	if jc.MaxImageWidth > 0 {
		cfg.MaxImageWidth = jc.MaxImageWidth
	}
}
