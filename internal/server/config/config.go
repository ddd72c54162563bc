// Package config handles configuration of the content API server:
// defaults, JSON overlay and command-line flags.
package config

import "time"

// Image store kinds.
const (
	ImageStoreLocal = "local"
	ImageStoreS3    = "s3"
)

// Config holds runtime settings for the content API.
//
// Fields:
//   - HTTPAddr: bind address of the HTTP listener.
//   - DatabaseDSN: PostgreSQL DSN (pgx); empty keeps everything in memory.
//   - SecretKey: HMAC secret for signing JWTs (HS256).
//   - TokenValidityDuration: lifetime of issued tokens.
//   - ImageStore: "local" (files under UploadDir) or "s3".
//   - PublicBaseURL: prefix of image URLs handed to clients.
//   - S3*: settings of the S3-compatible backend.
//   - AdminEmail / AdminPassword: account created at startup if missing.
//   - MaxImageWidth: wider uploads are scaled down.
type Config struct {
	HTTPAddr              string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	ImageStore            string
	UploadDir             string
	PublicBaseURL         string
	S3RootUser            string
	S3RootPassword        string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
	AdminEmail            string
	AdminPassword         string
	MaxImageWidth         int
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret and admin password must be overridden in production.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.ImageStore = ImageStoreLocal
	c.UploadDir = "uploads"
	c.PublicBaseURL = "http://localhost:8080"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "content"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.AdminEmail = "admin@fundunity.id"
	c.AdminPassword = "admin123"
	c.MaxImageWidth = 1920
}

// LoadConfig applies defaults, the optional JSON file and flags, in that
// order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
