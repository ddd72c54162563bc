package config

import (
	"flag"
	"os"
	"time"

	"github.com/fundunity/cmsdash/internal/flagx"
)

// parseFlags populates Config from command-line flags.
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN, empty for in-memory storage
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-m string   image store: local or s3
//	-l string   upload directory of the local image store
//	-p string   public base URL of served images
//	-u string   S3 root user
//	-w string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-ae string  admin email seeded at startup
//	-ap string  admin password seeded at startup
//	-iw int     maximum stored image width in pixels
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-s", "-t", "-m", "-l", "-p", "-u", "-w", "-b", "-g", "-e", "-ae", "-ap", "-iw",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")

	fs.StringVar(&config.ImageStore, "m", config.ImageStore, "image store (local|s3)")
	fs.StringVar(&config.UploadDir, "l", config.UploadDir, "upload directory")
	fs.StringVar(&config.PublicBaseURL, "p", config.PublicBaseURL, "public base URL")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "w", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.AdminEmail, "ae", config.AdminEmail, "admin email")
	fs.StringVar(&config.AdminPassword, "ap", config.AdminPassword, "admin password")
	fs.IntVar(&config.MaxImageWidth, "iw", config.MaxImageWidth, "max image width (px)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}
