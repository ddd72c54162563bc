// Package config loads runtime configuration for the admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   content API origin (login, account, image collections)
//	-x string   transaction API origin
//	-d string   path of the local SQLite database
//	-t int      request timeout in seconds, 0 for none
//
// # JSON schema
//
// Durations are timex.Duration values, either "3s" or integer nanoseconds:
//
//	{
//	  "content_origin": "https://backendd-fundunity.vercel.app",
//	  "transaction_origin": "https://backendd-fundunity.onrender.com",
//	  "database_path": "cmsdash.db",
//	  "request_timeout": "30s"
//	}
package config
