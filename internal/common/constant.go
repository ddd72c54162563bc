package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token inside the Authorization header.
	BearerPrefix = "Bearer "

	// MaxImageSize is the largest image accepted for upload (5 MiB).
	MaxImageSize = 5 * 1024 * 1024
)
