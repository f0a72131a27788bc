package utils

import "time"

// AuthCacheTTL is the time-to-live for cached sessions.
const AuthCacheTTL = 10 * time.Minute

// TokenTTL is the lifetime of issued auth tokens.
const TokenTTL = 72 * time.Hour
