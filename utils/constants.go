// File: utils/constants.go
package utils

import "time"

// AuthSessionPrefix is the prefix used for Redis session keys.
const AuthSessionPrefix = "authSession:"

// LoggerContextKey is the gin context key holding the request-scoped *zap.Logger.
const LoggerContextKey = "logger"

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// HealthCheckInterval is how often the session store is pinged.
const HealthCheckInterval = 60 * time.Second
