package handler

import "time"

// ReadinessTimeout bounds the time spent in all readiness checks
const ReadinessTimeout = 2 * time.Second

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgReadinessFailed = "Readiness check failed"
)
