package services

import "time"

const (
	KeySession      = "guess:session:%s"
	KeySessionIndex = "guess:sessions"

	TTLSession = 24 * time.Hour
)
