package common

import (
	"time"

	"github.com/google/uuid"
)

// GenerateUUID returns a new random UUID string.
func GenerateUUID() string {
	return uuid.New().String()
}

// SubmissionTimestamp formats t the way the recipe store records it.
func SubmissionTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
