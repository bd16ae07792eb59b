package models

import (
	"strings"

	"github.com/google/uuid"
)

func GenerateSessionID() string {
	return uuid.New().String()
}

// ValidSessionID reports whether id was produced by GenerateSessionID.
func ValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && strings.Count(id, "-") == 4
}
