package id

import "github.com/google/uuid"

// GenerateID creates an opaque unique identifier for persisted records.
func GenerateID() string {
	return uuid.NewString()
}
