package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey identifies one idempotent request: the API path it was sent
// to and the client supplied key.
type IdempotencyKey struct {
	Resource string
	Key      string
}

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

// IdempotencyRecord is stored per key while a create request runs and after
// it succeeds.
type IdempotencyRecord struct {
	Status          IdempotencyStatus `json:"status"`
	RequestBodyHash string            `json:"request_body_hash"`
	Response        json.RawMessage   `json:"response,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
