package entity

import (
	"encoding/json"
	"time"
)

// User cuenta de un miembro del hogar. Username es único; PasswordHash es
// bcrypt y nunca sale en respuestas.
type User struct {
	ID           string
	Username     string
	DisplayName  string
	Email        *string
	PasswordHash string
	Avatar       *string
	Preferences  json.RawMessage
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
