package model

import (
	"time"

	"github.com/google/uuid"
)

// Registration 使用者報名紀錄，(event_id, user_id) 唯一
type Registration struct {
	ID        uuid.UUID `json:"id" db:"id"`
	EventID   uuid.UUID `json:"event_id" db:"event_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RegistrationResponse 報名回應
type RegistrationResponse struct {
	Success bool      `json:"success"`
	ID      uuid.UUID `json:"id"`
}
