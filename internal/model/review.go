package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewAction 活動生命週期事件
type ReviewAction string

const (
	ReviewActionSubmitted ReviewAction = "submitted"
	ReviewActionApproved  ReviewAction = "approved"
	ReviewActionRejected  ReviewAction = "rejected"
)

// ReviewNotice 透過 queue 傳給 worker 的審核通知
type ReviewNotice struct {
	EventID    uuid.UUID    `json:"event_id"`
	Action     ReviewAction `json:"action"`
	ActorEmail string       `json:"actor_email,omitempty"`
	Title      string       `json:"title,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// ReviewLogEntry 審核紀錄；活動被刪除後仍保留
type ReviewLogEntry struct {
	ID         int64        `json:"id" db:"id"`
	EventID    uuid.UUID    `json:"event_id" db:"event_id"`
	Action     ReviewAction `json:"action" db:"action"`
	ActorEmail *string      `json:"actor_email,omitempty" db:"actor_email"`
	Title      *string      `json:"title,omitempty" db:"title"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
}
