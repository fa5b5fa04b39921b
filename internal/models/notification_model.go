package models

import "time"

const (
	NotificationInfo  = "info"
	NotificationError = "error"
)

type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
