package model

import "time"

type AlertType string

const (
	AlertSuccess AlertType = "success"
	AlertWarning AlertType = "warning"
	AlertError   AlertType = "error"
)

type Alert struct {
	Type           AlertType `json:"type"`
	Message        string    `json:"message"`
	DismissAfterMS int64     `json:"dismiss_after_ms"`
	CreatedAt      time.Time `json:"created_at"`
}
