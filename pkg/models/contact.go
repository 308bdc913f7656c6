package models

import "time"

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Forwarded bool      `json:"forwarded"`
	CreatedAt time.Time `json:"created_at"`
}
