package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles. Admins can do everything; content editors manage perks, posts,
// pages and media but not users or settings.
const (
	RoleAdmin         = "admin"
	RoleContentEditor = "content_editor"
	RoleUser          = "user"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
