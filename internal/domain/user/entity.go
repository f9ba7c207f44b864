package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleJobSeeker = "job_seeker"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusSuspended = "suspended"
	StatusBanned    = "banned"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
}

func ValidRole(role string) bool {
	switch role {
	case RoleJobSeeker, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusSuspended, StatusBanned:
		return true
	}
	return false
}
