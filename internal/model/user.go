package model

import "time"

// Role is the closed set of courtroom roles. A role is assigned at signup
// and never changes afterwards.
type Role string

const (
	RolePlaintiff Role = "PLAINTIFF"
	RoleDefendant Role = "DEFENDANT"
	RoleJuror     Role = "JUROR"
	RoleJudge     Role = "JUDGE"
)

// User represents an authenticated user in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:120;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"` // stored lowercase
	PasswordHash string    `json:"-" gorm:"size:255;not null"`                 // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:20;not null;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
