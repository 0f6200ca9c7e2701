package model

import (
	"time"

	"github.com/google/uuid"
)

// OwnerID is the fixed id of the single owner row. This is a single-tenant
// system: every transaction is attributed to this identity.
var OwnerID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

const (
	OwnerName = "Owner"
	RoleOwner = "owner"
)

// User is the acting identity attached to transactions. Only one row ever
// exists (the owner); there is no password and no login flow.
type User struct {
	BaseModel
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Email        string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Role         string     `gorm:"type:varchar(20);default:owner" json:"role"`
	LastSignedIn *time.Time `json:"last_signed_in,omitempty"`
}

// FallbackOwner is the degraded-mode identity returned when storage is
// unreachable, so transaction creation can still be attempted.
func FallbackOwner() *User {
	now := time.Now()
	u := &User{
		Name: OwnerName,
		Role: RoleOwner,
	}
	u.ID = OwnerID
	u.CreatedAt = now
	u.UpdatedAt = now
	u.LastSignedIn = &now
	return u
}

// UserResponse is used for API responses.
type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Role         string     `json:"role"`
	LastSignedIn *time.Time `json:"last_signed_in,omitempty"`
}

// ToResponse converts User to UserResponse.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		LastSignedIn: u.LastSignedIn,
	}
}
