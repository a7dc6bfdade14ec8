package dto

import "github.com/google/uuid"

// UserResponse is the public user summary. The password hash is never mapped
// into it; this is the only user shape that leaves the API.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
