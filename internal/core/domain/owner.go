package domain

import "github.com/google/uuid"

// OwnerProfile is read-only input to report rendering. It is never sent
// to the text-generation collaborator.
type OwnerProfile struct {
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	DateOfBirth string    `json:"date_of_birth"`
	Address     string    `json:"address"`
	Email       string    `json:"email"`
}
