package readmodel

import (
	"github.com/google/uuid"
)

type AuthorizedUserRM struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
}
