package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups articles under a unique name. Categories are optional:
// an article may reference one or none.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
