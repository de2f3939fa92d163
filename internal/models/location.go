package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationDB represents a saved location record in the database
type LocationDB struct {
	LocationID uuid.UUID `json:"id" db:"location_id"`        // Primary key
	OwnerID    uuid.UUID `json:"ownerId" db:"owner_id"`      // Owning user
	Title      string    `json:"title" db:"title"`           // Label for the place
	Location   string    `json:"location" db:"location"`     // Free-text address or place description
	Tag        string    `json:"tag" db:"tag"`               // Optional user-defined category
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`  // Set once at creation, immutable
}
