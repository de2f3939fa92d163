package models

// Location event actions published to Kafka.
const (
	LocationCreated = "location_created"
	LocationEdited  = "location_edited"
	LocationDeleted = "location_deleted"
)

// LocationEvent represents a location change event published to Kafka
type LocationEvent struct {
	EventID    string `json:"event_id"`    // Unique event identifier
	Timestamp  int64  `json:"timestamp"`   // Unix timestamp of the change
	Action     string `json:"action"`      // One of location_created/location_edited/location_deleted
	LocationID string `json:"location_id"` // Affected location
	OwnerID    string `json:"owner_id"`    // Owning user
	Title      string `json:"title"`       // Title at the time of the change
}
