package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/saved-locations/internal/logger"
	"github.com/sbilibin2017/saved-locations/internal/models"
	"github.com/segmentio/kafka-go"
)

// recentFeedLimit caps the unauthenticated global feed.
const recentFeedLimit = 20

// Error variables
var (
	ErrEmptyTitle       = errors.New("title must not be empty")
	ErrEmptyLocation    = errors.New("location must not be empty")
	ErrLocationNotFound = errors.New("location not found")
)

// LocationReader defines read operations for locations.
type LocationReader interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.LocationDB, error)
	ListRecent(ctx context.Context, limit int) ([]models.LocationDB, error)
}

// LocationWriter defines write operations for locations.
type LocationWriter interface {
	Save(ctx context.Context, ownerID uuid.UUID, title, location, tag string) (*models.LocationDB, error)
	Update(ctx context.Context, ownerID, locationID uuid.UUID, title, location, tag string) (*models.LocationDB, error)
	Delete(ctx context.Context, ownerID, locationID uuid.UUID) (*models.LocationDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// LocationService handles ownership-scoped location CRUD and event publishing.
// Every operation acts only on the locations of the owner passed in; the
// owner always comes from the authenticated request, never from the body.
type LocationService struct {
	reader      LocationReader
	writer      LocationWriter
	kafkaWriter KafkaWriter
}

// NewLocationService creates a new LocationService.
// kafkaWriter may be nil, in which case events are skipped.
func NewLocationService(reader LocationReader, writer LocationWriter, kafkaWriter KafkaWriter) *LocationService {
	return &LocationService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a location change event to Kafka.
func (s *LocationService) publishEvent(ctx context.Context, action string, loc *models.LocationDB) {
	event := models.LocationEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		Action:     action,
		LocationID: loc.LocationID.String(),
		OwnerID:    loc.OwnerID.String(),
		Title:      loc.Title,
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal location event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.LocationID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish location event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Location event published to Kafka", "event_id", event.EventID, "action", action)
	}
}

// List returns all locations of the owner, most recent first.
func (s *LocationService) List(ctx context.Context, ownerID uuid.UUID) ([]models.LocationDB, error) {
	locations, err := s.reader.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list locations", "ownerID", ownerID, "error", err)
		return nil, err
	}
	return locations, nil
}

// ListRecent returns the latest locations across all owners, capped.
func (s *LocationService) ListRecent(ctx context.Context) ([]models.LocationDB, error) {
	locations, err := s.reader.ListRecent(ctx, recentFeedLimit)
	if err != nil {
		logger.Log.Errorw("failed to list recent locations", "error", err)
		return nil, err
	}
	return locations, nil
}

// Create saves a new location owned by ownerID and publishes the event.
func (s *LocationService) Create(ctx context.Context, ownerID uuid.UUID, title, location, tag string) (*models.LocationDB, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if location == "" {
		return nil, ErrEmptyLocation
	}

	loc, err := s.writer.Save(ctx, ownerID, title, location, tag)
	if err != nil {
		logger.Log.Errorw("failed to save location", "ownerID", ownerID, "title", title, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.LocationCreated, loc)

	return loc, nil
}

// Edit replaces title, location and tag of the owner's location.
// An id owned by someone else behaves exactly like a nonexistent id.
func (s *LocationService) Edit(ctx context.Context, ownerID, locationID uuid.UUID, title, location, tag string) (*models.LocationDB, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if location == "" {
		return nil, ErrEmptyLocation
	}

	loc, err := s.writer.Update(ctx, ownerID, locationID, title, location, tag)
	if err != nil {
		logger.Log.Errorw("failed to update location", "ownerID", ownerID, "locationID", locationID, "error", err)
		return nil, err
	}
	if loc == nil {
		return nil, ErrLocationNotFound
	}

	s.publishEvent(ctx, models.LocationEdited, loc)

	return loc, nil
}

// Delete removes the owner's location and returns the pre-delete snapshot.
func (s *LocationService) Delete(ctx context.Context, ownerID, locationID uuid.UUID) (*models.LocationDB, error) {
	loc, err := s.writer.Delete(ctx, ownerID, locationID)
	if err != nil {
		logger.Log.Errorw("failed to delete location", "ownerID", ownerID, "locationID", locationID, "error", err)
		return nil, err
	}
	if loc == nil {
		return nil, ErrLocationNotFound
	}

	s.publishEvent(ctx, models.LocationDeleted, loc)

	return loc, nil
}
