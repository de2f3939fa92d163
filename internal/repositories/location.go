package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/saved-locations/internal/logger"
	"github.com/sbilibin2017/saved-locations/internal/models"
)

// LocationReadRepository handles location read operations
type LocationReadRepository struct {
	db *sqlx.DB
}

func NewLocationReadRepository(db *sqlx.DB) *LocationReadRepository {
	return &LocationReadRepository{db: db}
}

// ListByOwner returns all locations of the given owner, most recent first.
func (r *LocationReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.LocationDB, error) {
	const query = `
		SELECT location_id, owner_id, title, location, tag, created_at
		FROM locations
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	locations := make([]models.LocationDB, 0)
	err := r.db.SelectContext(ctx, &locations, query, ownerID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"rows", len(locations),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return locations, nil
}

// ListRecent returns the latest locations across all owners, capped at limit.
func (r *LocationReadRepository) ListRecent(ctx context.Context, limit int) ([]models.LocationDB, error) {
	const query = `
		SELECT location_id, owner_id, title, location, tag, created_at
		FROM locations
		ORDER BY created_at DESC
		LIMIT $1
	`

	locations := make([]models.LocationDB, 0)
	err := r.db.SelectContext(ctx, &locations, query, limit)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"rows", len(locations),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return locations, nil
}

// LocationWriteRepository handles location write operations
type LocationWriteRepository struct {
	db *sqlx.DB
}

func NewLocationWriteRepository(db *sqlx.DB) *LocationWriteRepository {
	return &LocationWriteRepository{db: db}
}

// Save inserts a new location owned by ownerID and returns the stored record.
// created_at is assigned by the database.
func (r *LocationWriteRepository) Save(ctx context.Context, ownerID uuid.UUID, title, location, tag string) (*models.LocationDB, error) {
	const query = `
		INSERT INTO locations (location_id, owner_id, title, location, tag, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING location_id, owner_id, title, location, tag, created_at
	`

	var loc models.LocationDB
	err := r.db.GetContext(ctx, &loc, query, uuid.New(), ownerID, title, location, tag)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, title, location, tag},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &loc, nil
}

// Update replaces title, location and tag of the location matched by id AND owner.
// Returns nil when no row matches, so an id owned by someone else is
// indistinguishable from a nonexistent id.
func (r *LocationWriteRepository) Update(ctx context.Context, ownerID, locationID uuid.UUID, title, location, tag string) (*models.LocationDB, error) {
	const query = `
		UPDATE locations
		SET title = $1, location = $2, tag = $3
		WHERE location_id = $4 AND owner_id = $5
		RETURNING location_id, owner_id, title, location, tag, created_at
	`

	var loc models.LocationDB
	err := r.db.GetContext(ctx, &loc, query, title, location, tag, locationID, ownerID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title, location, tag, locationID, ownerID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &loc, nil
}

// Delete removes the location matched by id AND owner and returns the
// pre-delete snapshot, or nil when no row matches.
func (r *LocationWriteRepository) Delete(ctx context.Context, ownerID, locationID uuid.UUID) (*models.LocationDB, error) {
	const query = `
		DELETE FROM locations
		WHERE location_id = $1 AND owner_id = $2
		RETURNING location_id, owner_id, title, location, tag, created_at
	`

	var loc models.LocationDB
	err := r.db.GetContext(ctx, &loc, query, locationID, ownerID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{locationID, ownerID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &loc, nil
}
